package codec

import (
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/txcodec/packages/codecerrors"
)

var (
	// ErrDuplicateType is returned if a type tag is registered twice for the same codec Version.
	ErrDuplicateType = errors.New("type already registered")

	// ErrMissingFactory is returned if a type is registered without a factory.
	ErrMissingFactory = errors.New("missing factory")
)

// Registry maps the type tags of every codec Version to a factory that creates an empty instance of the
// corresponding type, which is then filled by the caller while parsing.
type Registry[T any] struct {
	name      string
	factories [VersionCount]map[uint32]func() T
	mutex     sync.RWMutex
}

// NewRegistry creates an empty Registry. The name is only used in error messages.
func NewRegistry[T any](name string) (registry *Registry[T]) {
	registry = &Registry[T]{
		name: name,
	}
	for i := range registry.factories {
		registry.factories[i] = make(map[uint32]func() T)
	}

	return registry
}

// Register adds the factory for the given type tags. Registering a tag that is already known for one of the codec
// Versions fails and leaves the Registry untouched.
func (r *Registry[T]) Register(typeIDs TypeIDs, factory func() T) (err error) {
	if factory == nil {
		return errors.Errorf("%s type %v: %w", r.name, typeIDs, ErrMissingFactory)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	for version, typeID := range typeIDs {
		if _, exists := r.factories[version][typeID]; exists {
			return errors.Errorf("%s type %d in %s: %w", r.name, typeID, Version(version), ErrDuplicateType)
		}
	}
	for version, typeID := range typeIDs {
		r.factories[version][typeID] = factory
	}

	return nil
}

// typeTagged is implemented by every type that knows its own type tags.
type typeTagged interface {
	TypeIDs() TypeIDs
}

// RegisterFactory registers the factory under the type tags of the instances it creates.
func RegisterFactory[T typeTagged](r *Registry[T], factory func() T) error {
	if factory == nil {
		return errors.Errorf("%s: %w", r.name, ErrMissingFactory)
	}

	return r.Register(factory().TypeIDs(), factory)
}

// New returns a new empty instance of the type that is registered for the given tag in the given codec Version.
func (r *Registry[T]) New(version Version, typeID uint32) (instance T, err error) {
	if err = version.Validate(); err != nil {
		return
	}

	r.mutex.RLock()
	factory, exists := r.factories[version][typeID]
	r.mutex.RUnlock()

	if !exists {
		err = errors.Errorf("%s type %d in %s: %w", r.name, typeID, version, codecerrors.ErrUnknownType)
		return
	}

	return factory(), nil
}

// Size returns the amount of types that are registered for the given codec Version.
func (r *Registry[T]) Size(version Version) int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.factories[version])
}
