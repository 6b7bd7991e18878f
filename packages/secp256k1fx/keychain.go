package secp256k1fx

import (
	"crypto/sha256"
	"sort"
	"strings"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // addresses are defined as ripemd160(sha256(publicKey))

	"github.com/iotaledger/txcodec/packages/cb58"
	"github.com/iotaledger/txcodec/packages/ids"
	"github.com/iotaledger/txcodec/packages/txs"
)

// region keys /////////////////////////////////////////////////////////////////////////////////////////////////////////

// PrivateKeyPrefix is the prefix of the textual representation of a private key.
const PrivateKeyPrefix = "PrivateKey-"

// compactSignatureMagic is the header offset of a compact signature for a compressed public key.
const compactSignatureMagic = 27 + 4

// PrivateKeyFromString parses a private key from its "PrivateKey-<cb58>" representation.
func PrivateKeyFromString(text string) (*btcec.PrivateKey, error) {
	if !strings.HasPrefix(text, PrivateKeyPrefix) {
		return nil, errors.Errorf("private key %q is missing the %q prefix", text, PrivateKeyPrefix)
	}

	keyBytes, err := cb58.Decode(strings.TrimPrefix(text, PrivateKeyPrefix))
	if err != nil {
		return nil, errors.Errorf("failed to decode private key: %w", err)
	}
	if len(keyBytes) != btcec.PrivKeyBytesLen {
		return nil, errors.Errorf("private key has %d bytes instead of %d", len(keyBytes), btcec.PrivKeyBytesLen)
	}

	privateKey, _ := btcec.PrivKeyFromBytes(keyBytes)

	return privateKey, nil
}

// PrivateKeyToString returns the "PrivateKey-<cb58>" representation of the private key.
func PrivateKeyToString(privateKey *btcec.PrivateKey) string {
	return PrivateKeyPrefix + cb58.Encode(privateKey.Serialize())
}

// AddressFromPublicKey returns the address of the public key: ripemd160(sha256(compressed public key)).
func AddressFromPublicKey(publicKey *btcec.PublicKey) (address ids.ShortID) {
	sha := sha256.Sum256(publicKey.SerializeCompressed())

	hash := ripemd160.New()
	_, _ = hash.Write(sha[:])
	copy(address[:], hash.Sum(nil))

	return address
}

// SignHash creates a recoverable signature (R || S || V) of the hash.
func SignHash(privateKey *btcec.PrivateKey, hash []byte) ([]byte, error) {
	compactSignature, err := ecdsa.SignCompact(privateKey, hash, true)
	if err != nil {
		return nil, errors.Errorf("failed to sign hash: %w", err)
	}

	signature := make([]byte, SignatureLength)
	copy(signature, compactSignature[1:])
	signature[SignatureLength-1] = compactSignature[0] - compactSignatureMagic

	return signature, nil
}

// RecoverPublicKey returns the public key that created the recoverable signature of the hash.
func RecoverPublicKey(hash, signature []byte) (*btcec.PublicKey, error) {
	if len(signature) != SignatureLength {
		return nil, errors.Errorf("signature has %d bytes instead of %d: %w", len(signature), SignatureLength, ErrInvalidSignature)
	}
	if recoveryID := signature[SignatureLength-1]; recoveryID > 3 {
		return nil, errors.Errorf("recovery id %d out of range: %w", recoveryID, ErrInvalidSignature)
	}

	compactSignature := make([]byte, SignatureLength)
	compactSignature[0] = signature[SignatureLength-1] + compactSignatureMagic
	copy(compactSignature[1:], signature[:SignatureLength-1])

	publicKey, _, err := ecdsa.RecoverCompact(compactSignature, hash)
	if err != nil {
		return nil, errors.Errorf("failed to recover public key (%v): %w", err, ErrInvalidSignature)
	}

	return publicKey, nil
}

// RecoverAddress returns the address whose key created the recoverable signature of the hash.
func RecoverAddress(hash, signature []byte) (ids.ShortID, error) {
	publicKey, err := RecoverPublicKey(hash, signature)
	if err != nil {
		return ids.ShortEmpty, err
	}

	return AddressFromPublicKey(publicKey), nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Keychain /////////////////////////////////////////////////////////////////////////////////////////////////////

// Keychain holds secp256k1 private keys indexed by their address and signs TransferInputs with them.
type Keychain struct {
	keys      map[ids.ShortID]*btcec.PrivateKey
	keysMutex sync.RWMutex

	log *zap.SugaredLogger
}

// NewKeychain creates an empty Keychain. A nil logger disables logging.
func NewKeychain(log *zap.SugaredLogger) *Keychain {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &Keychain{
		keys: make(map[ids.ShortID]*btcec.PrivateKey),
		log:  log,
	}
}

// Add adds the private key to the Keychain and returns its address.
func (k *Keychain) Add(privateKey *btcec.PrivateKey) (address ids.ShortID) {
	address = AddressFromPublicKey(privateKey.PubKey())

	k.keysMutex.Lock()
	defer k.keysMutex.Unlock()

	k.keys[address] = privateKey
	k.log.Debugw("added key", "address", address)

	return address
}

// Generate creates a new random private key, adds it to the Keychain and returns it.
func (k *Keychain) Generate() (privateKey *btcec.PrivateKey, address ids.ShortID, err error) {
	if privateKey, err = btcec.NewPrivateKey(); err != nil {
		return nil, ids.ShortEmpty, errors.Errorf("failed to generate private key: %w", err)
	}

	return privateKey, k.Add(privateKey), nil
}

// Get returns the private key of the address.
func (k *Keychain) Get(address ids.ShortID) (privateKey *btcec.PrivateKey, exists bool) {
	k.keysMutex.RLock()
	defer k.keysMutex.RUnlock()

	privateKey, exists = k.keys[address]

	return
}

// Addresses returns the sorted addresses of all keys in the Keychain.
func (k *Keychain) Addresses() (addresses []ids.ShortID) {
	k.keysMutex.RLock()
	defer k.keysMutex.RUnlock()

	addresses = make([]ids.ShortID, 0, len(k.keys))
	for address := range k.keys {
		addresses = append(addresses, address)
	}
	sort.Slice(addresses, func(i, j int) bool {
		return addresses[i].Compare(addresses[j]) < 0
	})

	return addresses
}

// Sign signs the hash with the key of every signature index of the TransferInput (in the order of the indices).
//
// Signature indices without a Source (e.g. of parsed transactions) are resolved against the sorted addresses of the
// Keychain, which matches the address order of the spent OutputOwners if the Keychain holds exactly their keys.
func (k *Keychain) Sign(hash []byte, input txs.Input) (signatures [][]byte, err error) {
	transferInput, ok := input.(*TransferInput)
	if !ok {
		return nil, errors.Errorf("%T: %w", input, ErrUnsupportedInput)
	}

	sigIndices := transferInput.SigIndices()
	signatures = make([][]byte, len(sigIndices))
	for i, sigIndex := range sigIndices {
		if sigIndex.Source == ids.ShortEmpty {
			if addresses := k.Addresses(); int64(sigIndex.Index) < int64(len(addresses)) {
				sigIndex.Source = addresses[sigIndex.Index]
			}
		}

		privateKey, exists := k.Get(sigIndex.Source)
		if !exists {
			k.log.Warnw("missing key for signature index", "index", sigIndex.Index, "address", sigIndex.Source)
			return nil, errors.Errorf("address %s: %w", sigIndex.Source, ErrMissingKey)
		}

		if signatures[i], err = SignHash(privateKey, hash); err != nil {
			return nil, err
		}
	}
	k.log.Debugw("signed input", "amount", transferInput.Amount(), "signatures", len(signatures))

	return signatures, nil
}

// code contract (make sure the struct implements all required methods)
var _ txs.Keychain = &Keychain{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
