package secp256k1fx

import (
	"sort"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/stringify"

	"github.com/iotaledger/txcodec/packages/codecerrors"
	"github.com/iotaledger/txcodec/packages/ids"
	"github.com/iotaledger/txcodec/packages/marshalutil"
	"github.com/iotaledger/txcodec/packages/txs"
)

// OutputOwners describes who can spend an output: at least threshold of the addresses need to sign once the
// locktime (unix timestamp) has passed.
type OutputOwners struct {
	locktime  uint64
	threshold uint32
	addresses []ids.ShortID
}

// NewOutputOwners creates new OutputOwners. The addresses are sorted and need to be unique.
func NewOutputOwners(locktime uint64, threshold uint32, addresses ...ids.ShortID) (*OutputOwners, error) {
	sortedAddresses := append([]ids.ShortID{}, addresses...)
	sort.Slice(sortedAddresses, func(i, j int) bool {
		return sortedAddresses[i].Compare(sortedAddresses[j]) < 0
	})

	outputOwners := &OutputOwners{
		locktime:  locktime,
		threshold: threshold,
		addresses: sortedAddresses,
	}
	if err := outputOwners.verify(); err != nil {
		return nil, err
	}

	return outputOwners, nil
}

// OutputOwnersFromMarshalUtil unmarshals OutputOwners using a MarshalUtil (for easier unmarshaling).
func OutputOwnersFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (outputOwners *OutputOwners, err error) {
	outputOwners = &OutputOwners{}
	if outputOwners.locktime, err = marshalUtil.ReadUint64(); err != nil {
		err = errors.Errorf("failed to parse locktime (%v): %w", err, cerrors.ErrParseBytesFailed)
		return nil, err
	}
	if outputOwners.threshold, err = marshalUtil.ReadUint32(); err != nil {
		err = errors.Errorf("failed to parse threshold (%v): %w", err, cerrors.ErrParseBytesFailed)
		return nil, err
	}

	addressesCount, err := marshalUtil.ReadUint32()
	if err != nil {
		err = errors.Errorf("failed to parse addresses count (%v): %w", err, cerrors.ErrParseBytesFailed)
		return nil, err
	}
	if int64(addressesCount)*ids.ShortIDLength > int64(marshalUtil.RemainingBytes()) {
		err = errors.Errorf("amount of addresses (%d) exceeds remaining bytes (%d): %w", addressesCount, marshalUtil.RemainingBytes(), codecerrors.ErrLength)
		return nil, err
	}

	outputOwners.addresses = make([]ids.ShortID, addressesCount)
	for i := range outputOwners.addresses {
		if outputOwners.addresses[i], err = ids.ShortIDFromMarshalUtil(marshalUtil); err != nil {
			err = errors.Errorf("failed to parse address %d: %w", i, err)
			return nil, err
		}
		if i > 0 && outputOwners.addresses[i-1].Compare(outputOwners.addresses[i]) >= 0 {
			err = errors.Mark(errors.Errorf("address %d: %w", i, txs.ErrNonCanonicalOrder), cerrors.ErrParseBytesFailed)
			return nil, err
		}
	}

	if err = outputOwners.verify(); err != nil {
		return nil, errors.Mark(err, cerrors.ErrParseBytesFailed)
	}

	return
}

// Locktime returns the unix timestamp until which the output can not be spent.
func (o *OutputOwners) Locktime() uint64 {
	return o.locktime
}

// Threshold returns the amount of signatures that are required to spend the output.
func (o *OutputOwners) Threshold() uint32 {
	return o.threshold
}

// Addresses returns a copy of the sorted addresses that own the output.
func (o *OutputOwners) Addresses() []ids.ShortID {
	return append([]ids.ShortID{}, o.addresses...)
}

// Bytes returns a marshaled version of the OutputOwners.
func (o *OutputOwners) Bytes() []byte {
	marshalUtil := marshalutil.New(8 + 4 + 4 + len(o.addresses)*ids.ShortIDLength).
		WriteUint64(o.locktime).
		WriteUint32(o.threshold).
		WriteUint32(uint32(len(o.addresses)))
	for _, address := range o.addresses {
		marshalUtil.Write(address)
	}

	return marshalUtil.Bytes()
}

// String returns a human-readable version of the OutputOwners.
func (o *OutputOwners) String() string {
	addresses := stringify.StructBuilder("Addresses")
	for i, address := range o.addresses {
		addresses.AddField(stringify.StructField(strconv.Itoa(i), address))
	}

	return stringify.Struct("OutputOwners",
		stringify.StructField("locktime", o.locktime),
		stringify.StructField("threshold", o.threshold),
		stringify.StructField("addresses", addresses),
	)
}

func (o *OutputOwners) verify() error {
	switch {
	case int64(o.threshold) > int64(len(o.addresses)):
		return errors.Errorf("threshold %d exceeds %d addresses: %w", o.threshold, len(o.addresses), ErrInvalidThreshold)
	case o.threshold == 0 && len(o.addresses) > 0:
		return errors.Errorf("threshold of 0 with %d addresses: %w", len(o.addresses), ErrInvalidThreshold)
	}

	for i := 1; i < len(o.addresses); i++ {
		if o.addresses[i-1] == o.addresses[i] {
			return errors.Errorf("duplicate address %s: %w", o.addresses[i], ErrDuplicateAddress)
		}
	}

	return nil
}
