package devnet

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"sort"
	"sync"

	"github.com/google/btree"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	// To avoid burning CPU, this is the maximum number of members allowed
	// to be part of a single contract.
	maxMembersAllowed = 100

	freeListSize = btree.DefaultFreeListSize
)

// Contract is a multisig setup registered in the Registry.
type Contract struct {
	ID          uint64
	Address     quorum.Address
	Description string
	Threshold   int
	// Members are sorted by address.
	Members []quorum.Address
	// Confirmed holds member addresses in the order they confirmed.
	Confirmed []quorum.Address
}

// Complete returns true if every member confirmed this contract.
func (c *Contract) Complete() bool {
	return len(c.Confirmed) == len(c.Members)
}

// HasConfirmed returns true if given member already confirmed.
func (c *Contract) HasConfirmed(member quorum.Address) bool {
	for _, a := range c.Confirmed {
		if a.Equals(member) {
			return true
		}
	}
	return false
}

func (c *Contract) copy() *Contract {
	cp := *c
	cp.Members = append([]quorum.Address(nil), c.Members...)
	cp.Confirmed = append([]quorum.Address(nil), c.Confirmed...)
	return &cp
}

// Registry is an in-memory store of multisig contracts. It is safe for
// concurrent use.
type Registry struct {
	mu sync.Mutex
	// contracts are keyed by the big endian sequence ID, so that iteration
	// follows creation order.
	contracts *btree.BTree
	// byAddress and byMembers map into a contract sequence ID.
	byAddress *btree.BTree
	byMembers *btree.BTree
	seq       uint64
	logger    log.Logger
}

// NewRegistry returns an empty registry. Logger may be nil.
func NewRegistry(logger log.Logger) *Registry {
	free := btree.NewFreeList(freeListSize)
	return &Registry{
		contracts: btree.NewWithFreeList(2, free),
		byAddress: btree.NewWithFreeList(2, free),
		byMembers: btree.NewWithFreeList(2, free),
		logger:    quorum.LoggerOrDefault(logger).With("module", "devnet"),
	}
}

// Register records a confirmation of the multisig contract described by
// members and threshold, made by participant. The contract is created with
// the first confirmation. It returns the contract address.
//
// All confirmations of a contract must use the same description. Each member
// can confirm only once.
func (r *Registry) Register(description string, participant quorum.Address, members []quorum.Address, threshold int) (quorum.Address, error) {
	sorted, err := validateRegistration(description, participant, members, threshold)
	if err != nil {
		return nil, err
	}
	key := membersKey(sorted, threshold)

	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byKey(r.byMembers, key)
	if !ok {
		r.seq++
		c = &Contract{
			ID:          r.seq,
			Address:     ContractCondition(r.seq).Address(),
			Description: description,
			Threshold:   threshold,
			Members:     sorted,
		}
		r.contracts.ReplaceOrInsert(contractItem{bkey{seqKey(c.ID)}, c})
		r.byAddress.ReplaceOrInsert(indexItem{bkey{c.Address}, c.ID})
		r.byMembers.ReplaceOrInsert(indexItem{bkey{key}, c.ID})
		r.logger.Debug("contract created",
			"id", c.ID, "address", c.Address, "threshold", threshold, "members", len(sorted))
	} else {
		if c.Description != description {
			return nil, errors.Field("Description", errors.ErrInvalidArgument,
				"contract %d is registered as %q", c.ID, c.Description)
		}
		if c.HasConfirmed(participant) {
			return nil, errors.Wrapf(errors.ErrDuplicate,
				"%s already confirmed contract %d", participant, c.ID)
		}
	}

	c.Confirmed = append(c.Confirmed, participant)
	r.logger.Debug("contract confirmed",
		"id", c.ID, "participant", participant, "confirmed", len(c.Confirmed), "members", len(c.Members))
	return c.Address, nil
}

// Contract returns a copy of the contract registered under given address.
func (r *Registry) Contract(addr quorum.Address) (*Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byKey(r.byAddress, addr)
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "contract %s", addr)
	}
	return c.copy(), nil
}

// Contracts returns a copy of all contracts, in creation order.
func (r *Registry) Contracts() []*Contract {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]*Contract, 0, r.contracts.Len())
	r.contracts.Ascend(func(i btree.Item) bool {
		res = append(res, i.(contractItem).contract.copy())
		return true
	})
	return res
}

// byKey resolves an index entry into a contract. Must be called with the
// lock held.
func (r *Registry) byKey(index *btree.BTree, key []byte) (*Contract, bool) {
	found := index.Get(bkey{key})
	if found == nil {
		return nil, false
	}
	item := r.contracts.Get(bkey{seqKey(found.(indexItem).id)})
	if item == nil {
		// Indexes are always updated together with the contracts tree.
		panic(fmt.Sprintf("index entry without a contract: %d", found.(indexItem).id))
	}
	return item.(contractItem).contract, true
}

func validateRegistration(description string, participant quorum.Address, members []quorum.Address, threshold int) ([]quorum.Address, error) {
	var errs error
	if description == "" {
		errs = errors.AppendField(errs, "Description", errors.ErrEmpty)
	}
	switch n := len(members); {
	case n == 0:
		errs = errors.AppendField(errs, "Members", errors.ErrEmpty)
	case n > maxMembersAllowed:
		errs = errors.AppendField(errs, "Members",
			errors.Wrapf(errors.ErrInvalidArgument, "%d members, at most %d allowed", n, maxMembersAllowed))
	}
	if threshold < 1 || threshold > len(members) {
		errs = errors.AppendField(errs, "Threshold",
			errors.Wrapf(errors.ErrInvalidArgument, "%d not between 1 and %d", threshold, len(members)))
	}

	sorted := make([]quorum.Address, len(members))
	copy(sorted, members)
	sort.Slice(sorted, func(i, j int) bool { return bytes.Compare(sorted[i], sorted[j]) < 0 })

	isMember := false
	for i, m := range sorted {
		if err := m.Validate(); err != nil {
			errs = errors.AppendField(errs, fmt.Sprintf("Members.%d", i), err)
			continue
		}
		if i > 0 && m.Equals(sorted[i-1]) {
			errs = errors.AppendField(errs, fmt.Sprintf("Members.%d", i),
				errors.Wrapf(errors.ErrDuplicate, "member %s", m))
		}
		if m.Equals(participant) {
			isMember = true
		}
	}
	if !isMember {
		errs = errors.AppendField(errs, "Participant",
			errors.Wrapf(errors.ErrInvalidArgument, "%s is not a member", participant))
	}
	if errs != nil {
		return nil, errs
	}
	return sorted, nil
}

// membersKey returns a digest identifying a contract by its sorted members
// and threshold.
func membersKey(sorted []quorum.Address, threshold int) []byte {
	h := sha256.New()
	for _, m := range sorted {
		h.Write(m)
	}
	h.Write(seqKey(uint64(threshold)))
	return h.Sum(nil)
}

// ContractCondition returns the condition that the contract with given
// sequence ID is owned by.
func ContractCondition(id uint64) quorum.Condition {
	return quorum.NewCondition("multisig", "usage", seqKey(id))
}

func seqKey(id uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, id)
	return b
}

type keyer interface {
	Key() []byte
}

// bkey implements keyer and btree.Item
// and may be used for queries or embedded in stored items
type bkey struct {
	key []byte
}

var _ btree.Item = bkey{}

func (k bkey) Key() []byte {
	return k.key
}

// Less returns true iff second argument is greater than first
//
// panics if the item to compare doesn't implement keyer.
func (k bkey) Less(item btree.Item) bool {
	return bytes.Compare(k.key, item.(keyer).Key()) < 0
}

type contractItem struct {
	bkey
	contract *Contract
}

type indexItem struct {
	bkey
	id uint64
}
