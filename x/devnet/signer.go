package devnet

import (
	"fmt"
	"sync"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
)

// Participant is a role that can be a member of a devnet contract.
type Participant interface {
	quorum.Role
	Address() quorum.Address
}

// Signer is a quorum.Role that confirms multisig contracts in a Registry.
type Signer struct {
	name     string
	key      *crypto.PrivateKey
	registry *Registry

	mu        sync.Mutex
	addresses []quorum.Address
}

var _ Participant = (*Signer)(nil)

// NewSigner returns a signer using given key to identify itself in the
// registry.
func NewSigner(name string, key *crypto.PrivateKey, registry *Registry) (*Signer, error) {
	var errs error
	if name == "" {
		errs = errors.AppendField(errs, "Name", errors.ErrEmpty)
	}
	if key == nil || key.PublicKey().Condition() == nil {
		errs = errors.AppendField(errs, "Key", errors.ErrEmpty)
	}
	if registry == nil {
		errs = errors.AppendField(errs, "Registry", errors.ErrEmpty)
	}
	if errs != nil {
		return nil, errs
	}
	return &Signer{name: name, key: key, registry: registry}, nil
}

func (s *Signer) Name() string {
	return s.name
}

// Condition returns the signature condition of this signer key.
func (s *Signer) Condition() quorum.Condition {
	return s.key.PublicKey().Condition()
}

// Address returns the address of this signer key.
func (s *Signer) Address() quorum.Address {
	return s.Condition().Address()
}

// NewMultisigAddress confirms, in the shared registry, a contract made of
// this signer and all others. All others must be devnet participants.
// Successfully confirmed contract address is added to this signer address
// book.
func (s *Signer) NewMultisigAddress(description string, others []quorum.Role, requiredKeyNum int) (quorum.Address, error) {
	self := s.Address()
	members := make([]quorum.Address, 0, len(others)+1)
	members = append(members, self)

	var errs error
	for i, o := range others {
		p, ok := o.(Participant)
		if !ok {
			errs = errors.AppendField(errs, fmt.Sprintf("Others.%d", i),
				errors.Wrapf(errors.ErrInvalidType, "%T is not a devnet participant", o))
			continue
		}
		members = append(members, p.Address())
	}
	if errs != nil {
		return nil, errs
	}

	addr, err := s.registry.Register(description, self, members, requiredKeyNum)
	if err != nil {
		return nil, errors.Wrapf(err, "signer %q", s.name)
	}

	s.mu.Lock()
	s.addresses = append(s.addresses, addr)
	s.mu.Unlock()
	return addr, nil
}

// Addresses returns all multisig addresses this signer confirmed, in order.
func (s *Signer) Addresses() []quorum.Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]quorum.Address(nil), s.addresses...)
}
