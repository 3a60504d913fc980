package multisig

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// Builder drives a set of roles to register one shared multisig address.
//
// The zero value is ready to use and behaves like BuildAddress.
type Builder struct {
	// Logger receives a debug entry for every role call. When nil,
	// quorum.DefaultLogger is used.
	Logger log.Logger

	// VerifyConsistency requires every role to return the same address.
	// When disabled only the address returned by the last role is
	// considered and addresses returned by other roles are not compared.
	VerifyConsistency bool
}

// BuildAddress asks each role, in order, to register a multisig address
// shared with all other roles and returns the address returned by the last
// role.
//
// If requiredKeyNum is not between 1 and len(roles), an ErrInvalidArgument
// error is returned and no role is called. An error returned by a role is
// passed to the caller unchanged and no further role is called.
func BuildAddress(roles []quorum.Role, requiredKeyNum int) (quorum.Address, error) {
	return Builder{}.Build(roles, requiredKeyNum)
}

// Build works like BuildAddress, applying the builder configuration.
func (b Builder) Build(roles []quorum.Role, requiredKeyNum int) (quorum.Address, error) {
	setup, err := NewSetup(roles, requiredKeyNum)
	if err != nil {
		return nil, err
	}
	return b.build(setup)
}

func (b Builder) build(setup *Setup) (quorum.Address, error) {
	logger := quorum.LoggerOrDefault(b.Logger).With("module", "multisig")
	desc := setup.Description()

	var first, addr quorum.Address
	for i, role := range setup.Roles {
		others := quorum.Without(setup.Roles, i)
		var err error
		addr, err = role.NewMultisigAddress(desc, others, setup.RequiredKeyNum)
		if err != nil {
			return nil, err
		}
		logger.Debug("multisig address registered",
			"role", role.Name(), "index", i, "address", addr)

		if !b.VerifyConsistency {
			continue
		}
		if i == 0 {
			first = addr
		} else if !first.Equals(addr) {
			return nil, errors.Wrapf(errors.ErrInvalidState,
				"role %q (index %d) returned %s, want %s", role.Name(), i, addr, first)
		}
	}
	return addr, nil
}
