package multisig

import (
	"fmt"
	"strings"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// descriptionSuffix is appended to the joined role names to build the label
// shared by all participants of a single multisig setup.
const descriptionSuffix = "'s Multisig Address"

// Setup describes a single multisig address construction: who participates
// and how many of them must sign.
type Setup struct {
	Roles          []quorum.Role
	RequiredKeyNum int
}

// NewSetup returns a validated Setup. Given roles slice is not copied and must
// not be modified while the Setup is in use.
func NewSetup(roles []quorum.Role, requiredKeyNum int) (*Setup, error) {
	s := &Setup{Roles: roles, RequiredKeyNum: requiredKeyNum}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate enforces role presence and threshold boundaries.
func (s *Setup) Validate() error {
	var errs error
	for i, r := range s.Roles {
		if r == nil {
			errs = errors.AppendField(errs, fmt.Sprintf("Roles.%d", i),
				errors.Wrap(errors.ErrInvalidArgument, "nil role"))
		}
	}
	switch {
	case s.RequiredKeyNum < 1:
		errs = errors.AppendField(errs, "RequiredKeyNum",
			errors.Wrapf(errors.ErrInvalidArgument, "must be greater than 0, got %d", s.RequiredKeyNum))
	case s.RequiredKeyNum > len(s.Roles):
		errs = errors.AppendField(errs, "RequiredKeyNum",
			errors.Wrapf(errors.ErrInvalidArgument, "%d is more than %d roles", s.RequiredKeyNum, len(s.Roles)))
	}
	return errs
}

// Description returns the label passed to every role of this setup.
func (s *Setup) Description() string {
	return Description(s.Roles)
}

// Description joins role names with " & " and appends the multisig address
// suffix, for example "A & B & C's Multisig Address".
func Description(roles []quorum.Role) string {
	return strings.Join(quorum.Names(roles), " & ") + descriptionSuffix
}
