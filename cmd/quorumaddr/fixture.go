package main

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/devnet"
)

// fixture describes a multisig setup to build. It is usually loaded from a
// JSON file:
//
//	{
//	  "threshold": 2,
//	  "roles": [
//	    {"name": "Alice", "seed": "<64 hex characters>"},
//	    {"name": "Bob"}
//	  ]
//	}
type fixture struct {
	Threshold int           `json:"threshold"`
	Roles     []fixtureRole `json:"roles"`
}

type fixtureRole struct {
	Name string `json:"name"`
	// Seed is a hex encoded ed25519 seed. When empty, the seed is derived
	// from the name.
	Seed string `json:"seed,omitempty"`
}

func loadFixture(path string) (*fixture, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open fixture")
	}
	defer fd.Close()
	return readFixture(fd)
}

func readFixture(r io.Reader) (*fixture, error) {
	var f fixture
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidArgument, "decode fixture: %s", err)
	}
	return &f, nil
}

// seed returns the ed25519 seed of this role.
func (r fixtureRole) seed() ([]byte, error) {
	if r.Seed == "" {
		h := sha256.Sum256([]byte(r.Name))
		return h[:], nil
	}
	raw, err := hex.DecodeString(r.Seed)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidArgument, "seed of %q is not hex", r.Name)
	}
	return raw, nil
}

// signers creates a devnet signer for each fixture role, in order.
func (f *fixture) signers(registry *devnet.Registry) ([]*devnet.Signer, error) {
	if len(f.Roles) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "no roles")
	}
	signers := make([]*devnet.Signer, 0, len(f.Roles))
	for i, r := range f.Roles {
		seed, err := r.seed()
		if err != nil {
			return nil, errors.Field(fmt.Sprintf("Roles.%d", i), err, "")
		}
		key, err := crypto.PrivKeyFromSeed(seed)
		if err != nil {
			return nil, errors.Field(fmt.Sprintf("Roles.%d", i), err, "")
		}
		s, err := devnet.NewSigner(r.Name, key, registry)
		if err != nil {
			return nil, errors.Field(fmt.Sprintf("Roles.%d", i), err, "")
		}
		signers = append(signers, s)
	}
	return signers, nil
}
