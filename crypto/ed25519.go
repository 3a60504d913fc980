package crypto

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"golang.org/x/crypto/ed25519"
)

// ExtensionName is used for the conditions we derive from public keys
const ExtensionName = "sigs"

// SeedSize is the size of a seed accepted by PrivKeyFromSeed.
const SeedSize = ed25519.SeedSize

// Signature is a raw ed25519 signature.
type Signature []byte

// PublicKey is an ed25519 public key.
type PublicKey struct {
	key ed25519.PublicKey
}

// Verify verifies the signature was created with this message and public key
func (p *PublicKey) Verify(message []byte, sig Signature) bool {
	if p == nil || len(p.key) != ed25519.PublicKeySize {
		return false
	}
	if len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(p.key, message, sig)
}

// Condition encodes the public key into a quorum condition
func (p *PublicKey) Condition() quorum.Condition {
	if p == nil || len(p.key) == 0 {
		return nil
	}
	return quorum.NewCondition(ExtensionName, "ed25519", p.key)
}

// Address returns the address of this public key condition.
func (p *PublicKey) Address() quorum.Address {
	return p.Condition().Address()
}

// Bytes returns the raw public key.
func (p *PublicKey) Bytes() []byte {
	if p == nil {
		return nil
	}
	return append([]byte(nil), p.key...)
}

// PrivateKey is an ed25519 private key.
type PrivateKey struct {
	key ed25519.PrivateKey
}

// Sign returns a matching signature for this private key
func (p *PrivateKey) Sign(message []byte) (Signature, error) {
	if p == nil || len(p.key) != ed25519.PrivateKeySize {
		return nil, errors.Wrap(errors.ErrEmpty, "private key")
	}
	return ed25519.Sign(p.key, message), nil
}

// PublicKey returns the corresponding PublicKey
func (p *PrivateKey) PublicKey() *PublicKey {
	if p == nil || len(p.key) != ed25519.PrivateKeySize {
		return &PublicKey{}
	}
	pub := p.key.Public().(ed25519.PublicKey)
	return &PublicKey{key: pub}
}

// GenPrivKey returns a random new private key
func GenPrivKey() *PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{key: priv}
}

// PrivKeyFromSeed will deterministically generate a private key from
// a given seed. Use if you have a strong source of external randomness,
// or for deterministic keys in test cases.
func PrivKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if len(seed) != SeedSize {
		return nil, errors.Wrapf(errors.ErrInvalidArgument,
			"seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	return &PrivateKey{key: ed25519.NewKeyFromSeed(seed)}, nil
}
