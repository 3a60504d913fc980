package quorum

// Role is a signer participant that is able to register a shared multisig
// address together with a set of co-signers.
//
// Identity and key material are fully owned by the implementation.
type Role interface {
	// Name returns a human readable name of this role.
	Name() string

	// NewMultisigAddress registers or derives a multisig address that is
	// shared between this role and all others, requiring requiredKeyNum
	// signatures. The same description is expected to be given to every
	// participant of a single multisig setup.
	NewMultisigAddress(description string, others []Role, requiredKeyNum int) (Address, error)
}

// Without returns a new slice holding all roles except the one at index i.
// Relative order of the remaining roles is preserved and the source slice is
// never modified.
func Without(roles []Role, i int) []Role {
	others := make([]Role, 0, len(roles))
	others = append(others, roles[:i]...)
	return append(others, roles[i+1:]...)
}

// Names returns the name of each role, in order.
func Names(roles []Role) []string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.Name()
	}
	return names
}
