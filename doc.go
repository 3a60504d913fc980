/*
Package quorum defines the common types used to build multisig addresses
across a set of signer roles.

A Role is an external signer participant. It is asked to register a multisig
address shared with all other participants and returns an Address. The
x/multisig package orchestrates a set of roles, x/devnet provides an in-memory
role implementation for local test networks and roletest provides fakes to
test against.

Addresses are opaque byte strings. Identities used by the in-memory network
are Conditions, which hash into an Address of AddressLength bytes.
*/
package quorum
