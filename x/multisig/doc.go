/*
Package multisig builds a multisig address shared by a set of signer roles.

Each role is asked, in the order given, to register a multisig address with
all other roles. Every role receives the same description, built from the
role names, and the same signature threshold. Roles are called one after
another and a call starts only when the previous one has returned.

The address returned by the last role is the result. Roles are expected to
agree on the address. Use a Builder with VerifyConsistency enabled to fail
with ErrInvalidState when they do not.
*/
package multisig
