/*
Package devnet implements an in-memory signer network for local testing.

A Registry keeps multisig contracts. A Signer is a quorum.Role that
confirms contracts in a Registry on behalf of its ed25519 key. All signers
of a multisig setup must share one Registry. The first confirmation creates
the contract and later confirmations join it. Every signer gets the same
contract address back.

This is a deterministic test collaborator. It never touches a blockchain and
it does not persist anything.
*/
package devnet
