/*
Package sigs provides the authentication middleware of the registry host. It
verifies the ed25519 signatures of a transaction and keeps a sequence per
public key to protect against replays.

The conditions of all valid signers are stored in the context, where the nft
handlers read them through Authenticate to decide whether the caller is the
registry admin.
*/
package sigs
