/*
Package utils contains the decorators shared by every handler of the
registry host.

Order matters when chaining them. Recovery should wrap everything so that a
panic in any layer becomes an error. Savepoint should sit below the signature
check, so that a failed message does not roll back the nonce increment.
*/
package utils
