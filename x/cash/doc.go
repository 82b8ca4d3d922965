/*
Package cash keeps the coin balance of every address.

A registry parks mint payments in the wallet of its pool address, so the nft
extension depends on the Controller defined here to move value between the
admin and the pool. Wallets are created on their first deposit and removed
once they are emptied.
*/
package cash
