/*
Package nft implements registries of non-fungible tokens controlled by a
single admin.

Every registry is created with an immutable admin address. Only the admin can
mint a token, which is assigned the next value of the registry counter, and
only the admin can burn one. Burned ids are never handed out again. A mint
may carry a payment, which is moved from the admin wallet into the payment
pool of the registry.

Registries can be driven through the transaction handlers registered with
RegisterRoutes, or directly through a Handle returned by Instantiate.
*/
package nft
