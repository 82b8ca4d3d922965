/*
Package x contains the extensions of the registry host.

Extensions implement common functionality (Handler, Decorator, Initializer)
and are combined together to construct the application. The nft extension
holds the registry itself. The remaining ones provide authentication,
wallets and the transactional plumbing around it.
*/
package x
