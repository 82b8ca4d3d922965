/*
Package adminnft defines the interfaces shared by the registry and its host:
storage, messages, transactions, handlers, queries and the request context.

The registry itself lives in x/nft. Everything around it (stores, orm,
authentication, the ABCI application) is built from the building blocks
declared here, so that the registry logic does not depend on how it is
hosted.
*/
package adminnft
