/*
Package app contains the ABCI host of the registry. It routes transactions
to the handlers registered by the extensions, maintains the check and deliver
caches of the committed store and answers queries with ResultSet envelopes.
*/
package app
