/*
Package errors implements the coded errors used by the registry and its host.

Every error returned to a client should wrap one of the root errors declared
here, or one declared by an extension using Register. The root error carries
the ABCI code, so the client can tell an unauthorized call apart from a
missing token without parsing the message.

Create errors at the point of failure with ErrXyz.New("...") or
errors.Wrap(err, "...") so that a stack trace is attached. Only the most inner
wrap records the stack.

	%s prints the message chain
	%+v prints the message chain followed by the stack trace
*/
package errors
