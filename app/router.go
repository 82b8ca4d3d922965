package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/errors"
)

// isMsgPath ensures only path segments of lowercase letters, digits and
// underscores are routed.
var isMsgPath = regexp.MustCompile(`^[a-z0-9_]+(/[a-z0-9_]+)*$`).MatchString

// Router allows us to register many handlers with different paths and
// then direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	routes map[string]adminnft.Handler
}

var _ adminnft.Registry = (*Router)(nil)
var _ adminnft.Handler = (*Router)(nil)

// NewRouter returns a new empty router instance.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]adminnft.Handler),
	}
}

// Handle registers a handler for the path of the given message. It panics
// if the path is malformed or already taken.
func (r *Router) Handle(msg adminnft.Msg, h adminnft.Handler) {
	path := msg.Path()
	if !isMsgPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// handler returns the registered handler for this path. If no handler is
// registered, it returns a handler that always fails with ErrNotFound.
func (r *Router) handler(path string) adminnft.Handler {
	if h, ok := r.routes[path]; ok {
		return h
	}
	return notFoundHandler(path)
}

// Check dispatches to the handler registered for the message path.
func (r *Router) Check(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx) (*adminnft.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg.Path()).Check(ctx, db, tx)
}

// Deliver dispatches to the handler registered for the message path.
func (r *Router) Deliver(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx) (*adminnft.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg.Path()).Deliver(ctx, db, tx)
}

type notFoundHandler string

func (path notFoundHandler) Check(adminnft.Context, adminnft.KVStore, adminnft.Tx) (*adminnft.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}

func (path notFoundHandler) Deliver(adminnft.Context, adminnft.KVStore, adminnft.Tx) (*adminnft.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}
