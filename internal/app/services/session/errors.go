package session

import "errors"

var (
	// ErrInconsistentSession is reported when only one of token and role
	// was found in the store.
	ErrInconsistentSession = errors.New("session: token and role out of step")
	// ErrNoVisitor is returned by per visitor stores when the context
	// carries no session id.
	ErrNoVisitor = errors.New("session: no visitor id in context")
)
