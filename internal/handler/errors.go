package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration provides no transport address, leaving the application
// without any way to accept requests. This is a fatal misconfiguration.
var errNoHandlersAreCreated = errors.New("no handlers are created")
