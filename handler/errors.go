package handler

import "errors"

// ErrClosed is returned by Handle after Close
var ErrClosed = errors.New("handler closed")
