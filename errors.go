package postlist

import "errors"

// ErrIndexOutOfRange is returned by positional operations given an index
// outside [0, size).
var ErrIndexOutOfRange = errors.New("post store: index out of range")

// ErrPostIsNil is returned when a nil post is passed to the store.
var ErrPostIsNil = errors.New("post store: post is nil")
