package errors

import "fmt"

var (
	ErrMalformedState      = fmt.Errorf("malformed persisted state")
	ErrPersistenceWrite    = fmt.Errorf("persistence write failed")
	ErrSessionIDGeneration = fmt.Errorf("session id generation failed")
	ErrNotifyDepthExceeded = fmt.Errorf("notification depth exceeded")
	ErrBackendRead         = fmt.Errorf("persisted state could not be read")
	ErrBackendClosed       = fmt.Errorf("storage backend is closed")
	ErrUnknownBackend      = fmt.Errorf("unknown storage backend")
	ErrUnknownCodec        = fmt.Errorf("unknown storage codec")
	ErrUnknownRole         = fmt.Errorf("unknown message role")
)
