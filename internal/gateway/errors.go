package gateway

import "fmt"

// APIError is an application-level failure: the backend answered, set
// success=false and supplied a message meant for the user. The message is
// surfaced verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend rejected request (status %d)", e.Status)
	}
	return e.Message
}

// TransportError is a network-level failure: the request never produced a
// usable response. Users get a generic message; the cause goes to logs.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gateway %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
