package errors

// ProtocolError indicates a malformed request at the wire-protocol boundary
// (§6.2): a request that isn't an array, an arity mismatch for the given
// command, or a bulk string with a length prefix that doesn't match its
// body. Per spec.md §7 this is surfaced to the remote client as a protocol
// error and the connection may be closed.
type ProtocolError struct {
	*baseError
}

// NewProtocolError creates a new protocol-specific error.
func NewProtocolError(err error, msg string) *ProtocolError {
	return &ProtocolError{baseError: NewBaseError(err, ErrorCodeProtocol, msg)}
}

// BackendError indicates a failure inside the alternative ordered-store
// backend (§4.7) not otherwise classified (e.g. not UTF-8, not I/O).
type BackendError struct {
	*baseError
}

// NewBackendError creates a new backend-specific error.
func NewBackendError(err error, msg string) *BackendError {
	return &BackendError{baseError: NewBaseError(err, ErrorCodeBackend, msg)}
}

// Utf8Error indicates bytes read back from a backend are not valid UTF-8,
// violating the engine's text-value contract (§3).
type Utf8Error struct {
	*baseError
	key string
}

// NewUtf8Error creates a new UTF-8 validation error for the given key.
func NewUtf8Error(err error, key string) *Utf8Error {
	return &Utf8Error{
		baseError: NewBaseError(err, ErrorCodeUtf8, "value is not valid utf-8"),
		key:       key,
	}
}

// Key returns the key whose stored value failed UTF-8 validation.
func (ue *Utf8Error) Key() string {
	return ue.key
}
