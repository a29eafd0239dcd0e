package errors

// ErrorCode represents a standardized way to categorize different types of errors.
type ErrorCode string

// Base error codes represent the fundamental categories of failures that can
// occur across any software system. These codes provide the foundation layer
// of error classification.
const (
	// ErrorCodeIO represents failures in input/output operations across any
	// system boundary. This includes file system operations like reading or
	// writing segment files, network operations when communicating with remote
	// systems, and device I/O when accessing storage hardware.
	ErrorCodeIO ErrorCode = "IO_ERROR"

	// ErrorCodeInvalidInput represents client-side errors where the provided
	// data doesn't meet the system's requirements or constraints. This maps
	// to HTTP 400-series errors and indicates problems with the request itself
	// rather than system failures.
	ErrorCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// ErrorCodeInternal represents unexpected system failures that don't fit
	// into other categories. These are the equivalent of HTTP 500 errors and
	// indicate bugs, assertion failures, or other programming errors that
	// shouldn't occur during normal operation.
	ErrorCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Storage-specific error codes extend the base error taxonomy to handle the
// unique failure modes that occur in persistent storage systems. These codes
// represent problems that are specific to the storage layer of your key-value
// store, particularly focusing on segment file management and data persistence.
const (
	// ErrorCodeSegmentCorrupted indicates that a segment file's data has been
	// damaged or is in an inconsistent state.
	ErrorCodeSegmentCorrupted ErrorCode = "SEGMENT_CORRUPTED"

	// ErrorCodeHeaderReadFailure occurs when the system cannot read the header
	// portion of a segment file. Headers contain critical metadata about the
	// segment's structure, so header read failures prevent access to the
	// entire segment and all data it contains.
	ErrorCodeHeaderReadFailure ErrorCode = "HEADER_READ_FAILURE"

	// ErrorCodePayloadReadFailure indicates problems reading the actual data
	// content from segment files after successfully reading the header. This
	// represents a more localized failure compared to header problems, as the
	// segment structure is intact but specific data regions are inaccessible.
	ErrorCodePayloadReadFailure ErrorCode = "PAYLOAD_READ_FAILURE"

	// ErrorCodeRecoveryFailed indicates that the storage system's attempt to
	// recover from a previous failure was unsuccessful. This represents a
	// compound failure where both the original problem and the recovery
	// mechanism have failed, creating a more serious operational situation.
	ErrorCodeRecoveryFailed ErrorCode = "STORAGE_RECOVERY_FAILED"

	// ErrorCodePermissionDenied indicates insufficient permissions to access a resource.
	// This is distinct from generic IO errors because it has a specific resolution path:
	// the user needs to adjust file/directory permissions or run with elevated privileges.
	ErrorCodePermissionDenied ErrorCode = "PERMISSION_DENIED"

	// ErrorCodeDiskFull indicates that the storage device has run out of space.
	// This requires specific handling like cleanup operations or alerting administrators.
	ErrorCodeDiskFull ErrorCode = "DISK_FULL"

	// ErrorCodeFilesystemReadonly indicates that the filesystem is mounted read-only.
	// This requires administrative intervention to remount the filesystem with write permissions.
	ErrorCodeFilesystemReadonly ErrorCode = "FILESYSTEM_READONLY"
)

// Index-specific error codes cover failures in the in-memory key index:
// missing keys, internal inconsistency between the index and what's on
// disk, and structural corruption of the map itself.
const (
	// ErrorCodeIndexKeyNotFound indicates a lookup for a key the index has
	// no entry for. The engine itself prefers returning Ok(None) for this
	// condition; the error exists for layers (CLI, index-internal
	// consistency checks) that need a typed signal instead.
	ErrorCodeIndexKeyNotFound ErrorCode = "INDEX_KEY_NOT_FOUND"

	// ErrorCodeIndexInvalidSegmentID indicates the index holds a location
	// referencing a segment id the engine has no open reader for.
	ErrorCodeIndexInvalidSegmentID ErrorCode = "INDEX_INVALID_SEGMENT_ID"

	// ErrorCodeIndexCorrupted indicates the index map itself is in an
	// inconsistent state, typically surfaced only by internal assertions.
	ErrorCodeIndexCorrupted ErrorCode = "INDEX_CORRUPTED"
)

// Record-codec and engine-consistency error codes.
const (
	// ErrorCodeCodec indicates a record could not be decoded: truncated
	// bytes, malformed JSON, or an unrecognized record kind.
	ErrorCodeCodec ErrorCode = "CODEC_ERROR"

	// ErrorCodeUnexpectedRecord indicates the index pointed at a location
	// whose record is not the kind expected there (e.g. a Get resolved a
	// location that decodes to a Remove record).
	ErrorCodeUnexpectedRecord ErrorCode = "UNEXPECTED_RECORD"

	// ErrorCodeProtocol indicates a malformed request at the wire-protocol
	// boundary (§6.2): wrong arity, missing array marker, bad bulk-string
	// length prefix.
	ErrorCodeProtocol ErrorCode = "PROTOCOL_ERROR"

	// ErrorCodeBackend indicates a failure inside the alternative
	// ordered-store backend (§4.7) that isn't more specifically classified.
	ErrorCodeBackend ErrorCode = "BACKEND_ERROR"

	// ErrorCodeUtf8 indicates bytes read back from a backend are not valid
	// UTF-8, violating the text-value contract (§3).
	ErrorCodeUtf8 ErrorCode = "UTF8_ERROR"
)
