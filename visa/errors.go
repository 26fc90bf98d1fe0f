package visa

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for the fatal VISA conditions. Each one corresponds to a
// single VI_ERROR_* status code; the classifier in status.go maps raw status
// codes onto these values, so callers can test for a specific condition with
// errors.Is.
var (
	// ErrSystem indicates an unknown system error (miscellaneous error).
	ErrSystem = errors.New("visa: unknown system error (miscellaneous error)")

	// ErrInvalidObject indicates that the given session or object reference is invalid.
	ErrInvalidObject = errors.New("visa: the given session or object reference is invalid")

	// ErrResourceLocked indicates that the specified type of lock cannot be obtained,
	// or the specified operation cannot be performed, because the resource is locked.
	ErrResourceLocked = errors.New("visa: resource is locked")

	// ErrInvalidExpression indicates an invalid expression specified for search.
	ErrInvalidExpression = errors.New("visa: invalid expression specified for search")

	// ErrResourceNotFound indicates insufficient location information, or that the
	// device or resource is not present in the system.
	ErrResourceNotFound = errors.New("visa: device or resource is not present in the system")

	// ErrInvalidResourceName indicates an invalid resource reference (parsing error),
	// including resource names containing an embedded null byte.
	ErrInvalidResourceName = errors.New("visa: invalid resource name")

	// ErrInvalidAccessMode indicates an invalid access mode.
	ErrInvalidAccessMode = errors.New("visa: invalid access mode")

	// ErrTimeout indicates that the timeout expired before the operation completed.
	ErrTimeout = errors.New("visa: timeout expired before operation completed")

	// ErrClosingFailed indicates that the previously allocated data structures
	// corresponding to this session or object reference cannot be deallocated.
	ErrClosingFailed = errors.New("visa: unable to deallocate session or object data structures")

	// ErrInvalidDegree indicates that the specified degree is invalid.
	ErrInvalidDegree = errors.New("visa: specified degree is invalid")

	// ErrInvalidJobID indicates that the specified job identifier is invalid.
	ErrInvalidJobID = errors.New("visa: specified job identifier is invalid")

	// ErrAttributeNotSupported indicates that the specified attribute is not defined
	// or supported by the referenced session, event, or find list.
	ErrAttributeNotSupported = errors.New("visa: attribute not defined or supported by the referenced object")

	// ErrAttributeStateNotSupported indicates that the specified state of the
	// attribute is not valid, or is not supported as defined by the object.
	ErrAttributeStateNotSupported = errors.New("visa: attribute state not valid or not supported")

	// ErrAttributeReadOnly indicates that the specified attribute is read-only.
	ErrAttributeReadOnly = errors.New("visa: attribute is read-only")

	// ErrInvalidLockType indicates that the specified type of lock is not supported
	// by this resource.
	ErrInvalidLockType = errors.New("visa: lock type not supported by this resource")

	// ErrInvalidAccessKey indicates that the access key to the resource associated
	// with this session is invalid.
	ErrInvalidAccessKey = errors.New("visa: invalid access key")

	// ErrInvalidEvent indicates that the specified event type is not supported by
	// the resource.
	ErrInvalidEvent = errors.New("visa: event type not supported by the resource")

	// ErrInvalidMechanism indicates an invalid mechanism.
	ErrInvalidMechanism = errors.New("visa: invalid mechanism specified")

	// ErrHandlerNotInstalled indicates that a handler is not currently installed
	// for the specified event.
	ErrHandlerNotInstalled = errors.New("visa: handler not installed for the specified event")

	// ErrInvalidHandlerReference indicates that the given handler reference is invalid.
	ErrInvalidHandlerReference = errors.New("visa: invalid handler reference")

	// ErrInvalidContext indicates that the specified event context is invalid.
	ErrInvalidContext = errors.New("visa: invalid event context")

	// ErrQueueOverflow indicates that the event queue for the specified type has
	// overflowed, usually due to previous events not having been closed.
	ErrQueueOverflow = errors.New("visa: event queue overflow")

	// ErrNotEnabled indicates that the session must be enabled for events of the
	// specified type in order to receive them.
	ErrNotEnabled = errors.New("visa: session not enabled for events of the specified type")

	// ErrAbort indicates that the operation was aborted.
	ErrAbort = errors.New("visa: operation aborted")

	// ErrRawWriteProtocolViolation indicates a violation of the raw write protocol
	// during transfer.
	ErrRawWriteProtocolViolation = errors.New("visa: raw write protocol violation during transfer")

	// ErrRawReadProtocolViolation indicates a violation of the raw read protocol
	// during transfer.
	ErrRawReadProtocolViolation = errors.New("visa: raw read protocol violation during transfer")

	// ErrOutputProtocolViolation indicates that the device reported an output
	// protocol error during transfer.
	ErrOutputProtocolViolation = errors.New("visa: device reported an output protocol error during transfer")

	// ErrInputProtocolViolation indicates that the device reported an input
	// protocol error during transfer.
	ErrInputProtocolViolation = errors.New("visa: device reported an input protocol error during transfer")

	// ErrBus indicates that a bus error occurred during transfer.
	ErrBus = errors.New("visa: bus error occurred during transfer")

	// ErrInProgress indicates that the asynchronous operation cannot be queued
	// because there is already an operation in progress.
	ErrInProgress = errors.New("visa: operation already in progress")

	// ErrInvalidSetup indicates that the operation cannot start because the setup
	// is invalid (attributes set to an inconsistent state).
	ErrInvalidSetup = errors.New("visa: setup is invalid")

	// ErrQueue indicates that the asynchronous operation cannot be queued, usually
	// due to the I/O completion event not being enabled or insufficient queue space.
	ErrQueue = errors.New("visa: unable to queue operation")

	// ErrAllocation indicates insufficient system resources to perform the
	// necessary memory allocation.
	ErrAllocation = errors.New("visa: insufficient system resources for memory allocation")

	// ErrInvalidMask indicates an invalid buffer mask.
	ErrInvalidMask = errors.New("visa: invalid buffer mask specified")

	// ErrIO indicates that the operation could not be performed because of an I/O error.
	ErrIO = errors.New("visa: I/O error")

	// ErrInvalidFormat indicates an invalid format specifier in the format string.
	ErrInvalidFormat = errors.New("visa: invalid format specifier in format string")

	// ErrFormatNotSupported indicates an unsupported format specifier in the
	// format string.
	ErrFormatNotSupported = errors.New("visa: format specifier not supported")

	// ErrTriggerLineInUse indicates that the specified trigger line is currently in use.
	ErrTriggerLineInUse = errors.New("visa: trigger line currently in use")

	// ErrModeNotSupported indicates that the specified mode is not supported by
	// this VISA implementation.
	ErrModeNotSupported = errors.New("visa: mode not supported by this implementation")

	// ErrServiceRequestNotReceived indicates that a service request has not been
	// received for the session.
	ErrServiceRequestNotReceived = errors.New("visa: service request not received for the session")

	// ErrInvalidAddressSpace indicates an invalid address space.
	ErrInvalidAddressSpace = errors.New("visa: invalid address space specified")

	// ErrInvalidOffset indicates an invalid offset.
	ErrInvalidOffset = errors.New("visa: invalid offset specified")

	// ErrInvalidWidth indicates an invalid source or destination width.
	ErrInvalidWidth = errors.New("visa: invalid source or destination width specified")

	// ErrOffsetNotAccessible indicates that the specified offset is not accessible
	// from this hardware.
	ErrOffsetNotAccessible = errors.New("visa: offset not accessible from this hardware")

	// ErrVariableWidthNotSupported indicates that source and destination widths
	// that differ cannot be supported.
	ErrVariableWidthNotSupported = errors.New("visa: differing source and destination widths not supported")

	// ErrSessionNotMapped indicates that the specified session is not currently mapped.
	ErrSessionNotMapped = errors.New("visa: session not currently mapped")

	// ErrResponsePending indicates that a previous response is still pending,
	// causing a multiple query error.
	ErrResponsePending = errors.New("visa: previous response still pending")

	// ErrNoListeners indicates that a no-listeners condition was detected
	// (both NRFD and NDAC are deasserted).
	ErrNoListeners = errors.New("visa: no listeners condition detected")

	// ErrNotControllerInCharge indicates that the interface associated with this
	// session is not currently the controller in charge.
	ErrNotControllerInCharge = errors.New("visa: interface is not the controller in charge")

	// ErrNotSystemController indicates that the interface associated with this
	// session is not the system controller.
	ErrNotSystemController = errors.New("visa: interface is not the system controller")

	// ErrOperationNotSupported indicates that the given session or object reference
	// does not support this operation.
	ErrOperationNotSupported = errors.New("visa: operation not supported by the given object")

	// ErrInterruptPending indicates that an interrupt is still pending from a
	// previous call.
	ErrInterruptPending = errors.New("visa: interrupt still pending from a previous call")

	// ErrSerialParity indicates that a parity error occurred during transfer.
	ErrSerialParity = errors.New("visa: parity error during transfer")

	// ErrSerialFraming indicates that a framing error occurred during transfer.
	ErrSerialFraming = errors.New("visa: framing error during transfer")

	// ErrSerialOverrun indicates that an overrun error occurred during transfer;
	// a character was not read from the hardware before the next character arrived.
	ErrSerialOverrun = errors.New("visa: overrun error during transfer")

	// ErrTriggerNotMapped indicates that the path from the trigger source to the
	// trigger destination is not currently mapped.
	ErrTriggerNotMapped = errors.New("visa: trigger path not mapped")

	// ErrOffsetNotAligned indicates that the specified offset is not properly
	// aligned for the access width of the operation.
	ErrOffsetNotAligned = errors.New("visa: offset not aligned for the access width")

	// ErrUserBuffer indicates that a specified user buffer is not valid or cannot
	// be accessed for the required size.
	ErrUserBuffer = errors.New("visa: user buffer not valid or not accessible for the required size")

	// ErrResourceBusy indicates that the resource is valid but cannot currently
	// be accessed.
	ErrResourceBusy = errors.New("visa: resource is valid but currently busy")

	// ErrWidthNotSupported indicates that the specified width is not supported by
	// this hardware.
	ErrWidthNotSupported = errors.New("visa: width not supported by this hardware")

	// ErrInvalidParameter indicates that the value of some unknown parameter is invalid.
	ErrInvalidParameter = errors.New("visa: value of some parameter is invalid")

	// ErrInvalidProtocol indicates that the specified protocol is invalid.
	ErrInvalidProtocol = errors.New("visa: invalid protocol specified")

	// ErrInvalidSize indicates an invalid window size.
	ErrInvalidSize = errors.New("visa: invalid size of window specified")

	// ErrWindowMapped indicates that the specified session currently contains a
	// mapped window.
	ErrWindowMapped = errors.New("visa: session currently contains a mapped window")

	// ErrOperationNotImplemented indicates that the given operation is not implemented.
	ErrOperationNotImplemented = errors.New("visa: operation not implemented")

	// ErrInvalidLength indicates an invalid length.
	ErrInvalidLength = errors.New("visa: invalid length specified")

	// ErrInvalidMode indicates that the specified mode is invalid.
	ErrInvalidMode = errors.New("visa: invalid mode specified")

	// ErrSessionNotLocked indicates that the current session did not have any lock
	// on the resource.
	ErrSessionNotLocked = errors.New("visa: session does not hold a lock on the resource")

	// ErrMemoryNotShared indicates that the device does not export any memory.
	ErrMemoryNotShared = errors.New("visa: device does not export any memory")

	// ErrLibraryNotFound indicates that a required code library could not be
	// located or loaded.
	ErrLibraryNotFound = errors.New("visa: required code library not found or not loadable")

	// ErrInterruptNotSupported indicates that the interface cannot generate an
	// interrupt on the requested level or with the requested status ID value.
	ErrInterruptNotSupported = errors.New("visa: interrupt not supported on the requested level")

	// ErrInvalidLine indicates that the value specified by the line parameter is invalid.
	ErrInvalidLine = errors.New("visa: invalid line parameter")

	// ErrFileAccess indicates an error while trying to open the specified file,
	// possibly due to an invalid path or lack of access rights.
	ErrFileAccess = errors.New("visa: file open failed (invalid path or access rights)")

	// ErrFileIO indicates an error while performing I/O on the specified file.
	ErrFileIO = errors.New("visa: file I/O error")

	// ErrLineNotSupported indicates that one of the specified trigger lines is not
	// supported, or the combination of lines is not a valid mapping.
	ErrLineNotSupported = errors.New("visa: trigger line or line combination not supported")

	// ErrMechanismNotSupported indicates that the specified mechanism is not
	// supported for the given event type.
	ErrMechanismNotSupported = errors.New("visa: mechanism not supported for the given event type")

	// ErrInterfaceNumberNotConfigured indicates that the interface type is valid
	// but the specified interface number is not configured.
	ErrInterfaceNumberNotConfigured = errors.New("visa: interface number not configured")

	// ErrConnectionLost indicates that the connection for the given session has
	// been lost.
	ErrConnectionLost = errors.New("visa: connection lost")

	// ErrMachineNotAvailable indicates that the remote machine does not exist or
	// is not accepting any connections.
	ErrMachineNotAvailable = errors.New("visa: remote machine does not exist or is not accepting connections")

	// ErrNoPermission indicates that access to the resource or remote machine is
	// denied due to lack of sufficient privileges.
	ErrNoPermission = errors.New("visa: access denied due to insufficient privileges")
)

// Sentinel errors for library invariant violations.
var (
	// ErrInvalidUTF8 indicates that a read buffer contains invalid UTF-8.
	ErrInvalidUTF8 = errors.New("visa: buffer contains invalid UTF-8")

	// ErrNoNullTerminator indicates that a fixed-size description buffer returned
	// by the driver does not contain a null terminator.
	ErrNoNullTerminator = errors.New("visa: string is not null terminated")
)

// InvalidStatusError is returned by the classifier when a negative status code
// does not appear in the fatal condition table. The raw code is preserved.
type InvalidStatusError struct {
	Status Status
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("visa: invalid error code supplied from driver: %d", int32(e.Status))
}

// InvalidCompletionCodeError is returned by the classifier when a non-negative
// status code does not appear in the completion code table. The raw code is
// preserved.
type InvalidCompletionCodeError struct {
	Status Status
}

func (e *InvalidCompletionCodeError) Error() string {
	return fmt.Sprintf("visa: invalid completion code supplied from driver: %d", int32(e.Status))
}

// InvalidTimeoutError indicates that a custom timeout duration does not fit the
// driver's 32-bit millisecond timeout range.
type InvalidTimeoutError struct {
	Duration time.Duration
}

func (e *InvalidTimeoutError) Error() string {
	return fmt.Sprintf("visa: invalid timeout value: %v", e.Duration)
}

// WriteLengthMismatchError indicates that the driver reported a byte count
// different from the length of the command that was written. A successful
// completion code alone is not sufficient proof of a complete write.
type WriteLengthMismatchError struct {
	// Written is the byte count reported by the driver.
	Written int
	// Expected is the length of the command passed to Write.
	Expected int
}

func (e *WriteLengthMismatchError) Error() string {
	return fmt.Sprintf("visa: write reported %d bytes instead of %d", e.Written, e.Expected)
}

// UnexpectedCompletionCodeError indicates that a read chunk completed with a
// code that is neither a stop condition (Success, TerminationCharacterRead)
// nor a continue condition (MaximumCount).
type UnexpectedCompletionCodeError struct {
	Code CompletionCode
}

func (e *UnexpectedCompletionCodeError) Error() string {
	return fmt.Sprintf("visa: unexpected completion code: %s", e.Code)
}
