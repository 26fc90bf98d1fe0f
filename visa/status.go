package visa

// Status is the raw signed status code returned by every Driver primitive.
//
// Negative values are fatal conditions, non-negative values are success or
// warning completion codes. Callers never interpret a Status directly; the
// Classify method is the single point that turns raw codes into either a
// CompletionCode or an error.
type Status int32

// viError is the base value of all fatal status codes (the sign bit plus the
// VISA facility code), per the VISA specification's _VI_ERROR definition.
const viError Status = -0x80000000 + 0x3FFF0000

// Fatal status codes as published by the VISA specification.
const (
	StatusErrorSystem                 Status = viError + 0x0000
	StatusErrorInvalidObject          Status = viError + 0x000E
	StatusErrorResourceLocked         Status = viError + 0x000F
	StatusErrorInvalidExpression      Status = viError + 0x0010
	StatusErrorResourceNotFound       Status = viError + 0x0011
	StatusErrorInvalidResourceName    Status = viError + 0x0012
	StatusErrorInvalidAccessMode      Status = viError + 0x0013
	StatusErrorTimeout                Status = viError + 0x0015
	StatusErrorClosingFailed          Status = viError + 0x0016
	StatusErrorInvalidDegree          Status = viError + 0x001B
	StatusErrorInvalidJobID           Status = viError + 0x001C
	StatusErrorAttributeNotSupported  Status = viError + 0x001D
	StatusErrorAttributeState         Status = viError + 0x001E
	StatusErrorAttributeReadOnly      Status = viError + 0x001F
	StatusErrorInvalidLockType        Status = viError + 0x0020
	StatusErrorInvalidAccessKey       Status = viError + 0x0021
	StatusErrorInvalidEvent           Status = viError + 0x0026
	StatusErrorInvalidMechanism       Status = viError + 0x0027
	StatusErrorHandlerNotInstalled    Status = viError + 0x0028
	StatusErrorInvalidHandlerRef      Status = viError + 0x0029
	StatusErrorInvalidContext         Status = viError + 0x002A
	StatusErrorQueueOverflow          Status = viError + 0x002D
	StatusErrorNotEnabled             Status = viError + 0x002F
	StatusErrorAbort                  Status = viError + 0x0030
	StatusErrorRawWriteProtViol       Status = viError + 0x0034
	StatusErrorRawReadProtViol        Status = viError + 0x0035
	StatusErrorOutputProtViol         Status = viError + 0x0036
	StatusErrorInputProtViol          Status = viError + 0x0037
	StatusErrorBus                    Status = viError + 0x0038
	StatusErrorInProgress             Status = viError + 0x0039
	StatusErrorInvalidSetup           Status = viError + 0x003A
	StatusErrorQueue                  Status = viError + 0x003B
	StatusErrorAllocation             Status = viError + 0x003C
	StatusErrorInvalidMask            Status = viError + 0x003D
	StatusErrorIO                     Status = viError + 0x003E
	StatusErrorInvalidFormat          Status = viError + 0x003F
	StatusErrorFormatNotSupported     Status = viError + 0x0041
	StatusErrorLineInUse              Status = viError + 0x0042
	StatusErrorModeNotSupported       Status = viError + 0x0046
	StatusErrorSRQNotOccurred         Status = viError + 0x004A
	StatusErrorInvalidSpace           Status = viError + 0x004E
	StatusErrorInvalidOffset          Status = viError + 0x0051
	StatusErrorInvalidWidth           Status = viError + 0x0052
	StatusErrorOffsetNotSupported     Status = viError + 0x0054
	StatusErrorVarWidthNotSupported   Status = viError + 0x0055
	StatusErrorWindowNotMapped        Status = viError + 0x0057
	StatusErrorResponsePending        Status = viError + 0x0059
	StatusErrorNoListeners            Status = viError + 0x005F
	StatusErrorNotCIC                 Status = viError + 0x0060
	StatusErrorNotSystemController    Status = viError + 0x0061
	StatusErrorOperationNotSupported  Status = viError + 0x0067
	StatusErrorInterruptPending       Status = viError + 0x0068
	StatusErrorSerialParity           Status = viError + 0x006A
	StatusErrorSerialFraming          Status = viError + 0x006B
	StatusErrorSerialOverrun          Status = viError + 0x006C
	StatusErrorTriggerNotMapped       Status = viError + 0x006E
	StatusErrorOffsetNotAligned       Status = viError + 0x0070
	StatusErrorUserBuffer             Status = viError + 0x0071
	StatusErrorResourceBusy           Status = viError + 0x0072
	StatusErrorWidthNotSupported      Status = viError + 0x0076
	StatusErrorInvalidParameter       Status = viError + 0x0078
	StatusErrorInvalidProtocol        Status = viError + 0x0079
	StatusErrorInvalidSize            Status = viError + 0x007B
	StatusErrorWindowMapped           Status = viError + 0x0080
	StatusErrorNotImplemented         Status = viError + 0x0081
	StatusErrorInvalidLength          Status = viError + 0x0083
	StatusErrorInvalidMode            Status = viError + 0x0091
	StatusErrorSessionNotLocked       Status = viError + 0x009C
	StatusErrorMemoryNotShared        Status = viError + 0x009D
	StatusErrorLibraryNotFound        Status = viError + 0x009E
	StatusErrorInterruptNotSupported  Status = viError + 0x009F
	StatusErrorInvalidLine            Status = viError + 0x00A0
	StatusErrorFileAccess             Status = viError + 0x00A1
	StatusErrorFileIO                 Status = viError + 0x00A2
	StatusErrorLineNotSupported       Status = viError + 0x00A3
	StatusErrorMechanismNotSupported  Status = viError + 0x00A4
	StatusErrorInterfaceNumNotConfig  Status = viError + 0x00A5
	StatusErrorConnectionLost         Status = viError + 0x00A6
	StatusErrorMachineNotAvailable    Status = viError + 0x00A7
	StatusErrorNoPermission           Status = viError + 0x00A8
)

// Success and warning status codes as published by the VISA specification.
const (
	StatusSuccess                Status = 0x00000000
	StatusSuccessEventEnabled    Status = 0x3FFF0002
	StatusSuccessEventDisabled   Status = 0x3FFF0003
	StatusSuccessQueueEmpty      Status = 0x3FFF0004
	StatusSuccessTermChar        Status = 0x3FFF0005
	StatusSuccessMaxCount        Status = 0x3FFF0006
	StatusSuccessDevNotPresent   Status = 0x3FFF007D
	StatusSuccessTriggerMapped   Status = 0x3FFF007E
	StatusSuccessQueueNotEmpty   Status = 0x3FFF0080
	StatusSuccessNoChain         Status = 0x3FFF0098
	StatusSuccessNestedShared    Status = 0x3FFF0099
	StatusSuccessNestedExclusive Status = 0x3FFF009A
	StatusSuccessSync            Status = 0x3FFF009B
	StatusWarnQueueOverflow      Status = 0x3FFF000C
	StatusWarnConfigNotLoaded    Status = 0x3FFF0077
	StatusWarnNullObject         Status = 0x3FFF0082
	StatusWarnAttributeState     Status = 0x3FFF0084
	StatusWarnUnknownStatus      Status = 0x3FFF0085
	StatusWarnBufferNotSupported Status = 0x3FFF0088
	StatusWarnExtFuncNotImpl     Status = 0x3FFF00A9
)

// CompletionCode is a classified non-fatal outcome of a driver operation.
//
// A CompletionCode is produced only by Status.Classify; callers never
// construct one from a raw code themselves. Warning-class codes are valid,
// noteworthy completions, not errors.
type CompletionCode int

const (
	// Success indicates the operation completed successfully.
	Success CompletionCode = iota
	// EventEnabled indicates the event is already enabled for at least one of
	// the specified mechanisms.
	EventEnabled
	// EventDisabled indicates the event is already disabled for at least one of
	// the specified mechanisms.
	EventDisabled
	// QueueEmpty indicates the operation completed successfully, but the queue
	// was already empty.
	QueueEmpty
	// TerminationCharacterRead indicates the specified termination character
	// was read.
	TerminationCharacterRead
	// MaximumCount indicates the number of bytes read equals the input count;
	// more data may remain.
	MaximumCount
	// DeviceNotPresent indicates the session opened successfully, but the
	// device at the specified address is not responding.
	DeviceNotPresent
	// TriggerPathMapped indicates the path from the trigger source to the
	// trigger destination is already mapped.
	TriggerPathMapped
	// QueueNotEmpty indicates the wait terminated on an event notification and
	// at least one more event of the requested type remains available.
	QueueNotEmpty
	// DoNotInvokeHandler indicates the event was handled and no other handlers
	// should be invoked on this session for this event.
	DoNotInvokeHandler
	// NestedSharedLock indicates the operation completed successfully and this
	// session has nested shared locks.
	NestedSharedLock
	// NestedExclusiveLock indicates the operation completed successfully and
	// this session has nested exclusive locks.
	NestedExclusiveLock
	// SynchronousOperation indicates an asynchronous operation request was
	// actually performed synchronously.
	SynchronousOperation
	// WarnQueueOverflow indicates one or more events were dropped because no
	// queue space was available when they occurred.
	WarnQueueOverflow
	// WarnConfigNotLoaded indicates the specified configuration does not exist
	// or could not be loaded; defaults are in use.
	WarnConfigNotLoaded
	// WarnNullObject indicates the specified object reference is uninitialized.
	WarnNullObject
	// WarnAttributeStateNotSupported indicates the attribute state is valid but
	// not supported by this resource implementation.
	WarnAttributeStateNotSupported
	// WarnUnknownStatus indicates the status code passed to the operation could
	// not be interpreted.
	WarnUnknownStatus
	// WarnBufferNotSupported indicates the specified buffer is not supported.
	WarnBufferNotSupported
	// WarnExtendedFunctionNotImplemented indicates the operation succeeded, but
	// a lower level driver did not implement the extended functionality.
	WarnExtendedFunctionNotImplemented
)

// String returns the VISA specification's description for the completion code.
func (c CompletionCode) String() string {
	switch c {
	case Success:
		return "operation completed successfully"
	case EventEnabled:
		return "specified event is already enabled for at least one of the specified mechanisms"
	case EventDisabled:
		return "specified event is already disabled for at least one of the specified mechanisms"
	case QueueEmpty:
		return "operation completed successfully, but queue was already empty"
	case TerminationCharacterRead:
		return "the specified termination character was read"
	case MaximumCount:
		return "the number of bytes read is equal to the input count"
	case DeviceNotPresent:
		return "session opened successfully, but the device at the specified address is not responding"
	case TriggerPathMapped:
		return "the trigger path is already mapped"
	case QueueNotEmpty:
		return "wait terminated on an event notification with at least one more event available"
	case DoNotInvokeHandler:
		return "event handled successfully; do not invoke any other handlers for this event"
	case NestedSharedLock:
		return "operation completed successfully, and this session has nested shared locks"
	case NestedExclusiveLock:
		return "operation completed successfully, and this session has nested exclusive locks"
	case SynchronousOperation:
		return "asynchronous operation request was actually performed synchronously"
	case WarnQueueOverflow:
		return "one or more events were not raised because no queue space was available"
	case WarnConfigNotLoaded:
		return "the specified configuration does not exist or could not be loaded; using defaults"
	case WarnNullObject:
		return "the specified object reference is uninitialized"
	case WarnAttributeStateNotSupported:
		return "the attribute state is valid but not supported by this resource implementation"
	case WarnUnknownStatus:
		return "the status code passed to the operation could not be interpreted"
	case WarnBufferNotSupported:
		return "the specified buffer is not supported"
	case WarnExtendedFunctionNotImplemented:
		return "the operation succeeded, but a lower level driver did not implement the extended functionality"
	default:
		return "unknown completion code"
	}
}

// fatalErrors maps every published fatal status code onto its sentinel error.
// The table is a bijection with the VISA specification and must be reproduced
// exactly for wire compatibility.
var fatalErrors = map[Status]error{
	StatusErrorSystem:                ErrSystem,
	StatusErrorInvalidObject:         ErrInvalidObject,
	StatusErrorResourceLocked:        ErrResourceLocked,
	StatusErrorInvalidExpression:     ErrInvalidExpression,
	StatusErrorResourceNotFound:      ErrResourceNotFound,
	StatusErrorInvalidResourceName:   ErrInvalidResourceName,
	StatusErrorInvalidAccessMode:     ErrInvalidAccessMode,
	StatusErrorTimeout:               ErrTimeout,
	StatusErrorClosingFailed:         ErrClosingFailed,
	StatusErrorInvalidDegree:         ErrInvalidDegree,
	StatusErrorInvalidJobID:          ErrInvalidJobID,
	StatusErrorAttributeNotSupported: ErrAttributeNotSupported,
	StatusErrorAttributeState:        ErrAttributeStateNotSupported,
	StatusErrorAttributeReadOnly:     ErrAttributeReadOnly,
	StatusErrorInvalidLockType:       ErrInvalidLockType,
	StatusErrorInvalidAccessKey:      ErrInvalidAccessKey,
	StatusErrorInvalidEvent:          ErrInvalidEvent,
	StatusErrorInvalidMechanism:      ErrInvalidMechanism,
	StatusErrorHandlerNotInstalled:   ErrHandlerNotInstalled,
	StatusErrorInvalidHandlerRef:     ErrInvalidHandlerReference,
	StatusErrorInvalidContext:        ErrInvalidContext,
	StatusErrorQueueOverflow:         ErrQueueOverflow,
	StatusErrorNotEnabled:            ErrNotEnabled,
	StatusErrorAbort:                 ErrAbort,
	StatusErrorRawWriteProtViol:      ErrRawWriteProtocolViolation,
	StatusErrorRawReadProtViol:       ErrRawReadProtocolViolation,
	StatusErrorOutputProtViol:        ErrOutputProtocolViolation,
	StatusErrorInputProtViol:         ErrInputProtocolViolation,
	StatusErrorBus:                   ErrBus,
	StatusErrorInProgress:            ErrInProgress,
	StatusErrorInvalidSetup:          ErrInvalidSetup,
	StatusErrorQueue:                 ErrQueue,
	StatusErrorAllocation:            ErrAllocation,
	StatusErrorInvalidMask:           ErrInvalidMask,
	StatusErrorIO:                    ErrIO,
	StatusErrorInvalidFormat:         ErrInvalidFormat,
	StatusErrorFormatNotSupported:    ErrFormatNotSupported,
	StatusErrorLineInUse:             ErrTriggerLineInUse,
	StatusErrorModeNotSupported:      ErrModeNotSupported,
	StatusErrorSRQNotOccurred:        ErrServiceRequestNotReceived,
	StatusErrorInvalidSpace:          ErrInvalidAddressSpace,
	StatusErrorInvalidOffset:         ErrInvalidOffset,
	StatusErrorInvalidWidth:          ErrInvalidWidth,
	StatusErrorOffsetNotSupported:    ErrOffsetNotAccessible,
	StatusErrorVarWidthNotSupported:  ErrVariableWidthNotSupported,
	StatusErrorWindowNotMapped:       ErrSessionNotMapped,
	StatusErrorResponsePending:       ErrResponsePending,
	StatusErrorNoListeners:           ErrNoListeners,
	StatusErrorNotCIC:                ErrNotControllerInCharge,
	StatusErrorNotSystemController:   ErrNotSystemController,
	StatusErrorOperationNotSupported: ErrOperationNotSupported,
	StatusErrorInterruptPending:      ErrInterruptPending,
	StatusErrorSerialParity:          ErrSerialParity,
	StatusErrorSerialFraming:         ErrSerialFraming,
	StatusErrorSerialOverrun:         ErrSerialOverrun,
	StatusErrorTriggerNotMapped:      ErrTriggerNotMapped,
	StatusErrorOffsetNotAligned:      ErrOffsetNotAligned,
	StatusErrorUserBuffer:            ErrUserBuffer,
	StatusErrorResourceBusy:          ErrResourceBusy,
	StatusErrorWidthNotSupported:     ErrWidthNotSupported,
	StatusErrorInvalidParameter:      ErrInvalidParameter,
	StatusErrorInvalidProtocol:       ErrInvalidProtocol,
	StatusErrorInvalidSize:           ErrInvalidSize,
	StatusErrorWindowMapped:          ErrWindowMapped,
	StatusErrorNotImplemented:        ErrOperationNotImplemented,
	StatusErrorInvalidLength:         ErrInvalidLength,
	StatusErrorInvalidMode:           ErrInvalidMode,
	StatusErrorSessionNotLocked:      ErrSessionNotLocked,
	StatusErrorMemoryNotShared:       ErrMemoryNotShared,
	StatusErrorLibraryNotFound:       ErrLibraryNotFound,
	StatusErrorInterruptNotSupported: ErrInterruptNotSupported,
	StatusErrorInvalidLine:           ErrInvalidLine,
	StatusErrorFileAccess:            ErrFileAccess,
	StatusErrorFileIO:                ErrFileIO,
	StatusErrorLineNotSupported:      ErrLineNotSupported,
	StatusErrorMechanismNotSupported: ErrMechanismNotSupported,
	StatusErrorInterfaceNumNotConfig: ErrInterfaceNumberNotConfigured,
	StatusErrorConnectionLost:        ErrConnectionLost,
	StatusErrorMachineNotAvailable:   ErrMachineNotAvailable,
	StatusErrorNoPermission:          ErrNoPermission,
}

// completionCodes maps every published success and warning status code onto
// its CompletionCode. Like fatalErrors, this table is a bijection with the
// VISA specification.
var completionCodes = map[Status]CompletionCode{
	StatusSuccess:                Success,
	StatusSuccessEventEnabled:    EventEnabled,
	StatusSuccessEventDisabled:   EventDisabled,
	StatusSuccessQueueEmpty:      QueueEmpty,
	StatusSuccessTermChar:        TerminationCharacterRead,
	StatusSuccessMaxCount:        MaximumCount,
	StatusSuccessDevNotPresent:   DeviceNotPresent,
	StatusSuccessTriggerMapped:   TriggerPathMapped,
	StatusSuccessQueueNotEmpty:   QueueNotEmpty,
	StatusSuccessNoChain:         DoNotInvokeHandler,
	StatusSuccessNestedShared:    NestedSharedLock,
	StatusSuccessNestedExclusive: NestedExclusiveLock,
	StatusSuccessSync:            SynchronousOperation,
	StatusWarnQueueOverflow:      WarnQueueOverflow,
	StatusWarnConfigNotLoaded:    WarnConfigNotLoaded,
	StatusWarnNullObject:         WarnNullObject,
	StatusWarnAttributeState:     WarnAttributeStateNotSupported,
	StatusWarnUnknownStatus:      WarnUnknownStatus,
	StatusWarnBufferNotSupported: WarnBufferNotSupported,
	StatusWarnExtFuncNotImpl:     WarnExtendedFunctionNotImplemented,
}

// Classify maps a raw status code into exactly one of: a fatal error or a
// success/warning CompletionCode, never both.
//
// Unmatched negative codes yield *InvalidStatusError, unmatched non-negative
// codes yield *InvalidCompletionCodeError; the raw value is preserved in
// either case, never silently coerced.
func (s Status) Classify() (CompletionCode, error) {
	if s < 0 {
		if err, ok := fatalErrors[s]; ok {
			return 0, err
		}

		return 0, &InvalidStatusError{Status: s}
	}

	if code, ok := completionCodes[s]; ok {
		return code, nil
	}

	return 0, &InvalidCompletionCodeError{Status: s}
}
