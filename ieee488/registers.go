package ieee488

import (
	"fmt"
	"strconv"
	"strings"
)

// parseRegisterByte parses a register query response as an unsigned 8-bit
// decimal integer. The response is trimmed of surrounding whitespace first;
// the full trimmed string must be decimal. Failures wrap sentinel with the
// original text.
func parseRegisterByte(response string, sentinel error) (uint8, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(response), 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", sentinel, response)
	}

	return uint8(value), nil
}

// StandardEventStatusRegister is the Standard Event Status Register (SESR)
// read by *ESR?. Unknown bits set by the instrument are retained.
type StandardEventStatusRegister uint8

// Named bits of the standard event status register.
const (
	// ESROperationComplete is set when all pending operations have completed
	// after *OPC.
	ESROperationComplete StandardEventStatusRegister = 1 << 0
	// ESRRequestControl indicates that the device requests to become
	// controller-in-charge.
	ESRRequestControl StandardEventStatusRegister = 1 << 1
	// ESRQueryError indicates a query was improperly formed or the response
	// queue overflowed.
	ESRQueryError StandardEventStatusRegister = 1 << 2
	// ESRDeviceSpecificError indicates an instrument-dependent error condition.
	ESRDeviceSpecificError StandardEventStatusRegister = 1 << 3
	// ESRExecutionError indicates a command could not be executed due to the
	// current instrument state.
	ESRExecutionError StandardEventStatusRegister = 1 << 4
	// ESRCommandError indicates a syntax or semantic error in a received command.
	ESRCommandError StandardEventStatusRegister = 1 << 5
	// ESRUserRequest indicates a local control or front-panel action occurred.
	ESRUserRequest StandardEventStatusRegister = 1 << 6
	// ESRPowerOn indicates a device power-on event was detected.
	ESRPowerOn StandardEventStatusRegister = 1 << 7
)

// ParseStandardEventStatusRegister parses an *ESR? response.
func ParseStandardEventStatusRegister(response string) (StandardEventStatusRegister, error) {
	value, err := parseRegisterByte(response, ErrEventStatusParse)
	if err != nil {
		return 0, err
	}

	return StandardEventStatusRegister(value), nil
}

// Value returns the full register byte, including unknown bits.
func (r StandardEventStatusRegister) Value() uint8 { return uint8(r) }

// OperationComplete reports whether the operation-complete bit is set.
func (r StandardEventStatusRegister) OperationComplete() bool { return r&ESROperationComplete != 0 }

// RequestControl reports whether the request-control bit is set.
func (r StandardEventStatusRegister) RequestControl() bool { return r&ESRRequestControl != 0 }

// QueryError reports whether the query-error bit is set.
func (r StandardEventStatusRegister) QueryError() bool { return r&ESRQueryError != 0 }

// DeviceSpecificError reports whether the device-specific-error bit is set.
func (r StandardEventStatusRegister) DeviceSpecificError() bool { return r&ESRDeviceSpecificError != 0 }

// ExecutionError reports whether the execution-error bit is set.
func (r StandardEventStatusRegister) ExecutionError() bool { return r&ESRExecutionError != 0 }

// CommandError reports whether the command-error bit is set.
func (r StandardEventStatusRegister) CommandError() bool { return r&ESRCommandError != 0 }

// UserRequest reports whether the user-request bit is set.
func (r StandardEventStatusRegister) UserRequest() bool { return r&ESRUserRequest != 0 }

// PowerOn reports whether the power-on bit is set.
func (r StandardEventStatusRegister) PowerOn() bool { return r&ESRPowerOn != 0 }

// StandardEventStatusEnableRegister is the Standard Event Status Enable
// Register (SESER) set by *ESE and read by *ESE?. Its bit layout mirrors the
// standard event status register. Unknown bits are retained.
type StandardEventStatusEnableRegister uint8

// Named bits of the standard event status enable register.
const (
	// ESEOperationComplete enables summary of the operation-complete event.
	ESEOperationComplete StandardEventStatusEnableRegister = 1 << 0
	// ESERequestControl enables summary of the request-control event.
	ESERequestControl StandardEventStatusEnableRegister = 1 << 1
	// ESEQueryError enables summary of the query-error event.
	ESEQueryError StandardEventStatusEnableRegister = 1 << 2
	// ESEDeviceSpecificError enables summary of the device-specific-error event.
	ESEDeviceSpecificError StandardEventStatusEnableRegister = 1 << 3
	// ESEExecutionError enables summary of the execution-error event.
	ESEExecutionError StandardEventStatusEnableRegister = 1 << 4
	// ESECommandError enables summary of the command-error event.
	ESECommandError StandardEventStatusEnableRegister = 1 << 5
	// ESEUserRequest enables summary of the user-request event.
	ESEUserRequest StandardEventStatusEnableRegister = 1 << 6
	// ESEPowerOn enables summary of the power-on event.
	ESEPowerOn StandardEventStatusEnableRegister = 1 << 7
)

// ParseStandardEventStatusEnableRegister parses an *ESE? response.
func ParseStandardEventStatusEnableRegister(response string) (StandardEventStatusEnableRegister, error) {
	value, err := parseRegisterByte(response, ErrEventStatusEnableParse)
	if err != nil {
		return 0, err
	}

	return StandardEventStatusEnableRegister(value), nil
}

// Value returns the full register byte, including unknown bits.
func (r StandardEventStatusEnableRegister) Value() uint8 { return uint8(r) }

// OperationComplete reports whether the operation-complete bit is enabled.
func (r StandardEventStatusEnableRegister) OperationComplete() bool {
	return r&ESEOperationComplete != 0
}

// RequestControl reports whether the request-control bit is enabled.
func (r StandardEventStatusEnableRegister) RequestControl() bool { return r&ESERequestControl != 0 }

// QueryError reports whether the query-error bit is enabled.
func (r StandardEventStatusEnableRegister) QueryError() bool { return r&ESEQueryError != 0 }

// DeviceSpecificError reports whether the device-specific-error bit is enabled.
func (r StandardEventStatusEnableRegister) DeviceSpecificError() bool {
	return r&ESEDeviceSpecificError != 0
}

// ExecutionError reports whether the execution-error bit is enabled.
func (r StandardEventStatusEnableRegister) ExecutionError() bool { return r&ESEExecutionError != 0 }

// CommandError reports whether the command-error bit is enabled.
func (r StandardEventStatusEnableRegister) CommandError() bool { return r&ESECommandError != 0 }

// UserRequest reports whether the user-request bit is enabled.
func (r StandardEventStatusEnableRegister) UserRequest() bool { return r&ESEUserRequest != 0 }

// PowerOn reports whether the power-on bit is enabled.
func (r StandardEventStatusEnableRegister) PowerOn() bool { return r&ESEPowerOn != 0 }

// StatusByteRegister is the Status Byte Register (STB) read by *STB?.
// Unknown bits are retained.
type StatusByteRegister uint8

// Named bits of the status byte register.
const (
	// STBQuestionableStatusSummary (bit 3, QUES) is set when one or more
	// conditions in the questionable status condition register group are active.
	STBQuestionableStatusSummary StatusByteRegister = 1 << 3
	// STBMessageAvailable (bit 4, MAV) is set when the instrument has one or
	// more response messages available in the output buffer.
	STBMessageAvailable StatusByteRegister = 1 << 4
	// STBEventStatusBit (bit 5, ESB) is set when at least one enabled event
	// exists: (ESR & ESE) != 0.
	STBEventStatusBit StatusByteRegister = 1 << 5
	// STBRequestService (bit 6, RQS/MSS) indicates that the instrument is
	// requesting service (SRQ). The bit reflects the SRQ state and is not
	// directly writable.
	STBRequestService StatusByteRegister = 1 << 6
	// STBOperationStatusSummary (bit 7, OPER) is set when one or more
	// conditions in the operation status condition register group are active.
	STBOperationStatusSummary StatusByteRegister = 1 << 7
)

// ParseStatusByteRegister parses an *STB? response.
func ParseStatusByteRegister(response string) (StatusByteRegister, error) {
	value, err := parseRegisterByte(response, ErrStatusByteParse)
	if err != nil {
		return 0, err
	}

	return StatusByteRegister(value), nil
}

// Value returns the full register byte, including unknown bits.
func (r StatusByteRegister) Value() uint8 { return uint8(r) }

// QuestionableStatusSummary reports whether the questionable-status summary bit is set.
func (r StatusByteRegister) QuestionableStatusSummary() bool {
	return r&STBQuestionableStatusSummary != 0
}

// MessageAvailable reports whether the message-available bit is set.
func (r StatusByteRegister) MessageAvailable() bool { return r&STBMessageAvailable != 0 }

// EventStatusBit reports whether the event-status summary bit is set.
func (r StatusByteRegister) EventStatusBit() bool { return r&STBEventStatusBit != 0 }

// RequestService reports whether the request-service bit is set.
func (r StatusByteRegister) RequestService() bool { return r&STBRequestService != 0 }

// OperationStatusSummary reports whether the operation-status summary bit is set.
func (r StatusByteRegister) OperationStatusSummary() bool { return r&STBOperationStatusSummary != 0 }

// ServiceRequestEnable is the Service Request Enable Register (SRE) set by
// *SRE and read by *SRE?. It determines which status byte bits generate a
// service request (SRQ) when set.
//
// Bit 6 (RQS/MSS) mirrors a read-only hardware signal in the status byte and
// is intentionally not exposed as a settable bit. Unknown bits are retained.
type ServiceRequestEnable uint8

// Named bits of the service request enable register.
const (
	// SREQuestionableStatus enables service request on questionable status.
	SREQuestionableStatus ServiceRequestEnable = 1 << 3
	// SREMessageAvailable enables service request on message available.
	SREMessageAvailable ServiceRequestEnable = 1 << 4
	// SREEventStatus enables service request on event status.
	SREEventStatus ServiceRequestEnable = 1 << 5
	// SREOperationStatus enables service request on operation status.
	SREOperationStatus ServiceRequestEnable = 1 << 7
)

// ParseServiceRequestEnable parses an *SRE? response.
func ParseServiceRequestEnable(response string) (ServiceRequestEnable, error) {
	value, err := parseRegisterByte(response, ErrServiceRequestEnableParse)
	if err != nil {
		return 0, err
	}

	return ServiceRequestEnable(value), nil
}

// Value returns the full register byte, including unknown bits.
func (r ServiceRequestEnable) Value() uint8 { return uint8(r) }

// QuestionableStatus reports whether service request on questionable status is enabled.
func (r ServiceRequestEnable) QuestionableStatus() bool { return r&SREQuestionableStatus != 0 }

// MessageAvailable reports whether service request on message available is enabled.
func (r ServiceRequestEnable) MessageAvailable() bool { return r&SREMessageAvailable != 0 }

// EventStatus reports whether service request on event status is enabled.
func (r ServiceRequestEnable) EventStatus() bool { return r&SREEventStatus != 0 }

// OperationStatus reports whether service request on operation status is enabled.
func (r ServiceRequestEnable) OperationStatus() bool { return r&SREOperationStatus != 0 }
