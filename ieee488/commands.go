package ieee488

import (
	"fmt"
	"strings"

	"github.com/arloliu/go-visa/visa"
)

// SessionProvider is the capability required for the mandatory command set:
// a single accessor returning the underlying session. *visa.Session satisfies
// it directly, as does any instrument type that wraps one.
type SessionProvider interface {
	Session() *visa.Session
}

// ClearStatus sends *CLS, clearing the device's event registers and error queue.
func ClearStatus(p SessionProvider) error {
	return p.Session().Write("*CLS\n")
}

// SetStandardEventStatusEnable sends *ESE with the given enable register value.
func SetStandardEventStatusEnable(p SessionProvider, register StandardEventStatusEnableRegister) error {
	return p.Session().Write(fmt.Sprintf("*ESE %d\n", register.Value()))
}

// StandardEventStatusEnableQuery sends *ESE? and decodes the enable register.
func StandardEventStatusEnableQuery(p SessionProvider) (StandardEventStatusEnableRegister, error) {
	response, err := p.Session().Query("*ESE?\n")
	if err != nil {
		return 0, err
	}

	return ParseStandardEventStatusEnableRegister(response)
}

// StandardEventStatusRegisterQuery sends *ESR? and decodes the event status
// register. Reading the register clears it on the device.
func StandardEventStatusRegisterQuery(p SessionProvider) (StandardEventStatusRegister, error) {
	response, err := p.Session().Query("*ESR?\n")
	if err != nil {
		return 0, err
	}

	return ParseStandardEventStatusRegister(response)
}

// IdentificationQuery sends *IDN? and decodes the four identification fields.
func IdentificationQuery(p SessionProvider) (Identification, error) {
	response, err := p.Session().Query("*IDN?\n")
	if err != nil {
		return Identification{}, err
	}

	return ParseIdentification(response)
}

// OperationComplete sends *OPC, instructing the device to set the
// operation-complete event bit once all pending operations have finished.
func OperationComplete(p SessionProvider) error {
	return p.Session().Write("*OPC\n")
}

// OperationCompleteQuery sends *OPC? and reports whether all pending
// operations have completed: "0" means still pending, "1" means complete.
func OperationCompleteQuery(p SessionProvider) (bool, error) {
	response, err := p.Session().Query("*OPC?\n")
	if err != nil {
		return false, err
	}

	switch strings.TrimSpace(response) {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrOperationCompleteParse, response)
	}
}

// Reset sends *RST, returning the device to its power-on defaults.
func Reset(p SessionProvider) error {
	return p.Session().Write("*RST\n")
}

// SetServiceRequestEnable sends *SRE with the given enable register value.
func SetServiceRequestEnable(p SessionProvider, register ServiceRequestEnable) error {
	return p.Session().Write(fmt.Sprintf("*SRE %d\n", register.Value()))
}

// ServiceRequestEnableQuery sends *SRE? and decodes the enable register.
func ServiceRequestEnableQuery(p SessionProvider) (ServiceRequestEnable, error) {
	response, err := p.Session().Query("*SRE?\n")
	if err != nil {
		return 0, err
	}

	return ParseServiceRequestEnable(response)
}

// ReadStatusByte sends *STB? and decodes the status byte register.
func ReadStatusByte(p SessionProvider) (StatusByteRegister, error) {
	response, err := p.Session().Query("*STB?\n")
	if err != nil {
		return 0, err
	}

	return ParseStatusByteRegister(response)
}

// SelfTestQuery sends *TST? and reports whether the device's self test passed:
// "0" means passed, "1" means failed.
//
// The polarity is inverted relative to OperationCompleteQuery; that is the
// IEEE-488.2 standard's documented semantics and is preserved exactly.
func SelfTestQuery(p SessionProvider) (bool, error) {
	response, err := p.Session().Query("*TST?\n")
	if err != nil {
		return false, err
	}

	switch strings.TrimSpace(response) {
	case "0":
		return true, nil
	case "1":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrSelfTestParse, response)
	}
}

// WaitToContinue sends *WAI, preventing the device from executing further
// commands until all pending operations have completed.
func WaitToContinue(p SessionProvider) error {
	return p.Session().Write("*WAI\n")
}
