package ieee488

import "errors"

// Sentinel errors for response-grammar parse failures. Each query has its own
// kind to preserve diagnostic context; parse sites wrap the offending raw text
// with fmt.Errorf("%w: %q", ...).
var (
	// ErrIdentificationParse indicates an *IDN? response without exactly four
	// comma-separated fields.
	ErrIdentificationParse = errors.New("ieee488: invalid identification (*IDN?) response")

	// ErrEventStatusParse indicates a non-decimal *ESR? response.
	ErrEventStatusParse = errors.New("ieee488: invalid standard event status register (*ESR?) response")

	// ErrEventStatusEnableParse indicates a non-decimal *ESE? response.
	ErrEventStatusEnableParse = errors.New("ieee488: invalid standard event status enable register (*ESE?) response")

	// ErrOperationCompleteParse indicates an *OPC? response other than "0" or "1".
	ErrOperationCompleteParse = errors.New("ieee488: invalid operation complete (*OPC?) response")

	// ErrStatusByteParse indicates a non-decimal *STB? response.
	ErrStatusByteParse = errors.New("ieee488: invalid status byte register (*STB?) response")

	// ErrSelfTestParse indicates a *TST? response other than "0" or "1".
	ErrSelfTestParse = errors.New("ieee488: invalid self test (*TST?) response")

	// ErrServiceRequestEnableParse indicates a non-decimal *SRE? response.
	ErrServiceRequestEnableParse = errors.New("ieee488: invalid service request enable (*SRE?) response")
)

// ErrInstrumentNotFound indicates that no resource matched the requested
// instrument identification.
var ErrInstrumentNotFound = errors.New("ieee488: instrument not found")
