package visatest

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/arloliu/go-visa/visa"
)

// Instrument is a scriptable simulated IEEE-488.2 device.
//
// It implements the mandatory command set with the standard's register
// semantics and delegates anything else to an optional Handler. All state is
// guarded by one mutex, so several sessions may address the same instrument.
type Instrument struct {
	mu sync.Mutex

	manufacturer string
	model        string
	serial       string
	firmware     string

	esr uint8 // standard event status register
	ese uint8 // standard event status enable register
	stb uint8 // status byte register
	sre uint8 // service request enable register

	// selfTestFails selects the *TST? response: "0" (passed) or "1" (failed).
	selfTestFails bool

	// handler receives commands the mandatory layer does not recognize.
	// It returns the response to queue, or ok=false to ignore the command.
	handler func(command string) (response string, ok bool)

	// nextReadStatus, when non-zero, is returned by the next driver read on
	// any session of this instrument, then cleared.
	nextReadStatus visa.Status

	// shortWrite, when non-negative, overrides the byte count reported by the
	// next driver write, then resets to -1.
	shortWrite int
}

const esrPowerOn = 0x80

// NewInstrument creates a simulated instrument with the given identification
// fields. The power-on bit of the event status register starts set, matching
// a freshly powered device.
func NewInstrument(manufacturer, model, serial, firmware string) *Instrument {
	return &Instrument{
		manufacturer: manufacturer,
		model:        model,
		serial:       serial,
		firmware:     firmware,
		esr:          esrPowerOn,
		shortWrite:   -1,
	}
}

// SetHandler installs a hook for commands outside the mandatory set.
func (inst *Instrument) SetHandler(handler func(command string) (string, bool)) {
	inst.mu.Lock()
	defer inst.mu.Unlock()
	inst.handler = handler
}

// SetSelfTestFails selects whether *TST? reports a failed self test.
func (inst *Instrument) SetSelfTestFails(fails bool) {
	inst.mu.Lock()
	defer inst.mu.Unlock()
	inst.selfTestFails = fails
}

// SetStatusByte sets the simulated status byte register.
func (inst *Instrument) SetStatusByte(value uint8) {
	inst.mu.Lock()
	defer inst.mu.Unlock()
	inst.stb = value
}

// SetEventStatus sets the simulated standard event status register.
func (inst *Instrument) SetEventStatus(value uint8) {
	inst.mu.Lock()
	defer inst.mu.Unlock()
	inst.esr = value
}

// FailNextRead forces the next driver read on any session of this instrument
// to return the given raw status with no data.
func (inst *Instrument) FailNextRead(status visa.Status) {
	inst.mu.Lock()
	defer inst.mu.Unlock()
	inst.nextReadStatus = status
}

// ShortWriteOnce forces the next driver write to report n bytes regardless of
// how many were actually consumed.
func (inst *Instrument) ShortWriteOnce(n int) {
	inst.mu.Lock()
	defer inst.mu.Unlock()
	inst.shortWrite = n
}

// execute runs one newline-terminated command line and returns the response
// to queue, or "" when the command produces none.
func (inst *Instrument) execute(line string) string {
	command := strings.TrimSpace(line)

	switch {
	case command == "*CLS":
		inst.esr = 0
		return ""

	case strings.HasPrefix(command, "*ESE "):
		if v, err := strconv.ParseUint(strings.TrimSpace(command[5:]), 10, 8); err == nil {
			inst.ese = uint8(v)
		}
		return ""

	case command == "*ESE?":
		return fmt.Sprintf("%d\n", inst.ese)

	case command == "*ESR?":
		// Reading the event status register clears it.
		value := inst.esr
		inst.esr = 0

		return fmt.Sprintf("%d\n", value)

	case command == "*IDN?":
		return fmt.Sprintf("%s,%s,%s,%s\n", inst.manufacturer, inst.model, inst.serial, inst.firmware)

	case command == "*OPC":
		// The simulator has no pending operations; complete immediately.
		inst.esr |= 0x01
		return ""

	case command == "*OPC?":
		return "1\n"

	case command == "*RST":
		inst.ese = 0
		inst.sre = 0
		inst.stb = 0
		return ""

	case strings.HasPrefix(command, "*SRE "):
		if v, err := strconv.ParseUint(strings.TrimSpace(command[5:]), 10, 8); err == nil {
			inst.sre = uint8(v)
		}
		return ""

	case command == "*SRE?":
		return fmt.Sprintf("%d\n", inst.sre)

	case command == "*STB?":
		return fmt.Sprintf("%d\n", inst.stb)

	case command == "*TST?":
		if inst.selfTestFails {
			return "1\n"
		}
		return "0\n"

	case command == "*WAI":
		return ""

	default:
		if inst.handler != nil {
			if response, ok := inst.handler(command); ok {
				return response
			}
		}
		// Unrecognized command: set the command-error bit and stay silent,
		// like a real device would.
		inst.esr |= 0x20

		return ""
	}
}
