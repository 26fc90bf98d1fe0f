package ieee488

import (
	"fmt"
	"strings"
)

// Identification is the decoded *IDN? response: four required ordered fields
// separated by commas.
type Identification struct {
	Manufacturer string
	Model        string
	Serial       string
	Firmware     string
}

// ParseIdentification parses an *IDN? response line.
//
// The response is trimmed of surrounding whitespace and split on commas;
// exactly four fields are required, otherwise the parse fails with
// ErrIdentificationParse wrapping the original string.
func ParseIdentification(response string) (Identification, error) {
	parts := strings.Split(strings.TrimSpace(response), ",")

	if len(parts) != 4 {
		return Identification{}, fmt.Errorf("%w: expected 4 fields: %q", ErrIdentificationParse, response)
	}

	return Identification{
		Manufacturer: parts[0],
		Model:        parts[1],
		Serial:       parts[2],
		Firmware:     parts[3],
	}, nil
}

// String renders the identification back into its wire form.
func (id Identification) String() string {
	return strings.Join([]string{id.Manufacturer, id.Model, id.Serial, id.Firmware}, ",")
}
