package ieee488

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentification(t *testing.T) {
	id, err := ParseIdentification("Keysight Technologies,34465A,MY57501234,A.03.01-02.40\n")
	require.NoError(t, err)

	assert.Equal(t, "Keysight Technologies", id.Manufacturer)
	assert.Equal(t, "34465A", id.Model)
	assert.Equal(t, "MY57501234", id.Serial)
	assert.Equal(t, "A.03.01-02.40", id.Firmware)
}

func TestParseIdentification_EmptyFields(t *testing.T) {
	// Four fields are required but they may be empty.
	id, err := ParseIdentification(",,,")
	require.NoError(t, err)
	assert.Equal(t, Identification{}, id)
}

func TestParseIdentification_WrongFieldCount(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{name: "too few", response: "Acme,X200,0042"},
		{name: "too many", response: "Acme,X200,0042,1.0,extra"},
		{name: "empty", response: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIdentification(tt.response)
			require.ErrorIs(t, err, ErrIdentificationParse)
			assert.Contains(t, err.Error(), tt.response)
		})
	}
}

func TestIdentification_String(t *testing.T) {
	id := Identification{
		Manufacturer: "Acme",
		Model:        "X200",
		Serial:       "0042",
		Firmware:     "1.0",
	}
	assert.Equal(t, "Acme,X200,0042,1.0", id.String())
}
