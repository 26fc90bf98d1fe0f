package visa

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeout_WireValue(t *testing.T) {
	tests := []struct {
		name    string
		timeout Timeout
		want    uint32
	}{
		{"immediate", Immediate(), 0},
		{"maximum", Maximum(), 0xFFFFFFFE},
		{"infinite", Infinite(), 0xFFFFFFFF},
		{"custom 5s", After(5 * time.Second), 5000},
		{"custom truncates to milliseconds", After(1500 * time.Microsecond), 1},
		{"custom zero", After(0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.timeout.wireValue()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeout_WireValue_OutOfRange(t *testing.T) {
	// 2^32 ms is just past the representable range.
	d := time.Duration(1<<32) * time.Millisecond

	_, err := After(d).wireValue()
	require.Error(t, err)

	var invalid *InvalidTimeoutError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, d, invalid.Duration)
}

func TestTimeout_String(t *testing.T) {
	assert.Equal(t, "immediate", Immediate().String())
	assert.Equal(t, "maximum", Maximum().String())
	assert.Equal(t, "infinite", Infinite().String())
	assert.Equal(t, "2s", After(2*time.Second).String())
}

func TestTimeout_ZeroValueIsImmediate(t *testing.T) {
	var timeout Timeout

	got, err := timeout.wireValue()
	require.NoError(t, err)
	assert.Equal(t, uint32(0), got)
}

func TestAccessMode_WireValues(t *testing.T) {
	assert.Equal(t, uint32(0), uint32(NoLock))
	assert.Equal(t, uint32(1), uint32(ExclusiveLock))
	assert.Equal(t, uint32(2), uint32(SharedLock))
}

func TestFlushMode_Bits(t *testing.T) {
	assert.Equal(t, uint16(1), uint16(FlushReadBuffer))
	assert.Equal(t, uint16(2), uint16(FlushWriteBuffer))
	assert.Equal(t, uint16(4), uint16(FlushReadBufferDiscard))
	assert.Equal(t, uint16(8), uint16(FlushWriteBufferDiscard))
	assert.Equal(t, uint16(16), uint16(FlushIOInputBuffer))
	assert.Equal(t, uint16(32), uint16(FlushIOOutputBuffer))
	assert.Equal(t, uint16(64), uint16(FlushIOInputBufferDiscard))
	assert.Equal(t, uint16(128), uint16(FlushIOOutputBufferDiscard))

	combined := FlushReadBufferDiscard | FlushWriteBufferDiscard
	assert.Equal(t, uint16(12), uint16(combined))
}
