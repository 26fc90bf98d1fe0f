package visa

import (
	"sync/atomic"
)

// SessionMetrics contains atomic metrics for one session.
// Metrics can be used as the value of a prometheus CounterFunc or GaugeFunc.
type SessionMetrics struct {
	// WriteCount indicates the number of completed Write calls.
	WriteCount atomic.Uint64
	// ReadCount indicates the number of completed Read calls.
	ReadCount atomic.Uint64
	// QueryCount indicates the number of completed Query calls.
	QueryCount atomic.Uint64
	// BytesWritten indicates the total bytes accepted by the driver.
	BytesWritten atomic.Uint64
	// BytesRead indicates the total bytes accumulated by Read calls.
	BytesRead atomic.Uint64
	// ReadChunkCount indicates the number of driver read chunks consumed,
	// including continuation chunks of multi-chunk messages.
	ReadChunkCount atomic.Uint64
	// ErrCount indicates the number of failed operations on the session.
	ErrCount atomic.Uint64
}

func (m *SessionMetrics) incWriteCount() {
	m.WriteCount.Add(1)
}

func (m *SessionMetrics) incReadCount() {
	m.ReadCount.Add(1)
}

func (m *SessionMetrics) incQueryCount() {
	m.QueryCount.Add(1)
}

func (m *SessionMetrics) addBytesWritten(n uint64) {
	m.BytesWritten.Add(n)
}

func (m *SessionMetrics) addBytesRead(n uint64) {
	m.BytesRead.Add(n)
}

func (m *SessionMetrics) incReadChunkCount() {
	m.ReadChunkCount.Add(1)
}

func (m *SessionMetrics) incErrCount() {
	m.ErrCount.Add(1)
}
