package visa

import (
	"math"
	"time"
)

// Timeout is the closed set of blocking-I/O timeout choices for a session.
//
// The zero value is Immediate. Custom durations are carried with millisecond
// resolution and must fit the driver's 32-bit timeout range; an oversized
// duration is a configuration error, never silently clamped.
type Timeout struct {
	kind     timeoutKind
	duration time.Duration
}

type timeoutKind uint8

const (
	timeoutImmediate timeoutKind = iota
	timeoutCustom
	timeoutMaximum
	timeoutInfinite
)

// Wire values for the non-custom timeout choices.
const (
	wireTimeoutImmediate uint32 = 0
	wireTimeoutMaximum   uint32 = 0xFFFFFFFE
	wireTimeoutInfinite  uint32 = 0xFFFFFFFF
)

// Immediate is a zero timeout: blocking calls fail at once when no data is
// available.
func Immediate() Timeout { return Timeout{kind: timeoutImmediate} }

// After is a bounded custom timeout. d is truncated to millisecond resolution
// when converted to the wire form.
func After(d time.Duration) Timeout { return Timeout{kind: timeoutCustom, duration: d} }

// Maximum is the largest finite timeout the driver supports.
func Maximum() Timeout { return Timeout{kind: timeoutMaximum} }

// Infinite disables the timeout entirely.
func Infinite() Timeout { return Timeout{kind: timeoutInfinite} }

// wireValue converts the timeout to the driver's numeric millisecond form.
// A custom duration whose millisecond count exceeds the uint32 range fails
// with *InvalidTimeoutError.
func (t Timeout) wireValue() (uint32, error) {
	switch t.kind {
	case timeoutCustom:
		ms := t.duration.Milliseconds()
		if ms < 0 || ms > math.MaxUint32 {
			return 0, &InvalidTimeoutError{Duration: t.duration}
		}

		return uint32(ms), nil

	case timeoutMaximum:
		return wireTimeoutMaximum, nil

	case timeoutInfinite:
		return wireTimeoutInfinite, nil

	default:
		return wireTimeoutImmediate, nil
	}
}

// String returns a human-readable form of the timeout.
func (t Timeout) String() string {
	switch t.kind {
	case timeoutCustom:
		return t.duration.String()
	case timeoutMaximum:
		return "maximum"
	case timeoutInfinite:
		return "infinite"
	default:
		return "immediate"
	}
}

// AccessMode controls contention semantics when a session is opened.
type AccessMode uint32

const (
	// NoLock opens the session without any lock.
	NoLock AccessMode = 0
	// ExclusiveLock acquires an exclusive lock on the resource.
	ExclusiveLock AccessMode = 1
	// SharedLock acquires a shared lock on the resource.
	SharedLock AccessMode = 2
)

// String returns a human-readable form of the access mode.
func (m AccessMode) String() string {
	switch m {
	case ExclusiveLock:
		return "exclusive-lock"
	case SharedLock:
		return "shared-lock"
	default:
		return "no-lock"
	}
}

// FlushMode is a bitset selecting which session buffers one Flush call
// operates on, and whether each is flushed or discarded.
type FlushMode uint16

const (
	// FlushReadBuffer flushes the formatted-I/O read buffer.
	FlushReadBuffer FlushMode = 1 << 0
	// FlushWriteBuffer flushes the formatted-I/O write buffer to the device.
	FlushWriteBuffer FlushMode = 1 << 1
	// FlushReadBufferDiscard discards the formatted-I/O read buffer contents.
	FlushReadBufferDiscard FlushMode = 1 << 2
	// FlushWriteBufferDiscard discards the formatted-I/O write buffer contents.
	FlushWriteBufferDiscard FlushMode = 1 << 3
	// FlushIOInputBuffer flushes the low-level I/O receive buffer.
	FlushIOInputBuffer FlushMode = 1 << 4
	// FlushIOOutputBuffer flushes the low-level I/O transmit buffer to the device.
	FlushIOOutputBuffer FlushMode = 1 << 5
	// FlushIOInputBufferDiscard discards the low-level I/O receive buffer contents.
	FlushIOInputBufferDiscard FlushMode = 1 << 6
	// FlushIOOutputBufferDiscard discards the low-level I/O transmit buffer contents.
	FlushIOOutputBufferDiscard FlushMode = 1 << 7
)
