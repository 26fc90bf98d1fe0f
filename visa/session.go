package visa

import (
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/arloliu/go-visa/internal/pool"
	"github.com/arloliu/go-visa/logger"
)

// readChunkSize is the size of the scratch buffer used by each iteration of
// the Read reassembly loop. It is an implementation choice, not a protocol
// constant; responses larger than one chunk arrive as a MaximumCount sequence.
const readChunkSize = 4096

// Session owns one open driver handle to an instrument or interface and
// exposes blocking, message-oriented I/O on it.
//
// Sessions are created only by ResourceManager.OpenSession. A Session is not
// goroutine-safe: the caller must serialize concurrent use, and in particular
// must not interleave other I/O between the write and read halves of a Query.
type Session struct {
	drv     Driver
	handle  Object
	logger  logger.Logger
	metrics SessionMetrics
	closed  atomic.Bool
}

func newSession(drv Driver, handle Object, l logger.Logger) *Session {
	return &Session{drv: drv, handle: handle, logger: l}
}

// Session returns the receiver. It exists so *Session satisfies capability
// interfaces that require access to the underlying session, such as
// ieee488.SessionProvider.
func (s *Session) Session() *Session { return s }

// Metrics returns the session's atomic metrics.
func (s *Session) Metrics() *SessionMetrics { return &s.metrics }

// SetTimeout configures how long blocking I/O operations on the session wait.
//
// The timeout is converted to the driver's numeric form first; a custom
// duration outside the representable range fails with *InvalidTimeoutError.
func (s *Session) SetTimeout(timeout Timeout) error {
	value, err := timeout.wireValue()
	if err != nil {
		return err
	}

	code, err := s.drv.SetAttribute(s.handle, AttrTimeoutValue, value).Classify()
	if err != nil {
		s.metrics.incErrCount()
		return err
	}

	s.logger.Debug("visa: timeout set", "timeout", timeout.String(), "code", code.String())

	return nil
}

// Write sends the exact bytes of command to the device.
//
// A successful completion code alone is not sufficient proof of a complete
// write: the driver's reported byte count must equal len(command), otherwise
// Write fails with *WriteLengthMismatchError carrying both values.
func (s *Session) Write(command string) error {
	written, status := s.drv.Write(s.handle, []byte(command))

	code, err := status.Classify()
	if err != nil {
		s.metrics.incErrCount()
		return err
	}

	s.logger.Debug("visa: write completed", "command", sanitize(command), "code", code.String(), "bytes", written)

	if int(written) != len(command) {
		s.metrics.incErrCount()
		return &WriteLengthMismatchError{Written: int(written), Expected: len(command)}
	}

	s.metrics.incWriteCount()
	s.metrics.addBytesWritten(uint64(written))

	return nil
}

// Read receives one complete, terminated message from the device.
//
// It loops over fixed-size chunk reads, appending each chunk to the output:
// MaximumCount means the chunk buffer was filled exactly and more data may
// remain, so the loop continues; Success or TerminationCharacterRead ends the
// message; any other completion code is an anomaly and fails with
// *UnexpectedCompletionCodeError. The accumulated bytes must be valid UTF-8
// or Read fails with ErrInvalidUTF8; invalid encodings are never repaired.
func (s *Session) Read() (string, error) {
	var output []byte
	buf := pool.GetBuffer(readChunkSize)
	defer pool.PutBuffer(buf)

	for {
		n, status := s.drv.Read(s.handle, buf)

		code, err := status.Classify()
		if err != nil {
			s.metrics.incErrCount()
			return "", err
		}

		s.logger.Debug("visa: read chunk completed", "code", code.String(), "bytes", n)

		output = append(output, buf[:n]...)
		s.metrics.incReadChunkCount()

		if code == MaximumCount {
			continue
		}

		if code == Success || code == TerminationCharacterRead {
			break
		}

		s.metrics.incErrCount()

		return "", &UnexpectedCompletionCodeError{Code: code}
	}

	if !utf8.Valid(output) {
		s.metrics.incErrCount()
		return "", ErrInvalidUTF8
	}

	s.metrics.incReadCount()
	s.metrics.addBytesRead(uint64(len(output)))

	return string(output), nil
}

// Query writes command and reads back the device's response.
//
// The two halves are sequential and non-interleavable: no other write or read
// may execute on the session between them.
func (s *Session) Query(command string) (string, error) {
	if err := s.Write(command); err != nil {
		return "", err
	}

	response, err := s.Read()
	if err != nil {
		return "", err
	}

	s.metrics.incQueryCount()

	return response, nil
}

// Flush applies the requested buffer-flush bitset to the session.
func (s *Session) Flush(mode FlushMode) error {
	code, err := s.drv.Flush(s.handle, uint16(mode)).Classify()
	if err != nil {
		s.metrics.incErrCount()
		return err
	}

	s.logger.Debug("visa: flush completed", "code", code.String())

	return nil
}

// Close releases the underlying driver handle.
//
// The close is best-effort and idempotent: by the time teardown runs there is
// no caller left to receive an error, so a close failure is logged and never
// propagated. Subsequent calls are no-ops.
func (s *Session) Close() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}

	code, err := s.drv.Close(s.handle).Classify()
	if err != nil {
		s.logger.Error("visa: closing session failed", "error", err)
		return
	}

	s.logger.Debug("visa: session closed", "code", code.String())
}

// sanitize trims the trailing terminator from a raw command for logging.
func sanitize(command string) string {
	return strings.TrimRight(command, "\r\n")
}
