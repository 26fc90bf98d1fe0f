package visatest

import (
	"bytes"
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/arloliu/go-visa/internal/queue"
	"github.com/arloliu/go-visa/internal/util"
	"github.com/arloliu/go-visa/visa"
)

// Driver is an in-memory visa.Driver backed by simulated instruments.
//
// Resources are registered by name before use; sessions, resource manager
// contexts, and find lists are tracked in concurrent handle tables, so the
// driver is safe for concurrent calls on distinct handles.
type Driver struct {
	mu        sync.Mutex
	resources []registration

	nextHandle atomic.Uint32

	rms       *xsync.MapOf[visa.Object, struct{}]
	sessions  *xsync.MapOf[visa.Object, *simSession]
	findLists *xsync.MapOf[visa.Object, *findList]
}

type registration struct {
	name string
	inst *Instrument
}

// simSession is one open session to a simulated instrument.
type simSession struct {
	mu      sync.Mutex
	inst    *Instrument
	input   []byte // partial command line not yet terminated
	pending []byte // queued response bytes
	timeout uint32 // last VI_ATTR_TMO_VALUE set, recorded only
}

// findList is the remaining results of one resource search.
type findList struct {
	mu        sync.Mutex
	remaining *queue.Fifo[string]
}

// NewDriver creates an empty simulated driver.
func NewDriver() *Driver {
	return &Driver{
		rms:       xsync.NewMapOf[visa.Object, struct{}](),
		sessions:  xsync.NewMapOf[visa.Object, *simSession](),
		findLists: xsync.NewMapOf[visa.Object, *findList](),
	}
}

// Register adds a simulated instrument under the given resource name.
// Registration order is the enumeration order reported by FindFirst.
func (d *Driver) Register(name string, inst *Instrument) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.resources = append(d.resources, registration{name: name, inst: inst})
}

func (d *Driver) allocHandle() visa.Object {
	return visa.Object(d.nextHandle.Add(1))
}

// OpenDefaultRM acquires a resource manager context.
func (d *Driver) OpenDefaultRM() (visa.Object, visa.Status) {
	handle := d.allocHandle()
	d.rms.Store(handle, struct{}{})

	return handle, visa.StatusSuccess
}

// Open opens a session to a registered resource.
func (d *Driver) Open(rm visa.Object, name string, mode uint32, timeout uint32) (visa.Object, visa.Status) {
	if _, ok := d.rms.Load(rm); !ok {
		return 0, visa.StatusErrorInvalidObject
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, reg := range d.resources {
		if reg.name == name {
			handle := d.allocHandle()
			d.sessions.Store(handle, &simSession{inst: reg.inst, timeout: timeout})

			return handle, visa.StatusSuccess
		}
	}

	return 0, visa.StatusErrorResourceNotFound
}

// Close releases a handle of any kind.
func (d *Driver) Close(obj visa.Object) visa.Status {
	if _, ok := d.rms.LoadAndDelete(obj); ok {
		return visa.StatusSuccess
	}
	if _, ok := d.sessions.LoadAndDelete(obj); ok {
		return visa.StatusSuccess
	}
	if _, ok := d.findLists.LoadAndDelete(obj); ok {
		return visa.StatusSuccess
	}

	return visa.StatusErrorInvalidObject
}

// SetAttribute records attribute changes on a session handle.
func (d *Driver) SetAttribute(obj visa.Object, attr visa.Attribute, value uint32) visa.Status {
	sess, ok := d.sessions.Load(obj)
	if !ok {
		return visa.StatusErrorInvalidObject
	}

	if attr != visa.AttrTimeoutValue {
		return visa.StatusErrorAttributeNotSupported
	}

	sess.mu.Lock()
	sess.timeout = value
	sess.mu.Unlock()

	return visa.StatusSuccess
}

// Write feeds command bytes to the session's instrument. Complete,
// newline-terminated lines are executed immediately and their responses
// queued on this session.
func (d *Driver) Write(obj visa.Object, data []byte) (uint32, visa.Status) {
	sess, ok := d.sessions.Load(obj)
	if !ok {
		return 0, visa.StatusErrorInvalidObject
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	inst := sess.inst
	inst.mu.Lock()
	defer inst.mu.Unlock()

	sess.input = append(sess.input, data...)

	for {
		idx := bytes.IndexByte(sess.input, '\n')
		if idx < 0 {
			break
		}

		line := string(sess.input[:idx+1])
		sess.input = sess.input[idx+1:]

		if response := inst.execute(line); response != "" {
			sess.pending = append(sess.pending, response...)
		}
	}

	written := uint32(len(data))
	if inst.shortWrite >= 0 {
		written = uint32(inst.shortWrite)
		inst.shortWrite = -1
	}

	return written, visa.StatusSuccess
}

// Read delivers queued response bytes.
//
// A fault injected with Instrument.FailNextRead takes precedence. Otherwise:
// no pending data reports a timeout; a chunk that fills buf with data still
// remaining reports maximum-count; delivery of the final byte reports the
// termination character when it is a newline, plain success otherwise.
func (d *Driver) Read(obj visa.Object, buf []byte) (uint32, visa.Status) {
	sess, ok := d.sessions.Load(obj)
	if !ok {
		return 0, visa.StatusErrorInvalidObject
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	inst := sess.inst
	inst.mu.Lock()
	if inst.nextReadStatus != 0 {
		status := inst.nextReadStatus
		inst.nextReadStatus = 0
		inst.mu.Unlock()

		return 0, status
	}
	inst.mu.Unlock()

	if len(sess.pending) == 0 {
		return 0, visa.StatusErrorTimeout
	}

	n := copy(buf, sess.pending)
	sess.pending = sess.pending[n:]

	if len(sess.pending) > 0 {
		return uint32(n), visa.StatusSuccessMaxCount
	}

	if n > 0 && buf[n-1] == '\n' {
		return uint32(n), visa.StatusSuccessTermChar
	}

	return uint32(n), visa.StatusSuccess
}

// Flush applies the buffer-flush bitset: the read-discard modes drop queued
// response bytes, the write-discard modes drop the partial input line, and
// the plain flush modes are no-ops for an in-memory transport.
func (d *Driver) Flush(obj visa.Object, mode uint16) visa.Status {
	sess, ok := d.sessions.Load(obj)
	if !ok {
		return visa.StatusErrorInvalidObject
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if mode&uint16(visa.FlushReadBufferDiscard|visa.FlushIOInputBufferDiscard) != 0 {
		sess.pending = nil
	}
	if mode&uint16(visa.FlushWriteBufferDiscard|visa.FlushIOOutputBufferDiscard) != 0 {
		sess.input = nil
	}

	return visa.StatusSuccess
}

// FindFirst matches registered resource names against the VISA match
// expression, in registration order.
func (d *Driver) FindFirst(rm visa.Object, expr string, desc []byte) (visa.Object, uint32, visa.Status) {
	if _, ok := d.rms.Load(rm); !ok {
		return 0, 0, visa.StatusErrorInvalidObject
	}

	re, err := compileMatchExpression(expr)
	if err != nil {
		return 0, 0, visa.StatusErrorInvalidExpression
	}

	d.mu.Lock()
	registered := util.CloneSlice(d.resources, 0)
	d.mu.Unlock()

	matches := make([]string, 0, len(registered))
	for _, reg := range registered {
		if re.MatchString(reg.name) {
			matches = append(matches, reg.name)
		}
	}

	if len(matches) == 0 {
		// Zero matches is a successful search with an empty result.
		return 0, 0, visa.StatusSuccess
	}

	writeDescription(desc, matches[0])

	remaining := queue.NewFifo[string](len(matches) - 1)
	for _, name := range matches[1:] {
		remaining.Enqueue(name)
	}

	handle := d.allocHandle()
	d.findLists.Store(handle, &findList{remaining: remaining})

	return handle, uint32(len(matches)), visa.StatusSuccess
}

// FindNext delivers the next match of a search.
func (d *Driver) FindNext(list visa.Object, desc []byte) visa.Status {
	fl, ok := d.findLists.Load(list)
	if !ok {
		return visa.StatusErrorInvalidObject
	}

	fl.mu.Lock()
	defer fl.mu.Unlock()

	name, ok := fl.remaining.Dequeue()
	if !ok {
		return visa.StatusErrorResourceNotFound
	}

	writeDescription(desc, name)

	return visa.StatusSuccess
}

// writeDescription writes name into desc as a null-terminated string,
// truncating to the buffer size like a fixed-buffer C API would.
func writeDescription(desc []byte, name string) {
	n := copy(desc, name)
	if n == len(desc) {
		n--
	}
	desc[n] = 0
}

var _ visa.Driver = (*Driver)(nil)
