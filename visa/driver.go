package visa

// Object is an opaque handle to a driver-side resource: the default resource
// manager context, an open session, or a find list. Handles are owned
// exclusively by the ResourceManager or Session that acquired them and are
// released exactly once through Close.
type Object uint32

// Attribute identifies a driver attribute set through Driver.SetAttribute.
type Attribute uint32

// AttrTimeoutValue is the attribute controlling how long blocking I/O
// operations wait, in milliseconds (VI_ATTR_TMO_VALUE).
const AttrTimeoutValue Attribute = 0x3FFF001A

// FindBufferLen is the fixed size of the description buffer passed to
// FindFirst and FindNext (VI_FIND_BUFLEN). The driver writes a null-terminated
// resource name into it.
const FindBufferLen = 256

// Driver is the blocking transport primitive underneath the library: a VISA
// implementation, a socket transport, or a test double.
//
// Every method returns a raw Status which the caller consumes exclusively
// through Status.Classify. Drivers never block beyond the timeout configured
// for the handle, and never interpret command or response payloads.
//
// Implementations must be safe for concurrent calls on distinct handles.
// Concurrent calls on one handle are the caller's responsibility to serialize.
type Driver interface {
	// OpenDefaultRM acquires the default resource manager context.
	OpenDefaultRM() (Object, Status)

	// Open opens a session to the named resource. mode is the wire access mode
	// and timeout the wire open-timeout in milliseconds.
	Open(rm Object, name string, mode uint32, timeout uint32) (Object, Status)

	// Close releases the given handle (resource manager, session, or find list).
	Close(obj Object) Status

	// SetAttribute sets an attribute on the given handle.
	SetAttribute(obj Object, attr Attribute, value uint32) Status

	// Write writes data to the session and reports the number of bytes the
	// transport accepted.
	Write(sess Object, data []byte) (uint32, Status)

	// Read reads up to len(buf) bytes into buf and reports the number of bytes
	// read. StatusSuccessMaxCount signals that buf was filled exactly and more
	// data may remain; StatusSuccessTermChar signals that the termination
	// character was read.
	Read(sess Object, buf []byte) (uint32, Status)

	// Flush applies the given buffer-flush bitset to the session.
	Flush(sess Object, mode uint16) Status

	// FindFirst begins a resource search with the given match expression. It
	// returns a find-list handle for subsequent FindNext calls and the total
	// match count, writing the first match into desc as a null-terminated
	// string when the count is at least one.
	FindFirst(rm Object, expr string, desc []byte) (list Object, count uint32, status Status)

	// FindNext writes the next match of a search into desc as a
	// null-terminated string.
	FindNext(list Object, desc []byte) Status
}
