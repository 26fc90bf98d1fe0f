package visa

// fakeDriver is a scripted Driver test double. Zero-valued statuses are
// StatusSuccess, so an empty fake behaves as an always-succeeding transport.
type fakeDriver struct {
	openRMStatus Status
	openStatus   Status

	writeResults []writeResult
	writeCalls   int
	written      []string

	readResults []readResult
	readCalls   int

	attrCalls  []attrCall
	attrStatus Status

	flushModes  []uint16
	flushStatus Status

	closeCalls  int
	closeStatus Status

	findCount      uint32
	findStatus     Status
	findDescs      []string
	findFillDesc   bool // fill the whole buffer, leaving no null terminator
	findNextCalls  int
	findNextStatus Status
}

type writeResult struct {
	count  int // -1 echoes the input length
	status Status
}

type readResult struct {
	data   string
	status Status
}

type attrCall struct {
	attr  Attribute
	value uint32
}

func (f *fakeDriver) OpenDefaultRM() (Object, Status) {
	return 1, f.openRMStatus
}

func (f *fakeDriver) Open(rm Object, name string, mode uint32, timeout uint32) (Object, Status) {
	return 2, f.openStatus
}

func (f *fakeDriver) Close(obj Object) Status {
	f.closeCalls++
	return f.closeStatus
}

func (f *fakeDriver) SetAttribute(obj Object, attr Attribute, value uint32) Status {
	f.attrCalls = append(f.attrCalls, attrCall{attr: attr, value: value})
	return f.attrStatus
}

func (f *fakeDriver) Write(sess Object, data []byte) (uint32, Status) {
	f.written = append(f.written, string(data))

	if f.writeCalls >= len(f.writeResults) {
		f.writeCalls++
		return uint32(len(data)), StatusSuccess
	}

	result := f.writeResults[f.writeCalls]
	f.writeCalls++

	count := result.count
	if count < 0 {
		count = len(data)
	}

	return uint32(count), result.status
}

func (f *fakeDriver) Read(sess Object, buf []byte) (uint32, Status) {
	if f.readCalls >= len(f.readResults) {
		f.readCalls++
		return 0, StatusErrorTimeout
	}

	result := f.readResults[f.readCalls]
	f.readCalls++

	n := copy(buf, result.data)

	return uint32(n), result.status
}

func (f *fakeDriver) Flush(sess Object, mode uint16) Status {
	f.flushModes = append(f.flushModes, mode)
	return f.flushStatus
}

func (f *fakeDriver) FindFirst(rm Object, expr string, desc []byte) (Object, uint32, Status) {
	if f.findStatus != StatusSuccess {
		return 0, 0, f.findStatus
	}

	if f.findCount > 0 {
		f.fillDesc(desc, 0)
	}

	return 3, f.findCount, StatusSuccess
}

func (f *fakeDriver) FindNext(list Object, desc []byte) Status {
	f.findNextCalls++

	if f.findNextStatus != StatusSuccess {
		return f.findNextStatus
	}

	f.fillDesc(desc, f.findNextCalls)

	return StatusSuccess
}

func (f *fakeDriver) fillDesc(desc []byte, idx int) {
	for i := range desc {
		desc[i] = 0
	}

	if f.findFillDesc {
		for i := range desc {
			desc[i] = 'x'
		}

		return
	}

	if idx < len(f.findDescs) {
		copy(desc, f.findDescs[idx])
	}
}

var _ Driver = (*fakeDriver)(nil)
