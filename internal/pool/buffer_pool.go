package pool

import (
	"sync"
)

var bufferPool sync.Pool

// GetBuffer returns a byte buffer of at least size bytes from the pool.
//
// Return back the buffer to the pool with PutBuffer.
func GetBuffer(size int) []byte {
	if v := bufferPool.Get(); v != nil {
		buf, _ := v.([]byte) // Type assertion is safe here since we only put []byte into the pool
		if cap(buf) >= size {
			return buf[:size]
		}
	}

	return make([]byte, size)
}

// PutBuffer returns buf to the pool.
//
// buf cannot be accessed after returning to the pool.
func PutBuffer(buf []byte) {
	if cap(buf) == 0 {
		return
	}
	bufferPool.Put(buf[:cap(buf)]) //nolint:staticcheck
}
