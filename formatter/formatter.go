package formatter

import (
	"bytes"
	"io"
	"sync"
	"time"
)

// Formatter defines the interface for record formatters
type Formatter interface {
	// Format renders one raw record into a single line ending in '\n'
	Format(record []byte) []byte
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a record and writes it directly to the writer
	FormatTo(record []byte, w io.Writer) error
}

// Config holds formatter configuration
type Config struct {
	// Now supplies the wall clock for the timestamp token (default: time.Now)
	Now func() time.Time
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
