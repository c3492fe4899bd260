package hexnoise

import (
	"io"
)

// Writer encodes every byte written to it, and emits the trailing key marker on Close.
// Close doesn't close the underlying io.Writer.
// Once a write to the underlying io.Writer fails, every later Write and Close returns that error until Reset.
type Writer interface {
	io.WriteCloser
	// Reset will use the provided io.Writer and begin a new stream with the same key.
	Reset(target io.Writer)
}

var _ Writer = (*writer)(nil)

type writer struct {
	target  io.Writer
	enc     *Encoder
	key     uint8
	started bool
	closed  bool
	err     error
	buf     []byte
}

// NewWriter constructs a Writer that encodes all bytes written with the given key, drawing noise from src.
// If src is nil, then DefaultSource is used.
func NewWriter(target io.Writer, key uint8, src Source) Writer {
	return &writer{
		target: target,
		enc:    NewEncoder(src),
		key:    key,
	}
}

func (w *writer) Write(in []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	if w.closed {
		return 0, ErrClosed
	}
	w.buf = w.header(w.buf[:0])
	for i := 0; i < len(in); i++ {
		w.buf = w.enc.appendByte(w.buf, in[i], w.key)
	}
	if _, err := w.target.Write(w.buf); err != nil {
		w.err = err
		return 0, err
	}
	w.started = true
	return len(in), nil
}

func (w *writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if w.closed {
		return nil
	}
	w.buf = w.header(w.buf[:0])
	w.buf = append(w.buf, hexDigits[w.key&0xf])
	if _, err := w.target.Write(w.buf); err != nil {
		w.err = err
		return err
	}
	w.started = true
	w.closed = true
	return nil
}

func (w *writer) Reset(target io.Writer) {
	w.target = target
	w.started = false
	w.closed = false
	w.err = nil
}

func (w *writer) header(buf []byte) []byte {
	if w.started {
		return buf
	}
	return append(buf, hexDigits[w.key>>4])
}
