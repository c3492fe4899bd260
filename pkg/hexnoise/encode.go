package hexnoise

import (
	"errors"
)

const (
	// DefaultKey is the noise length used when the caller doesn't pick one.
	DefaultKey uint8 = 1

	hexDigits  = "0123456789abcdef"
	quartetLen = 4
	markerLen  = 2
)

var (
	ErrMalformedKey    = errors.New("malformed key marker")
	ErrTruncatedStream = errors.New("truncated stream")
	ErrInvalidHexDigit = errors.New("invalid hex digit")
	ErrInvalidUTF8     = errors.New("decoded data is not valid UTF-8")
	ErrClosed          = errors.New("write to closed hexnoise writer")
)

var defaultEncoder = NewEncoder(DefaultSource())

// EncodedLen returns the length of the stream produced by encoding n bytes with the given key.
func EncodedLen(n int, key uint8) int {
	return markerLen + n*quartetLen*(int(key)+1)
}

// Encoder encodes data, drawing noise from its Source.
// An Encoder is safe for concurrent use if its Source is.
type Encoder struct {
	src Source
}

// NewEncoder creates an Encoder that draws noise from src.
// If src is nil, then DefaultSource is used.
func NewEncoder(src Source) *Encoder {
	if src == nil {
		src = DefaultSource()
	}
	return &Encoder{src: src}
}

// Encode will expand data into a noise-padded stream, with key noise nibbles after every real nibble.
// The key is stored in the first and last character of the stream.
func (e *Encoder) Encode(data []byte, key uint8) []byte {
	out := make([]byte, 0, EncodedLen(len(data), key))
	out = append(out, hexDigits[key>>4])
	for _, b := range data {
		out = e.appendByte(out, b, key)
	}
	return append(out, hexDigits[key&0xf])
}

// EncodeToString is like Encode, but returns a string.
func (e *Encoder) EncodeToString(data []byte, key uint8) string {
	return string(e.Encode(data, key))
}

func (e *Encoder) appendByte(out []byte, b byte, key uint8) []byte {
	quartet := [quartetLen]byte{0, 0, b >> 4, b & 0xf}
	for _, nib := range quartet {
		out = append(out, hexDigits[nib])
		for i := 0; i < int(key); i++ {
			out = append(out, hexDigits[e.src.IntN(len(hexDigits))])
		}
	}
	return out
}

// Encode will encode data with the given key, using DefaultSource for noise.
func Encode(data []byte, key uint8) []byte {
	return defaultEncoder.Encode(data, key)
}

// EncodeToString will encode data with the given key, using DefaultSource for noise.
func EncodeToString(data []byte, key uint8) string {
	return defaultEncoder.EncodeToString(data, key)
}
