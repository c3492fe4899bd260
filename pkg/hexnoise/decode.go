package hexnoise

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// KeyOf recovers the key stored in the first and last character of a stream.
func KeyOf(stream []byte) (uint8, error) {
	if len(stream) < markerLen {
		return 0, fmt.Errorf("%w: stream of length %d can't hold a key", ErrMalformedKey, len(stream))
	}
	hi, ok := nibble(stream[0])
	if !ok {
		return 0, fmt.Errorf("%w: leading character %q is not a hex digit", ErrMalformedKey, stream[0])
	}
	last := len(stream) - 1
	lo, ok := nibble(stream[last])
	if !ok {
		return 0, fmt.Errorf("%w: trailing character %q is not a hex digit", ErrMalformedKey, stream[last])
	}
	return hi<<4 | lo, nil
}

// Decode will recover the original data from a stream produced by Encode.
// The content of noise positions doesn't matter, only real nibble positions are read.
func Decode(stream []byte) ([]byte, error) {
	key, err := KeyOf(stream)
	if err != nil {
		return nil, err
	}
	var (
		stride = int(key) + 1
		body   = len(stream) - markerLen
		group  = quartetLen * stride
	)
	if body%group != 0 {
		return nil, fmt.Errorf("%w: %d encoded characters is not a multiple of %d for key %d", ErrTruncatedStream, body, group, key)
	}

	out := make([]byte, 0, body/group)
	pos := 1
	for g := 0; g < body/group; g++ {
		var val uint16
		for i := 0; i < quartetLen; i++ {
			nib, ok := nibble(stream[pos])
			if !ok {
				return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidHexDigit, stream[pos], pos)
			}
			val = val<<4 | uint16(nib)
			pos += stride
		}
		// The high byte is always zero when encoded.
		out = append(out, byte(val))
	}
	return out, nil
}

// DecodeString decodes a stream and validates that the result is UTF-8 text.
func DecodeString(stream string) (string, error) {
	data, err := Decode([]byte(stream))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}

// DecodeFrom reads the entire stream from r and decodes it.
// The key's low nibble is the last character of the stream, so nothing can be decoded before EOF.
func DecodeFrom(r io.Reader) ([]byte, error) {
	stream, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(stream)
}

func nibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
