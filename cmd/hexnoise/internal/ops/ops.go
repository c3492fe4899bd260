package ops

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/saylorsolutions/hexnoise/pkg/hexnoise"
	log "github.com/sirupsen/logrus"
)

// StdioPath selects stdin as an input, or stdout as an output.
const StdioPath = "-"

var ErrInvalidKey = errors.New("key must be a number from 0 to 255")

// ParseKey parses a key as typed by a user.
func ParseKey(text string) (uint8, error) {
	key, err := strconv.ParseUint(strings.TrimSpace(text), 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: '%s'", ErrInvalidKey, strings.TrimSpace(text))
	}
	return uint8(key), nil
}

// IsCancel reports whether a prompt answer asks to cancel the current operation.
func IsCancel(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), "c")
}

// Runner performs encode and decode operations against text, files, and stdio.
type Runner struct {
	Source hexnoise.Source
	Stdin  io.Reader
	Stdout io.Writer
}

// NewRunner creates a Runner using the process stdio and hexnoise.DefaultSource.
func NewRunner() *Runner {
	return &Runner{
		Source: hexnoise.DefaultSource(),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}
}

// EncryptText encodes text with the given key.
func (r *Runner) EncryptText(text string, key uint8) string {
	log.WithFields(log.Fields{"key": key, "bytes": len(text)}).Debug("Encoding text")
	return hexnoise.NewEncoder(r.Source).EncodeToString([]byte(text), key)
}

// DecryptText decodes a stream that's expected to hold UTF-8 text.
// Surrounding whitespace is ignored.
func (r *Runner) DecryptText(stream string) (string, error) {
	stream = strings.TrimSpace(stream)
	if key, err := hexnoise.KeyOf([]byte(stream)); err == nil {
		log.WithFields(log.Fields{"key": key, "length": len(stream)}).Debug("Decoding text")
	}
	return hexnoise.DecodeString(stream)
}

// EncryptFile encodes the file at inPath with the given key.
// The stream is written to outPath, or printed to Stdout if outPath is empty or StdioPath.
func (r *Runner) EncryptFile(inPath, outPath string, key uint8) error {
	in, closeIn, err := r.openInput(inPath)
	if err != nil {
		return err
	}
	defer closeIn()
	log.WithFields(log.Fields{"input": inPath, "key": key}).Debug("Encoding file")

	if isStdio(outPath) {
		data, err := io.ReadAll(in)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(r.Stdout, hexnoise.NewEncoder(r.Source).EncodeToString(data, key))
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()
	w := hexnoise.NewWriter(out, key, r.Source)
	n, err := io.Copy(w, in)
	if err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	log.WithFields(log.Fields{"output": outPath, "bytes": n}).Info("Successfully wrote encrypted text")
	return nil
}

// DecryptFile decodes the stream in the file at inPath.
// A single trailing line ending is ignored, since editors tend to add one.
// Decoded bytes are written verbatim to outPath, or printed to Stdout as text if outPath is empty or StdioPath.
func (r *Runner) DecryptFile(inPath, outPath string) error {
	in, closeIn, err := r.openInput(inPath)
	if err != nil {
		return err
	}
	defer closeIn()
	stream, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	stream = trimLineEnding(stream)
	log.WithFields(log.Fields{"input": inPath, "length": len(stream)}).Debug("Decoding file")

	data, err := hexnoise.Decode(stream)
	if err != nil {
		return err
	}
	if isStdio(outPath) {
		if !utf8.Valid(data) {
			return fmt.Errorf("%w, use --output to write it to a file", hexnoise.ErrInvalidUTF8)
		}
		_, err = fmt.Fprintln(r.Stdout, string(data))
		return err
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return err
	}
	log.WithFields(log.Fields{"output": outPath, "bytes": len(data)}).Info("Successfully wrote decrypted data")
	return nil
}

func (r *Runner) openInput(path string) (io.Reader, func(), error) {
	if path == StdioPath {
		return r.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() {
		_ = f.Close()
	}, nil
}

func isStdio(path string) bool {
	return len(path) == 0 || path == StdioPath
}

func trimLineEnding(stream []byte) []byte {
	if bytes.HasSuffix(stream, []byte("\r\n")) {
		return stream[:len(stream)-2]
	}
	return bytes.TrimSuffix(stream, []byte("\n"))
}
