package shell

import (
	"errors"
	"fmt"
	"io"

	"github.com/saylorsolutions/hexnoise/cmd/hexnoise/internal/ops"
)

const (
	choiceEncrypt = iota
	choiceDecrypt
	choiceExit
)

var menu = []string{
	choiceEncrypt: "Encrypt text",
	choiceDecrypt: "Decrypt text",
	choiceExit:    "Exit",
}

// Shell is the interactive prompt loop.
type Shell struct {
	prompt Prompter
	out    io.Writer
	runner *ops.Runner
}

// New creates a Shell that asks questions with prompt and prints results to out.
func New(prompt Prompter, out io.Writer, runner *ops.Runner) *Shell {
	return &Shell{
		prompt: prompt,
		out:    out,
		runner: runner,
	}
}

// Run prompts for operations until the user exits or interrupts a prompt.
// Errors from individual operations are reported to the user and don't end the loop.
func (s *Shell) Run() error {
	for {
		choice, err := s.prompt.Select("Choose an operation:", menu)
		if err != nil {
			return s.exit(err)
		}
		switch choice {
		case choiceEncrypt:
			err = s.encrypt()
		case choiceDecrypt:
			err = s.decrypt()
		default:
			return s.exit(nil)
		}
		if err != nil {
			return s.exit(err)
		}
	}
}

func (s *Shell) encrypt() error {
	text, err := s.prompt.Input("Input text to encrypt:", nil)
	if err != nil {
		return err
	}
	keyText, err := s.prompt.Input("Input encryption length from 0 to 255, or C to cancel:", validateKey)
	if err != nil {
		return err
	}
	if ops.IsCancel(keyText) {
		return nil
	}
	key, err := ops.ParseKey(keyText)
	if err != nil {
		return err
	}
	s.printf("Encrypted text: %s\n", s.runner.EncryptText(text, key))
	return nil
}

func (s *Shell) decrypt() error {
	for {
		stream, err := s.prompt.Input("Input string to decrypt, or C to cancel:", nil)
		if err != nil {
			return err
		}
		if ops.IsCancel(stream) {
			return nil
		}
		text, err := s.runner.DecryptText(stream)
		if err != nil {
			s.printf("Error: %v\n", err)
			continue
		}
		s.printf("Decrypted text: %s\n", text)
		return nil
	}
}

func (s *Shell) exit(err error) error {
	if err != nil && !errors.Is(err, ErrInterrupted) && !errors.Is(err, io.EOF) {
		return err
	}
	s.printf("o/\n")
	return nil
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func validateKey(text string) error {
	if ops.IsCancel(text) {
		return nil
	}
	_, err := ops.ParseKey(text)
	return err
}
