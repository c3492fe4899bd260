package main

import (
	"errors"

	"github.com/saylorsolutions/hexnoise/pkg/hexnoise"
	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

type mode int

const (
	modeInteractive mode = iota
	modeTUI
	modeEncrypt
	modeDecrypt
)

var (
	errNoOperation   = errors.New("no valid operation selected, use --encrypt or --decrypt with --quiet")
	errTwoOperations = errors.New("only one of --encrypt or --decrypt may be used")
)

type options struct {
	help        bool
	interactive bool
	quiet       bool
	tui         bool
	verbose     bool
	randomKey   bool
	encryptPath string
	decryptPath string
	outputPath  string
	key         uint8
}

func (o *options) flagSet() *flag.FlagSet {
	flags := flag.NewFlagSet("hexnoise", flag.ContinueOnError)
	flags.BoolVarP(&o.help, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&o.interactive, "interactive", "i", false, "Runs in interactive mode (the default). Batch flags are ignored.")
	flags.BoolVarP(&o.tui, "tui", "t", false, "Uses a full screen form in interactive mode instead of line prompts.")
	flags.BoolVarP(&o.quiet, "quiet", "q", false, "Runs in batch mode using the flags below.")
	flags.StringVarP(&o.encryptPath, "encrypt", "e", "", "Encrypts the file at `PATH`.")
	flags.StringVarP(&o.decryptPath, "decrypt", "d", "", "Decrypts the text file at `PATH`.")
	flags.Uint8VarP(&o.key, "key", "k", hexnoise.DefaultKey, "Uses `N` (0-255) as the encryption length, the number of noise digits after each real digit.")
	flags.BoolVarP(&o.randomKey, "random-key", "r", false, "Picks a random encryption length, overriding --key.")
	flags.StringVarP(&o.outputPath, "output", "o", "", "Writes the output to a file at `PATH` instead of the console, overwriting existing files.")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Enables debug logging.")
	return flags
}

// resolve picks the mode of operation from the parsed flags.
// Giving --encrypt or --decrypt implies --quiet.
func (o *options) resolve() (mode, error) {
	batch := len(o.encryptPath) > 0 || len(o.decryptPath) > 0
	if o.interactive || o.tui || (!o.quiet && !batch) {
		if batch {
			log.Warn("Interactive mode selected, ignoring --encrypt and --decrypt")
		}
		if o.tui {
			return modeTUI, nil
		}
		return modeInteractive, nil
	}
	switch {
	case len(o.encryptPath) > 0 && len(o.decryptPath) > 0:
		return 0, errTwoOperations
	case len(o.encryptPath) > 0:
		return modeEncrypt, nil
	case len(o.decryptPath) > 0:
		return modeDecrypt, nil
	default:
		return 0, errNoOperation
	}
}
