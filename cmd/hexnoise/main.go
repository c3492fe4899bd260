package main

import (
	"fmt"
	"os"

	"github.com/saylorsolutions/hexnoise/cmd/hexnoise/internal/ops"
	"github.com/saylorsolutions/hexnoise/cmd/hexnoise/internal/shell"
	"github.com/saylorsolutions/hexnoise/cmd/hexnoise/internal/tui"
	"github.com/saylorsolutions/hexnoise/cmd/internal"
	"github.com/saylorsolutions/hexnoise/pkg/hexnoise"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var version = "dev"

func main() {
	var opts options
	flags := opts.flagSet()
	flags.Usage = func() {
		fmt.Printf(`
hexnoise (version %s) disguises text and files by expanding every byte into hex digits, and padding each digit with random noise digits.
The number of noise digits is the key, which is stored at the start and end of the output, so nothing but the output is needed to reverse it.

USAGE:  hexnoise [--interactive [--tui]]
        hexnoise --quiet (--encrypt PATH | --decrypt PATH) [--key N] [--output PATH]

Running without flags starts interactive mode. A PATH of "-" reads from stdin.

FLAGS:
%s
SECURITY:
    This is not encryption, this is obfuscation, and they are very different things!
The output hides the content and character distribution of the input from casual observation only.
Anyone who knows the format can reverse it, since the key is embedded in the output.
`, version, flags.FlagUsages())
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		flags.Usage()
		internal.Fatal("Error parsing flags: %v", err)
	}
	if opts.help {
		flags.Usage()
		return
	}
	setupLogging(opts.verbose)

	m, err := opts.resolve()
	if err != nil {
		internal.Fatal("%v", err)
	}
	if opts.randomKey {
		if opts.key, err = hexnoise.GenKey(); err != nil {
			internal.Fatal("Failed to generate key: %v", err)
		}
		log.WithField("key", opts.key).Info("Using random key")
	}

	runner := ops.NewRunner()
	switch m {
	case modeEncrypt:
		if err := runner.EncryptFile(opts.encryptPath, opts.outputPath, opts.key); err != nil {
			internal.Fatal("Encryption error: %v", err)
		}
	case modeDecrypt:
		if err := runner.DecryptFile(opts.decryptPath, opts.outputPath); err != nil {
			internal.Fatal("Decryption error: %v", err)
		}
	case modeTUI:
		if err := tui.New(runner).Run(); err != nil {
			internal.Fatal("Terminal UI error: %v", err)
		}
	default:
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			internal.Fatal("Interactive mode requires a terminal, use --quiet with --encrypt or --decrypt instead")
		}
		prompt := shell.NewSurveyPrompter(os.Stdin, os.Stdout, os.Stderr)
		if err := shell.New(prompt, os.Stdout, runner).Run(); err != nil {
			internal.Fatal("Error: %v", err)
		}
	}
}

func setupLogging(verbose bool) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
	})
	log.SetLevel(log.InfoLevel)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}
