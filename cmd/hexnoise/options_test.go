package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Resolve(t *testing.T) {
	tests := map[string]struct {
		args []string
		mode mode
		err  error
	}{
		"Default":                 {nil, modeInteractive, nil},
		"Interactive":             {[]string{"-i"}, modeInteractive, nil},
		"Interactive wins":        {[]string{"-i", "-e", "in.txt"}, modeInteractive, nil},
		"TUI":                     {[]string{"--tui"}, modeTUI, nil},
		"Encrypt":                 {[]string{"-q", "-e", "in.txt"}, modeEncrypt, nil},
		"Encrypt implies quiet":   {[]string{"--encrypt", "in.txt", "-k", "3"}, modeEncrypt, nil},
		"Decrypt":                 {[]string{"-q", "-d", "in.txt", "-o", "out.bin"}, modeDecrypt, nil},
		"Quiet without operation": {[]string{"-q"}, 0, errNoOperation},
		"Both operations":         {[]string{"-e", "a", "-d", "b"}, 0, errTwoOperations},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var opts options
			require.NoError(t, opts.flagSet().Parse(tc.args))
			m, err := opts.resolve()
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.mode, m)
		})
	}
}

func TestOptions_Key(t *testing.T) {
	var opts options
	require.NoError(t, opts.flagSet().Parse(nil))
	assert.Equal(t, uint8(1), opts.key)

	opts = options{}
	require.NoError(t, opts.flagSet().Parse([]string{"-k", "255"}))
	assert.Equal(t, uint8(255), opts.key)

	opts = options{}
	assert.Error(t, opts.flagSet().Parse([]string{"-k", "256"}))
}
