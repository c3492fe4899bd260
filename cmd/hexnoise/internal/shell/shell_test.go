package shell

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/saylorsolutions/hexnoise/cmd/hexnoise/internal/ops"
	"github.com/saylorsolutions/hexnoise/pkg/hexnoise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPrompter answers prompts from fixed lists, and returns io.EOF when it runs out.
// Answers rejected by a validator are recorded and skipped, the way a terminal prompt asks again.
type scriptedPrompter struct {
	choices  []int
	answers  []string
	rejected []string
	err      error
}

func (p *scriptedPrompter) Select(_ string, options []string) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	if len(p.choices) == 0 {
		return 0, io.EOF
	}
	choice := p.choices[0]
	p.choices = p.choices[1:]
	if choice < 0 || choice >= len(options) {
		return 0, errors.New("invalid choice")
	}
	return choice, nil
}

func (p *scriptedPrompter) Input(_ string, validate func(string) error) (string, error) {
	for len(p.answers) > 0 {
		answer := p.answers[0]
		p.answers = p.answers[1:]
		if validate != nil && validate(answer) != nil {
			p.rejected = append(p.rejected, answer)
			continue
		}
		return answer, nil
	}
	return "", io.EOF
}

func testShell(p Prompter) (*Shell, *bytes.Buffer) {
	var out bytes.Buffer
	runner := &ops.Runner{Source: hexnoise.NewSeededSource(3)}
	return New(p, &out, runner), &out
}

func TestShell_Encrypt(t *testing.T) {
	p := &scriptedPrompter{
		choices: []int{choiceEncrypt, choiceExit},
		answers: []string{"A", "nope", "300", "0"},
	}
	s, out := testShell(p)
	require.NoError(t, s.Run())
	assert.Equal(t, "Encrypted text: 000410\no/\n", out.String())
	assert.Equal(t, []string{"nope", "300"}, p.rejected)
}

func TestShell_EncryptCancel(t *testing.T) {
	p := &scriptedPrompter{
		choices: []int{choiceEncrypt, choiceExit},
		answers: []string{"some text", "C"},
	}
	s, out := testShell(p)
	require.NoError(t, s.Run())
	assert.Equal(t, "o/\n", out.String())
}

func TestShell_Decrypt(t *testing.T) {
	stream := hexnoise.EncodeToString([]byte("How wonderful life is"), 4)
	p := &scriptedPrompter{
		choices: []int{choiceDecrypt, choiceExit},
		answers: []string{"0", "00041", stream},
	}
	s, out := testShell(p)
	require.NoError(t, s.Run())

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Error: "+hexnoise.ErrMalformedKey.Error()))
	assert.True(t, strings.HasPrefix(lines[1], "Error: "+hexnoise.ErrTruncatedStream.Error()))
	assert.Equal(t, "Decrypted text: How wonderful life is", lines[2])
	assert.Equal(t, "o/", lines[3])
}

func TestShell_DecryptCancel(t *testing.T) {
	p := &scriptedPrompter{
		choices: []int{choiceDecrypt, choiceExit},
		answers: []string{"zz", "c"},
	}
	s, out := testShell(p)
	require.NoError(t, s.Run())
	assert.True(t, strings.HasPrefix(out.String(), "Error: "))
	assert.True(t, strings.HasSuffix(out.String(), "o/\n"))
}

func TestShell_MultipleOperations(t *testing.T) {
	p := &scriptedPrompter{
		choices: []int{choiceEncrypt, choiceDecrypt},
		answers: []string{"A", "0", "000420"},
	}
	s, out := testShell(p)
	require.NoError(t, s.Run(), "running out of input should end the loop")
	assert.Equal(t, "Encrypted text: 000410\nDecrypted text: B\no/\n", out.String())
}

func TestShell_Interrupted(t *testing.T) {
	s, out := testShell(&scriptedPrompter{err: ErrInterrupted})
	require.NoError(t, s.Run())
	assert.Equal(t, "o/\n", out.String())
}

func TestShell_PromptError(t *testing.T) {
	errBroken := errors.New("terminal broke")
	s, out := testShell(&scriptedPrompter{err: errBroken})
	assert.ErrorIs(t, s.Run(), errBroken)
	assert.Empty(t, out.String())
}
