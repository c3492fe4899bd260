package shell

import (
	"errors"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrInterrupted is returned by a Prompter when the user interrupts a prompt, usually with Ctrl-C.
var ErrInterrupted = errors.New("prompt interrupted")

// Prompter asks the user questions.
type Prompter interface {
	// Select asks the user to pick one of the options, and returns its index.
	Select(message string, options []string) (int, error)
	// Input asks for a line of text. If validate is not nil, then the user is asked again until validate returns nil.
	Input(message string, validate func(string) error) (string, error)
}

var _ Prompter = (*surveyPrompter)(nil)

type surveyPrompter struct {
	opts []survey.AskOpt
}

// NewSurveyPrompter creates a Prompter that renders prompts on a terminal.
func NewSurveyPrompter(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) Prompter {
	return &surveyPrompter{
		opts: []survey.AskOpt{survey.WithStdio(in, out, errOut)},
	}
}

func (p *surveyPrompter) Select(message string, options []string) (int, error) {
	var idx int
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}
	err := survey.AskOne(prompt, &idx, p.opts...)
	return idx, translateErr(err)
}

func (p *surveyPrompter) Input(message string, validate func(string) error) (string, error) {
	var answer string
	opts := append([]survey.AskOpt{}, p.opts...)
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			text, _ := ans.(string)
			return validate(text)
		}))
	}
	prompt := &survey.Input{
		Message: message,
	}
	err := survey.AskOne(prompt, &answer, opts...)
	return answer, translateErr(err)
}

func translateErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}
	return err
}
