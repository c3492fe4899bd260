package tui

import (
	"fmt"

	"github.com/rivo/tview"
	"github.com/saylorsolutions/hexnoise/cmd/hexnoise/internal/ops"
	"github.com/saylorsolutions/hexnoise/pkg/hexnoise"
)

// App is a full screen form for encoding and decoding text.
type App struct {
	app    *tview.Application
	runner *ops.Runner
	input  *tview.TextArea
	key    *tview.InputField
	output *tview.TextView
}

// New lays out the form. Nothing is drawn until Run is called.
func New(runner *ops.Runner) *App {
	a := &App{
		app:    tview.NewApplication(),
		runner: runner,
	}
	a.input = tview.NewTextArea().
		SetPlaceholder("Text to encrypt, or a string to decrypt")
	a.input.SetBorder(true).SetTitle(" Input ")

	a.key = tview.NewInputField().
		SetLabel("Encryption length (0-255) ").
		SetText(fmt.Sprint(hexnoise.DefaultKey)).
		SetFieldWidth(4).
		SetAcceptanceFunc(tview.InputFieldInteger)

	a.output = tview.NewTextView().
		SetWrap(true).
		SetWordWrap(false)
	a.output.SetBorder(true).SetTitle(" Output ")

	form := tview.NewForm().
		AddFormItem(a.key).
		AddButton("Encrypt", a.encrypt).
		AddButton("Decrypt", a.decrypt).
		AddButton("Quit", a.app.Stop)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.input, 0, 1, true).
		AddItem(form, 5, 0, false).
		AddItem(a.output, 0, 1, false)
	a.app.SetRoot(layout, true).EnableMouse(true)
	return a
}

// Run blocks until the user quits.
func (a *App) Run() error {
	return a.app.Run()
}

func (a *App) encrypt() {
	a.output.SetText(encryptView(a.runner, a.input.GetText(), a.key.GetText()))
}

func (a *App) decrypt() {
	a.output.SetText(decryptView(a.runner, a.input.GetText()))
}

func encryptView(runner *ops.Runner, text, keyText string) string {
	key, err := ops.ParseKey(keyText)
	if err != nil {
		return "Error: " + err.Error()
	}
	return runner.EncryptText(text, key)
}

func decryptView(runner *ops.Runner, stream string) string {
	text, err := runner.DecryptText(stream)
	if err != nil {
		return "Error: " + err.Error()
	}
	return text
}
