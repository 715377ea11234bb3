package flow

import (
	"fmt"

	"github.com/fwojciec/donate"
	"github.com/fwojciec/donate/extract"
)

// Event is an input to the controller.
type Event interface {
	event()
}

// FileSelected reports the file the participant chose.
type FileSelected struct {
	Path string
}

// Skip reports that the participant did not choose a file.
type Skip struct{}

// Retry answers the retry prompt.
type Retry struct {
	Again bool
}

// Consent reports that the participant agreed to donate. Payload is the
// reviewed data as returned by the consent page; when empty the review is
// donated unchanged.
type Consent struct {
	Payload string
}

// Decline reports that the participant refused to donate.
type Decline struct{}

// Ack reports that the last command completed.
type Ack struct{}

func (FileSelected) event() {}
func (Skip) event()         {}
func (Retry) event()        {}
func (Consent) event()      {}
func (Decline) event()      {}
func (Ack) event()          {}

func eventName(ev Event) string {
	switch ev.(type) {
	case FileSelected:
		return "file_selected"
	case Skip:
		return "skip"
	case Retry:
		return "retry"
	case Consent:
		return "consent"
	case Decline:
		return "decline"
	case Ack:
		return "ack"
	default:
		return fmt.Sprintf("%T", ev)
	}
}

// Command is an instruction for the runtime hosting the dialogue.
type Command interface {
	command()
}

// Page identifies a page rendered to the participant.
type Page string

const (
	PageFile    Page = "file"
	PageRetry   Page = "retry"
	PageConsent Page = "consent"
	PageEnd     Page = "end"
)

// Render asks the runtime to show a page.
type Render struct {
	Page     Page
	Platform string

	// Text is the prompt of the file and retry pages.
	Text donate.Translatable
	// Extensions lists the accepted file types of the file page.
	Extensions string
	// OK and Cancel label the buttons of the retry page.
	OK, Cancel donate.Translatable
	// Err explains why the retry page is shown.
	Err error

	Review      *donate.Review
	Diagnostics []extract.Diagnostic
}

// Donate asks the runtime to store payload under key.
type Donate struct {
	Key     string
	Payload string
}

// Exit asks the runtime to finish the session.
type Exit struct {
	Code int
	Info string
}

func (Render) command() {}
func (Donate) command() {}
func (Exit) command()   {}
