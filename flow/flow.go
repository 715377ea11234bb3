// Package flow drives the donation dialogue with a participant.
//
// The Controller is a state machine. The caller feeds it events coming
// from the participant or from the runtime that executes its commands, and
// it answers every event with the next command to execute: render a page,
// donate a payload, or exit.
package flow

import (
	"fmt"

	"github.com/fwojciec/donate"
	"github.com/fwojciec/donate/extract"
)

// State is a step of the dialogue.
type State int

const (
	Idle State = iota
	AwaitFile
	AwaitRetry
	AwaitConsent
	Donating
	Exiting
	End
)

var stateNames = [...]string{"idle", "await_file", "await_retry", "await_consent", "donating", "exiting", "end"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// Archive is an opened data export.
type Archive interface {
	donate.Archive
	Close() error
}

// OpenFunc opens the archive at path. It returns EINVALID when the file is
// not an archive.
type OpenFunc func(path string) (Archive, error)

// Plans selects the extraction plan for an archive.
type Plans interface {
	Get(format donate.Format) (*extract.Plan, error)
	ForArchive(a donate.Archive) (*extract.Plan, error)
}

// Controller runs one donation dialogue for a session.
type Controller struct {
	// Session identifies the participant; it prefixes the donation key.
	Session string

	// Format forces a plan. When empty the format is detected per archive.
	Format donate.Format

	// Titles overrides table titles by extractor name.
	Titles map[string]donate.Translatable

	// Decorate, when set, wraps every extractor before it runs.
	Decorate func(donate.Extractor) donate.Extractor

	Open  OpenFunc
	Plans Plans
	Texts Texts

	state    State
	platform string
	review   *donate.Review
	result   *extract.Result
}

// NewController returns a controller with the default texts.
func NewController(session string, open OpenFunc, plans Plans) *Controller {
	return &Controller{
		Session: session,
		Open:    open,
		Plans:   plans,
		Texts:   DefaultTexts(),
	}
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Platform returns the platform of the last accepted archive.
func (c *Controller) Platform() string { return c.platform }

// Result returns the extraction result of the last accepted archive.
func (c *Controller) Result() *extract.Result { return c.result }

// Start begins the dialogue by asking for a file.
// Returns EINVALID if the dialogue already started.
func (c *Controller) Start() (Command, error) {
	if c.state != Idle {
		return nil, donate.Errorf(donate.EINVALID, "dialogue already started")
	}
	c.state = AwaitFile
	return c.filePrompt(), nil
}

// Handle applies ev to the current state and returns the next command.
// Events the current state does not expect return EINVALID and leave the
// state unchanged.
func (c *Controller) Handle(ev Event) (Command, error) {
	switch c.state {
	case AwaitFile:
		switch ev := ev.(type) {
		case FileSelected:
			return c.selectFile(ev.Path), nil
		case Skip:
			return c.exit(), nil
		}
	case AwaitRetry:
		switch ev := ev.(type) {
		case Retry:
			if ev.Again {
				c.state = AwaitFile
				return c.filePrompt(), nil
			}
			return c.exit(), nil
		case Skip:
			return c.exit(), nil
		}
	case AwaitConsent:
		switch ev := ev.(type) {
		case Consent:
			return c.donate(ev.Payload)
		case Decline:
			return c.exit(), nil
		}
	case Donating:
		if _, ok := ev.(Ack); ok {
			return c.exit(), nil
		}
	case Exiting:
		if _, ok := ev.(Ack); ok {
			c.state = End
			return Render{Page: PageEnd, Platform: c.platform}, nil
		}
	}
	return nil, donate.Errorf(donate.EINVALID, "unexpected event %s in state %s", eventName(ev), c.state)
}

// selectFile opens and extracts the selected archive. A file that cannot
// be opened as an archive asks the participant to retry.
func (c *Controller) selectFile(path string) Command {
	result, platform, err := c.extract(path)
	if err != nil {
		c.state = AwaitRetry
		return Render{
			Page:     PageRetry,
			Platform: c.platform,
			Text:     c.Texts.Retry,
			OK:       c.Texts.RetryOK,
			Cancel:   c.Texts.RetryCancel,
			Err:      err,
		}
	}

	review := result.Review
	review.Description = c.Texts.ConsentDescription
	review.Question = c.Texts.ConsentQuestion
	review.Button = c.Texts.ConsentButton

	c.platform = platform
	c.result = result
	c.review = review
	c.state = AwaitConsent
	return Render{Page: PageConsent, Platform: platform, Review: review, Diagnostics: result.Diagnostics}
}

func (c *Controller) extract(path string) (*extract.Result, string, error) {
	a, err := c.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer a.Close()

	plan, err := c.plan(a)
	if err != nil {
		return nil, "", err
	}
	if len(c.Titles) > 0 {
		plan = plan.WithTitles(c.Titles)
	}
	if c.Decorate != nil {
		plan = plan.Wrap(c.Decorate)
	}
	result, err := extract.Run(a, plan)
	if err != nil {
		return nil, "", err
	}
	return result, plan.Format.Platform(), nil
}

func (c *Controller) plan(a donate.Archive) (*extract.Plan, error) {
	if c.Format != donate.FormatUnknown {
		return c.Plans.Get(c.Format)
	}
	return c.Plans.ForArchive(a)
}

// donate answers consent. An empty payload donates the review as shown.
func (c *Controller) donate(payload string) (Command, error) {
	if payload == "" {
		data, err := donate.MarshalReview(c.review)
		if err != nil {
			return nil, err
		}
		payload = string(data)
	}
	c.state = Donating
	return Donate{Key: donate.DonationKey(c.Session, c.platform), Payload: payload}, nil
}

func (c *Controller) exit() Command {
	c.state = Exiting
	return Exit{Code: 0, Info: "Success"}
}

func (c *Controller) filePrompt() Command {
	return Render{
		Page:       PageFile,
		Platform:   c.platform,
		Text:       c.Texts.File,
		Extensions: "application/zip, text/plain",
	}
}
