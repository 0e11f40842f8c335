package ui

import (
	"context"
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"aurora/models"
	"aurora/subscribe"
	"aurora/validation"
)

const submitLabel = "Notify me"
const submitBusyLabel = "Sending..."

// SubscribeView is the email-capture card. Each submission attempt walks
// a short linear state machine: validate, then either surface the
// validation error inline, or disable the control, invoke the injected
// subscription call and surface its outcome. The control is re-enabled
// and relabelled on every exit path.
//
// The remote call is a plain function parameter so tests substitute
// deterministic success/failure without timers or network.
type SubscribeView struct {
	// Card is the complete UI component ready to be added to the layout
	Card fyne.CanvasObject

	email  *widget.Entry
	submit *widget.Button
	status *widget.Label

	subscribeFn subscribe.Func
	state       *AuroraAppState

	// muteChange suppresses the clear-on-edit handler during
	// programmatic SetText calls (clearing the field on success)
	muteChange bool
}

// NewSubscribeView creates the subscribe card. The state reference is
// used for focusing the field on validation errors and may carry a nil
// window in tests; all window access is nil-safe.
func NewSubscribeView(state *AuroraAppState, fn subscribe.Func) *SubscribeView {
	v := &SubscribeView{
		state:       state,
		subscribeFn: fn,
	}

	v.email = widget.NewEntry()
	v.email.SetPlaceHolder("you@example.com")
	// A pass-through validator keeps the validation indicator rendered;
	// actual checking happens on submit
	v.email.Validator = func(string) error { return nil }
	v.email.OnChanged = func(string) {
		v.onEmailEdited()
	}
	v.email.OnSubmitted = func(string) {
		v.onSubmitClicked()
	}

	v.submit = widget.NewButton(submitLabel, func() {
		v.onSubmitClicked()
	})
	v.submit.Importance = widget.HighImportance

	v.status = widget.NewLabel("")
	v.status.Wrapping = fyne.TextWrapWord

	cardContent := container.NewVBox(
		NewBoldLabel("Be first to know"),
		widget.NewLabel("Leave your email and we'll ping you the moment we launch."),
		v.email,
		v.submit,
		v.status,
	)

	v.Card = NewCard(cardContent)
	return v
}

// onEmailEdited clears any shown validation or remote error as soon as
// the user edits the field again, so stale errors never outlive a
// correction.
func (v *SubscribeView) onEmailEdited() {
	if v.muteChange {
		return
	}
	v.email.SetValidationError(nil)
	v.status.SetText("")
}

// onSubmitClicked runs one submission attempt.
func (v *SubscribeView) onSubmitClicked() {
	email := v.email.Text

	if err := validation.ValidateEmail(email); err != nil {
		v.email.SetValidationError(err)
		v.status.SetText(err.Error())
		v.focusEmail()
		return
	}

	// Without a wired subscription call there is nothing to submit to;
	// leave the form interactive rather than parking it in busy state
	if v.subscribeFn == nil {
		log.Println("[Subscribe] No subscription call wired, ignoring submit")
		return
	}

	v.beginSubmit()

	go func() {
		result, err := v.subscribeFn(context.Background(), email)
		fyne.Do(func() {
			v.finishSubmit(result, err)
		})
	}()
}

// beginSubmit moves the form into its busy state: control disabled,
// label swapped, transitional status shown.
func (v *SubscribeView) beginSubmit() {
	v.email.SetValidationError(nil)
	v.submit.Disable()
	v.submit.SetText(submitBusyLabel)
	v.status.SetText("Signing you up...")
	log.Println("[Subscribe] Submission started")
}

// finishSubmit applies the outcome of the remote call. Re-enabling the
// control and restoring its label is deferred so it runs on every exit
// path, including surprises from the injected call.
func (v *SubscribeView) finishSubmit(result models.SubscribeResult, err error) {
	defer func() {
		v.submit.Enable()
		v.submit.SetText(submitLabel)
	}()

	if err != nil {
		log.Printf("[Subscribe] Call failed: %v", err)
		v.email.SetValidationError(errors.New("connection lost"))
		v.status.SetText("Connection lost. Check your network and try again.")
		return
	}

	if !result.OK {
		log.Printf("[Subscribe] Rejected: %s", result.Message)
		v.email.SetValidationError(errors.New(result.Message))
		v.status.SetText(result.Message)
		return
	}

	log.Println("[Subscribe] Accepted")
	v.email.SetValidationError(nil)
	v.status.SetText(result.Message)

	// Clear the input without wiping the success message we just set
	v.muteChange = true
	v.email.SetText("")
	v.muteChange = false
}

// focusEmail returns focus to the field after a validation error.
// Nil-safe so the view works against a fake element set in tests.
func (v *SubscribeView) focusEmail() {
	if v.state != nil && v.state.Window != nil {
		v.state.Window.Canvas().Focus(v.email)
	}
}
