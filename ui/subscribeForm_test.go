package ui

import (
	"context"
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"aurora/models"
)

func newTestSubscribeView(t *testing.T) *SubscribeView {
	t.Helper()
	test.NewApp()

	cfg := models.LandingConfig{}
	w := test.NewWindow(widget.NewLabel("page"))
	state := NewAuroraAppState(w, cfg)

	return NewSubscribeView(state, nil)
}

func TestSubscribeEmptyEmailShowsDistinctMessage(t *testing.T) {
	v := newTestSubscribeView(t)

	v.onSubmitClicked()

	if v.status.Text == "" {
		t.Fatal("no validation message shown for empty input")
	}
	if v.submit.Disabled() {
		t.Fatal("control disabled although no remote call was made")
	}
}

func TestSubscribeMalformedEmailBlocksRemoteCall(t *testing.T) {
	v := newTestSubscribeView(t)
	called := false
	v.subscribeFn = func(_ context.Context, _ string) (models.SubscribeResult, error) {
		called = true
		return models.SubscribeResult{}, nil
	}

	v.email.SetText("no-at-sign")
	v.onSubmitClicked()

	if called {
		t.Fatal("remote call made despite failing validation")
	}
	if v.status.Text == "" {
		t.Fatal("no validation message shown for malformed input")
	}
	if v.email.Text != "no-at-sign" {
		t.Fatal("input was cleared on validation failure")
	}
}

func TestSubscribeNoCallWiredLeavesFormInteractive(t *testing.T) {
	v := newTestSubscribeView(t) // Constructed without a subscription call

	v.email.SetText("a@b.co")
	v.onSubmitClicked()

	if v.submit.Disabled() {
		t.Error("control disabled although nothing was submitted")
	}
	if v.submit.Text != submitLabel {
		t.Errorf("submit label: got %q, want %q", v.submit.Text, submitLabel)
	}
	if v.email.Text != "a@b.co" {
		t.Errorf("input mutated: got %q", v.email.Text)
	}
}

func TestSubscribeBusyState(t *testing.T) {
	v := newTestSubscribeView(t)

	v.beginSubmit()

	if !v.submit.Disabled() {
		t.Error("submit control not disabled while busy")
	}
	if v.submit.Text != submitBusyLabel {
		t.Errorf("busy label: got %q, want %q", v.submit.Text, submitBusyLabel)
	}
	if v.status.Text == "" {
		t.Error("no transitional status shown")
	}
}

func TestSubscribeSuccessOutcome(t *testing.T) {
	v := newTestSubscribeView(t)
	v.email.SetText("a@b.co")
	v.beginSubmit()

	v.finishSubmit(models.SubscribeResult{OK: true, Message: "welcome aboard"}, nil)

	if v.email.Text != "" {
		t.Errorf("input not cleared on success: %q", v.email.Text)
	}
	if v.status.Text != "welcome aboard" {
		t.Errorf("success message: got %q, want %q", v.status.Text, "welcome aboard")
	}
	if v.submit.Disabled() {
		t.Error("control not re-enabled after success")
	}
	if v.submit.Text != submitLabel {
		t.Errorf("label not restored: got %q", v.submit.Text)
	}
}

func TestSubscribeRejectedOutcome(t *testing.T) {
	v := newTestSubscribeView(t)
	v.email.SetText("a@b.co")
	v.beginSubmit()

	v.finishSubmit(models.SubscribeResult{OK: false, Message: "already subscribed"}, nil)

	if v.email.Text != "a@b.co" {
		t.Error("input should be retained on rejection")
	}
	if v.status.Text != "already subscribed" {
		t.Errorf("rejection message: got %q", v.status.Text)
	}
	if v.submit.Disabled() {
		t.Error("control not re-enabled after rejection")
	}
}

func TestSubscribeConnectivityOutcomeIsDistinct(t *testing.T) {
	v := newTestSubscribeView(t)
	v.email.SetText("a@b.co")
	v.beginSubmit()

	v.finishSubmit(models.SubscribeResult{}, errors.New("dial tcp: timeout"))

	if v.status.Text == "" {
		t.Fatal("no connectivity message shown")
	}
	if v.status.Text == "already subscribed" {
		t.Fatal("connectivity failure not distinguished from rejection")
	}
	if v.email.Text != "a@b.co" {
		t.Error("input should be retained on connectivity failure")
	}
	if v.submit.Disabled() {
		t.Error("control not re-enabled after connectivity failure")
	}
}

func TestSubscribeEditingClearsStaleError(t *testing.T) {
	v := newTestSubscribeView(t)

	v.onSubmitClicked() // Empty input leaves an error showing
	if v.status.Text == "" {
		t.Fatal("expected an error to be showing")
	}

	test.Type(v.email, "a")

	if v.status.Text != "" {
		t.Errorf("error not cleared on edit: %q", v.status.Text)
	}
}
