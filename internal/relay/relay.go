// Package relay sends contact-form messages: first a notification to the
// site owner, then a confirmation to the sender. Both must succeed for the
// visitor to see a success message.
package relay

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Messages shown to the visitor.
const (
	MsgMissingFields = "Please fill out all fields."
	MsgSent          = "Message sent successfully! You will receive a confirmation email shortly."
	MsgFailed        = "Failed to send message. Please try again later."
)

// Outcome labels a finished submission for logs and metrics.
type Outcome string

const (
	OutcomeInvalid      Outcome = "invalid"
	OutcomeOwnerFailed  Outcome = "owner_failed"
	OutcomeSenderFailed Outcome = "sender_failed"
	OutcomeSent         Outcome = "sent"
)

// Submission is the contact form.
type Submission struct {
	Name    string `form:"name" json:"name" validate:"required"`
	Email   string `form:"email" json:"email" validate:"required"`
	Message string `form:"message" json:"message" validate:"required"`
}

// Params is the template payload handed to a Sender. Values are passed
// through exactly as the visitor typed them.
type Params struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Sender delivers one templated email.
type Sender interface {
	Send(ctx context.Context, templateID string, params Params) error
}

// Status is what the form shows after a submission.
type Status struct {
	Message string
	// Success is nil before the first submission.
	Success *bool
}

// Result is the status plus the form values to render back.
type Result struct {
	Status  Status
	Form    Submission
	Outcome Outcome
}

// Recorder observes finished submissions.
type Recorder interface {
	ObserveRelay(outcome Outcome, elapsed time.Duration)
}

type step struct {
	name     string
	template string
	failure  Outcome
}

type Relay struct {
	sender   Sender
	steps    []step
	timeout  time.Duration
	logger   *zap.Logger
	recorder Recorder
	validate *validator.Validate
}

type Option func(*Relay)

// WithTimeout bounds the whole two-step send. Zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(r *Relay) { r.timeout = d }
}

func WithRecorder(rec Recorder) Option {
	return func(r *Relay) { r.recorder = rec }
}

// New builds a relay that sends ownerTemplate then senderTemplate through
// sender.
func New(sender Sender, ownerTemplate, senderTemplate string, logger *zap.Logger, opts ...Option) *Relay {
	r := &Relay{
		sender: sender,
		steps: []step{
			{name: "owner", template: ownerTemplate, failure: OutcomeOwnerFailed},
			{name: "sender", template: senderTemplate, failure: OutcomeSenderFailed},
		},
		logger:   logger,
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Submit validates sub and runs the notify-then-confirm pipeline. It never
// returns an error: failures become a generic status and are logged.
func (r *Relay) Submit(ctx context.Context, sub Submission) Result {
	start := time.Now()
	res := r.submit(ctx, sub)
	if r.recorder != nil {
		r.recorder.ObserveRelay(res.Outcome, time.Since(start))
	}
	return res
}

func (r *Relay) submit(ctx context.Context, sub Submission) Result {
	if err := r.validate.Struct(sub); err != nil {
		return Result{Status: failed(MsgMissingFields), Form: sub, Outcome: OutcomeInvalid}
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	params := Params(sub)
	for _, s := range r.steps {
		if err := r.sender.Send(ctx, s.template, params); err != nil {
			r.logger.Error("contact relay failed",
				zap.String("step", s.name),
				zap.String("template", s.template),
				zap.Error(errors.Wrapf(err, "sending %s email", s.name)))
			return Result{Status: failed(MsgFailed), Form: sub, Outcome: s.failure}
		}
	}

	r.logger.Info("contact message relayed", zap.String("from", params.Email))
	ok := true
	return Result{
		Status:  Status{Message: MsgSent, Success: &ok},
		Form:    Submission{},
		Outcome: OutcomeSent,
	}
}

func failed(msg string) Status {
	ok := false
	return Status{Message: msg, Success: &ok}
}
