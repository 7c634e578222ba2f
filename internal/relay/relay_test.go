package relay

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type call struct {
	template string
	params   Params
}

type fakeSender struct {
	mu     sync.Mutex
	calls  []call
	failOn map[string]error
	block  bool
}

func (f *fakeSender) Send(ctx context.Context, templateID string, params Params) error {
	f.mu.Lock()
	f.calls = append(f.calls, call{templateID, params})
	f.mu.Unlock()
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.failOn[templateID]
}

type recorded struct {
	outcomes []Outcome
}

func (r *recorded) ObserveRelay(outcome Outcome, _ time.Duration) {
	r.outcomes = append(r.outcomes, outcome)
}

var valid = Submission{Name: "Ada", Email: "ada@example.com", Message: "Hello there"}

func newTestRelay(s Sender, opts ...Option) *Relay {
	return New(s, "tpl_owner", "tpl_sender", zap.NewNop(), opts...)
}

func TestSubmit_MissingFields(t *testing.T) {
	tests := map[string]Submission{
		"no name":    {Email: "a@b.c", Message: "hi"},
		"no email":   {Name: "A", Message: "hi"},
		"no message": {Name: "A", Email: "a@b.c"},
		"all empty":  {},
	}
	for name, sub := range tests {
		t.Run(name, func(t *testing.T) {
			sender := &fakeSender{}
			res := newTestRelay(sender).Submit(context.Background(), sub)

			assert.Empty(t, sender.calls, "no network calls on invalid input")
			assert.Equal(t, MsgMissingFields, res.Status.Message)
			require.NotNil(t, res.Status.Success)
			assert.False(t, *res.Status.Success)
			assert.Equal(t, sub, res.Form, "form keeps what the visitor typed")
			assert.Equal(t, OutcomeInvalid, res.Outcome)
		})
	}
}

func TestSubmit_Success(t *testing.T) {
	sender := &fakeSender{}
	rec := &recorded{}
	res := newTestRelay(sender, WithRecorder(rec)).Submit(context.Background(), valid)

	require.Len(t, sender.calls, 2)
	assert.Equal(t, "tpl_owner", sender.calls[0].template, "owner is notified first")
	assert.Equal(t, "tpl_sender", sender.calls[1].template)
	assert.Equal(t, Params{Name: "Ada", Email: "ada@example.com", Message: "Hello there"}, sender.calls[0].params)
	assert.Equal(t, sender.calls[0].params, sender.calls[1].params)

	assert.Equal(t, MsgSent, res.Status.Message)
	require.NotNil(t, res.Status.Success)
	assert.True(t, *res.Status.Success)
	assert.Equal(t, Submission{}, res.Form, "fields reset after success")
	assert.Equal(t, []Outcome{OutcomeSent}, rec.outcomes)
}

func TestSubmit_OwnerFailureSkipsConfirmation(t *testing.T) {
	sender := &fakeSender{failOn: map[string]error{"tpl_owner": errors.New("boom")}}
	res := newTestRelay(sender).Submit(context.Background(), valid)

	require.Len(t, sender.calls, 1)
	assert.Equal(t, "tpl_owner", sender.calls[0].template)
	assert.Equal(t, MsgFailed, res.Status.Message)
	assert.NotContains(t, res.Status.Message, "boom", "cause is never shown")
	assert.False(t, *res.Status.Success)
	assert.Equal(t, valid, res.Form)
	assert.Equal(t, OutcomeOwnerFailed, res.Outcome)
}

func TestSubmit_SenderFailure(t *testing.T) {
	sender := &fakeSender{failOn: map[string]error{"tpl_sender": errors.New("bounced")}}
	res := newTestRelay(sender).Submit(context.Background(), valid)

	assert.Len(t, sender.calls, 2)
	assert.Equal(t, MsgFailed, res.Status.Message)
	assert.False(t, *res.Status.Success)
	assert.Equal(t, OutcomeSenderFailed, res.Outcome)
}

func TestSubmit_Timeout(t *testing.T) {
	sender := &fakeSender{block: true}
	res := newTestRelay(sender, WithTimeout(20*time.Millisecond)).Submit(context.Background(), valid)

	assert.Len(t, sender.calls, 1)
	assert.Equal(t, MsgFailed, res.Status.Message)
}

func TestSubmit_SendsValuesAsTyped(t *testing.T) {
	sender := &fakeSender{}
	sub := Submission{Name: "Tom & Jerry", Email: "tj@example.com", Message: "if x<y & y>z then <b>bold</b>"}

	res := newTestRelay(sender).Submit(context.Background(), sub)

	require.Len(t, sender.calls, 2)
	assert.Equal(t, OutcomeSent, res.Outcome)
	for _, c := range sender.calls {
		assert.Equal(t, Params{Name: "Tom & Jerry", Email: "tj@example.com", Message: "if x<y & y>z then <b>bold</b>"}, c.params)
	}
}
