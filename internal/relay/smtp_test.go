package relay

import (
	"context"
	"errors"
	"net"
	"net/smtp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sentMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func newTestSMTP(t *testing.T, sent *[]sentMail, err error) *SMTPSender {
	t.Helper()
	s, e := NewSMTPSender(SMTPConfig{
		Host:    "smtp.example.com",
		Port:    "587",
		User:    "site@example.com",
		Pass:    "secret",
		ToEmail: "owner@example.com",
	}, "owner", "sender")
	require.NoError(t, e)
	s.sendMail = func(_ context.Context, addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		*sent = append(*sent, sentMail{addr, from, to, string(msg)})
		return err
	}
	return s
}

func TestNewSMTPSender_RequiresCredentials(t *testing.T) {
	_, err := NewSMTPSender(SMTPConfig{Host: "h", Port: "1"}, "o", "s")
	assert.EqualError(t, err, "SMTP credentials not configured")
}

func TestNewSMTPSender_RejectsSharedTemplate(t *testing.T) {
	_, err := NewSMTPSender(SMTPConfig{Host: "h", Port: "1", User: "u", Pass: "p"}, "contact", "contact")
	assert.ErrorContains(t, err, "must differ")
}

func TestSMTPSender_OwnerNotice(t *testing.T) {
	var sent []sentMail
	s := newTestSMTP(t, &sent, nil)

	err := s.Send(context.Background(), "owner", Params{Name: "Tom & Jerry", Email: "tj@example.com", Message: "if x<y & y>z"})
	require.NoError(t, err)
	require.Len(t, sent, 1)

	m := sent[0]
	assert.Equal(t, "smtp.example.com:587", m.addr)
	assert.Equal(t, "site@example.com", m.from)
	assert.Equal(t, []string{"owner@example.com"}, m.to)
	assert.Contains(t, m.msg, "Subject: Portfolio Contact: Tom & Jerry\r\n")
	assert.Contains(t, m.msg, "Reply-To: tj@example.com\r\n")
	assert.Contains(t, m.msg, "\nif x<y & y>z\n")
}

func TestSMTPSender_SenderConfirmation(t *testing.T) {
	var sent []sentMail
	s := newTestSMTP(t, &sent, nil)

	require.NoError(t, s.Send(context.Background(), "sender", Params{Name: "Ada", Email: "ada@example.com", Message: "hi"}))
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"ada@example.com"}, sent[0].to)
	assert.Contains(t, sent[0].msg, "Hi Ada,")
}

func TestSMTPSender_Errors(t *testing.T) {
	var sent []sentMail
	s := newTestSMTP(t, &sent, errors.New("421 try later"))

	err := s.Send(context.Background(), "owner", Params{Email: "a@b.c"})
	assert.ErrorContains(t, err, "421 try later")

	err = s.Send(context.Background(), "unknown", Params{})
	assert.ErrorContains(t, err, "unknown template")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	before := len(sent)
	assert.ErrorIs(t, s.Send(ctx, "owner", Params{}), context.Canceled)
	assert.Len(t, sent, before)
}

func TestCompose_StripsHeaderBreaks(t *testing.T) {
	msg := string(compose("a@b.c", "me@b.c", "x@y.z", "Hi\r\nBcc: evil@example.com", "body"))
	assert.NotContains(t, msg, "\r\nBcc:")
	assert.Contains(t, msg, "Subject: Hi Bcc: evil@example.com\r\n")
}

func TestSMTPSender_StuckServerHonoursRelayTimeout(t *testing.T) {
	var sent []sentMail
	s := newTestSMTP(t, &sent, nil)
	release := make(chan struct{})
	defer close(release)
	s.sendMail = func(context.Context, string, smtp.Auth, string, []string, []byte) error {
		<-release
		return nil
	}

	rl := New(s, "owner", "sender", zap.NewNop(), WithTimeout(50*time.Millisecond))
	start := time.Now()
	res := rl.Submit(context.Background(), Submission{Name: "Ada", Email: "ada@example.com", Message: "hi"})

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, OutcomeOwnerFailed, res.Outcome)
	assert.Equal(t, MsgFailed, res.Status.Message)
}

func TestSendMailContext_SilentServer(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	accepted := make(chan net.Conn, 1)
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			accepted <- conn
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err = sendMailContext(ctx, ln.Addr().String(), nil, "a@b.c", []string{"d@e.f"}, []byte("hi"))
	assert.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)

	select {
	case conn := <-accepted:
		conn.Close()
	default:
	}
}
