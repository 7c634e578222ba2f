package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEmailJSSender_Send(t *testing.T) {
	var got emailJSRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	s := NewEmailJSSender(EmailJSConfig{
		Endpoint:    srv.URL,
		ServiceID:   "service_x",
		UserID:      "public_key",
		AccessToken: "private_key",
	}, srv.Client())

	err := s.Send(context.Background(), "template_owner", Params{Name: "Ada", Email: "ada@example.com", Message: "hi"})
	require.NoError(t, err)

	assert.Equal(t, "service_x", got.ServiceID)
	assert.Equal(t, "template_owner", got.TemplateID)
	assert.Equal(t, "public_key", got.UserID)
	assert.Equal(t, "private_key", got.AccessToken)
	assert.Equal(t, "Ada", got.TemplateParams.Name)
}

func TestEmailJSSender_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("The service ID is invalid"))
	}))
	defer srv.Close()

	s := NewEmailJSSender(EmailJSConfig{Endpoint: srv.URL}, srv.Client())
	err := s.Send(context.Background(), "t", Params{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "service ID is invalid")
}

func TestEmailJSSender_DefaultEndpoint(t *testing.T) {
	s := NewEmailJSSender(EmailJSConfig{}, nil)
	assert.Equal(t, DefaultEmailJSEndpoint, s.cfg.Endpoint)
	assert.Equal(t, http.DefaultClient, s.client)
}

// Second call must never reach the API when the first one is rejected.
func TestRelay_EmailJSOwnerRejected(t *testing.T) {
	var templates []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req emailJSRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		templates = append(templates, req.TemplateID)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	sender := NewEmailJSSender(EmailJSConfig{Endpoint: srv.URL, ServiceID: "svc"}, srv.Client())
	res := New(sender, "owner", "sender", zap.NewNop()).Submit(context.Background(), valid)

	assert.Equal(t, []string{"owner"}, templates)
	assert.Equal(t, MsgFailed, res.Status.Message)
}
