package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHTTPClientGenerateSuccess(t *testing.T) {
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"ok\":true}"}}]}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL+"/", "secret", "gemini-2.0-flash", time.Second, zap.NewNop())
	out, err := c.Generate(context.Background(), "hola")
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, out)
	assert.Equal(t, "gemini-2.0-flash", gotReq.Model)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "hola", gotReq.Messages[0].Content)
	require.NotNil(t, gotReq.ResponseFormat)
	assert.Equal(t, "json_object", gotReq.ResponseFormat.Type)
}

func TestHTTPClientGenerateHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`quota`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "k", "m", time.Second, nil)
	_, err := c.Generate(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=429")
}

func TestHTTPClientGenerateAPIErrorAndEmpty(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		check func(t *testing.T, err error)
	}{
		{"api error", `{"error":{"message":"bad key"}}`, func(t *testing.T, err error) {
			require.Error(t, err)
			assert.Contains(t, err.Error(), "bad key")
		}},
		{"no choices", `{"choices":[]}`, func(t *testing.T, err error) {
			assert.True(t, errors.Is(err, ErrEmptyResponse))
		}},
		{"blank content", `{"choices":[{"message":{"role":"assistant","content":"  "}}]}`, func(t *testing.T, err error) {
			assert.True(t, errors.Is(err, ErrEmptyResponse))
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := NewHTTPClient(srv.URL, "k", "m", time.Second, nil)
			_, err := c.Generate(context.Background(), "x")
			tc.check(t, err)
		})
	}
}

func TestHTTPClientGenerateTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "k", "m", 50*time.Millisecond, nil)
	_, err := c.Generate(context.Background(), "x")
	require.Error(t, err)
}

func TestMockClientRecordsPrompts(t *testing.T) {
	m := &MockClient{Response: "r"}
	out, err := m.Generate(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "r", out)
	_, _ = m.Generate(context.Background(), "p2")
	assert.Equal(t, 2, m.Calls())
	assert.Equal(t, "p2", m.LastPrompt())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = m.Generate(ctx, "p3")
	assert.ErrorIs(t, err, context.Canceled)
}
