package apiclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okhotnikov/libman/internal/apiclient"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestBearerInjection(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	client := apiclient.New(ts.URL, staticToken("abc123"))
	var out map[string]bool
	require.NoError(t, client.Get(context.Background(), "/ping", &out))
	require.Equal(t, "Bearer abc123", gotAuth)

	client = apiclient.New(ts.URL, staticToken(""))
	require.NoError(t, client.Get(context.Background(), "/ping", &out))
	require.Empty(t, gotAuth, "no header when no token is held")
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind apiclient.ErrorKind
		wantMsg  string
	}{
		{
			name:     "plain json string",
			status:   401,
			body:     `"invalid username or password"`,
			wantKind: apiclient.KindPlainMessage,
			wantMsg:  "invalid username or password",
		},
		{
			name:     "message object",
			status:   401,
			body:     `{"message":"invalid or expired token"}`,
			wantKind: apiclient.KindPlainMessage,
			wantMsg:  "invalid or expired token",
		},
		{
			name:     "detail object",
			status:   403,
			body:     `{"detail":"not enough rights"}`,
			wantKind: apiclient.KindPlainMessage,
			wantMsg:  "not enough rights",
		},
		{
			name:     "field errors map",
			status:   400,
			body:     `{"username":["this field is required"],"password":["this field is required"]}`,
			wantKind: apiclient.KindFieldErrors,
		},
		{
			name:     "unrecognized payload",
			status:   500,
			body:     `<html>boom</html>`,
			wantKind: apiclient.KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			client := apiclient.New(ts.URL, nil)
			err := client.Get(context.Background(), "/x", nil)
			require.Error(t, err)

			var apiErr *apiclient.Error
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, tt.wantKind, apiErr.Kind)
			require.Equal(t, tt.status, apiErr.Status)
			if tt.wantMsg != "" {
				require.Equal(t, tt.wantMsg, apiErr.Message)
			}
			if tt.wantKind == apiclient.KindFieldErrors {
				require.Contains(t, apiErr.Fields, "username")
				require.Contains(t, apiErr.Fields, "password")
			}
		})
	}
}

func TestUnreachableBackend(t *testing.T) {
	client := apiclient.New("http://127.0.0.1:1", nil)
	err := client.Get(context.Background(), "/x", nil)

	var apiErr *apiclient.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, apiclient.KindUnreachable, apiErr.Kind)
}

func TestMalformedSuccessBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer ts.Close()

	client := apiclient.New(ts.URL, nil)
	var out map[string]any
	err := client.Get(context.Background(), "/x", &out)

	var apiErr *apiclient.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, apiclient.KindUnknown, apiErr.Kind)
}
