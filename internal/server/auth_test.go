package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okhotnikov/libman/internal/models"
	"github.com/okhotnikov/libman/internal/server/servertest"
)

func obtainToken(t *testing.T, ts *httptest.Server, username, password string) string {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	resp, err := http.PostForm(ts.URL+"/api/token", form)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.AccessToken)
	return body.AccessToken
}

func doAuthed(t *testing.T, method, rawURL, token, body string) *http.Response {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, rawURL, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestTokenEndpoint(t *testing.T) {
	ts, _ := servertest.Start(t)

	form := url.Values{"username": {servertest.AdminUser}, "password": {servertest.AdminPassword}}
	resp, err := http.PostForm(ts.URL+"/api/token", form)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		AccessToken string      `json:"access_token"`
		Username    string      `json:"username"`
		Email       string      `json:"email"`
		FullName    string      `json:"full_name"`
		Status      string      `json:"status"`
		Role        models.Role `json:"role"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.AccessToken)
	require.Equal(t, servertest.AdminUser, body.Username)
	require.Equal(t, "Admin", body.Role.Name)
}

func TestTokenEndpointBadPassword(t *testing.T) {
	ts, _ := servertest.Start(t)

	form := url.Values{"username": {servertest.AdminUser}, "password": {"wrong"}}
	resp, err := http.PostForm(ts.URL+"/api/token", form)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTokenEndpointMissingFields(t *testing.T) {
	ts, _ := servertest.Start(t)

	resp, err := http.PostForm(ts.URL+"/api/token", url.Values{})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var fields map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fields))
	require.Contains(t, fields, "username")
	require.Contains(t, fields, "password")
}

func TestMeEndpoint(t *testing.T) {
	ts, _ := servertest.Start(t)
	token := obtainToken(t, ts, servertest.AdminUser, servertest.AdminPassword)

	resp := doAuthed(t, http.MethodGet, ts.URL+"/api/users/me/", token, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user models.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	require.Equal(t, servertest.AdminUser, user.Username)
	require.Equal(t, "Admin", user.Role.Name)
}

func TestMeEndpointRequiresToken(t *testing.T) {
	ts, _ := servertest.Start(t)

	resp := doAuthed(t, http.MethodGet, ts.URL+"/api/users/me/", "", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doAuthed(t, http.MethodGet, ts.URL+"/api/users/me/", "garbage.token.here", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminGate(t *testing.T) {
	ts, _ := servertest.Start(t)
	memberToken := obtainToken(t, ts, servertest.MemberUser, servertest.MemberPassword)
	adminToken := obtainToken(t, ts, servertest.AdminUser, servertest.AdminPassword)

	payload := `{"username":"carol","email":"carol@example.com","full_name":"Carol","password":"secret","role_id":2}`

	resp := doAuthed(t, http.MethodPost, ts.URL+"/api/users", memberToken, payload)
	defer resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doAuthed(t, http.MethodPost, ts.URL+"/api/users", adminToken, payload)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginIsAudited(t *testing.T) {
	ts, db := servertest.Start(t)
	obtainToken(t, ts, servertest.AdminUser, servertest.AdminPassword)

	var logs []models.ActivityLog
	require.NoError(t, db.Find(&logs).Error)
	require.NotEmpty(t, logs)
	require.Equal(t, "user_logged_in", logs[0].Action)
}
