package echoapi

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sazzad-Saju/circle-funds-flow/core"
	"github.com/Sazzad-Saju/circle-funds-flow/core/user"
)

type noticeErr struct {
	Error  string            `json:"error"`
	Notice core.Notice       `json:"notice"`
	Fields map[string]string `json:"fields"`
}

func Test_userApi_login(t *testing.T) {
	app := setup(t)

	missing := noticeErr{
		Error:  user.ErrMissingCredentials.Error(),
		Notice: core.Notice{Title: "Missing Information", Description: "Please enter both email and password", Variant: core.VariantDestructive},
	}

	tests := []struct {
		name     string
		body     []byte
		wantCode int
		wantUser user.User
	}{
		{name: "missing email", body: []byte(`{"password": "secret"}`), wantCode: http.StatusBadRequest},
		{name: "missing password", body: []byte(`{"email": "alex@friendcircle.com"}`), wantCode: http.StatusBadRequest},
		{name: "blank email", body: []byte(`{"email": "   ", "password": "secret"}`), wantCode: http.StatusBadRequest},
		{
			name: "existing member", body: []byte(`{"email": " Alex@FriendCircle.com ", "password": "anything"}`),
			wantCode: http.StatusOK, wantUser: app.member,
		},
		{
			name: "new member", body: []byte(`{"email": "jane.doe@friendcircle.com", "password": "x"}`),
			wantCode: http.StatusOK, wantUser: user.User{Name: "Jane Doe", Email: "jane.doe@friendcircle.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/auth/login", tt.body)
			app.ServeHTTP(rec, req)
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())

			if tt.wantCode != http.StatusOK {
				var got noticeErr
				unmarshal(t, rec, &got)
				assert.Equal(t, missing, got)
				return
			}

			var got LoginResponse
			unmarshal(t, rec, &got)
			assert.NotEmpty(t, got.Token)
			assert.Equal(t, core.OutcomeSucceeded, got.Outcome.Status)
			assert.Equal(t, "Login Successful!", got.Outcome.Notice.Title)
			assert.Equal(t, "Welcome back to FriendCircle Fund", got.Outcome.Notice.Description)
			if tt.wantUser.ID == "" {
				assert.NotEmpty(t, got.User.ID)
				tt.wantUser.ID = got.User.ID
			}
			assert.Equal(t, tt.wantUser, got.User)

			// the token opens the session
			req, rec = newAuthRequest(http.MethodGet, "/v1/me", got.Token)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, tt.wantUser)}, rec)
		})
	}
}

func Test_userApi_logout(t *testing.T) {
	app := setup(t)
	token := getToken(t, app.member, app.conf)
	other := getToken(t, app.member, app.conf)

	tests := []httpTest{
		{name: "Auth required", method: http.MethodPost, path: "/v1/auth/logout", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "logout", method: http.MethodPost, path: "/v1/auth/logout", token: token, wantCode: http.StatusOK,
			wantData: marchallObj(t, NoticeResponse{Notice: core.NewNotice("Logged Out", "You have been successfully logged out.")}),
		},
		{
			name: "revoked token", method: http.MethodGet, path: "/v1/me", token: token, wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, httpErr{Error: "session has ended, please log in again"}),
		},
		{name: "other sessions stay open", method: http.MethodGet, path: "/v1/me", token: other, wantCode: http.StatusOK, wantData: marchallObj(t, app.member)},
		{
			name: "invalid token", method: http.MethodGet, path: "/v1/me", token: "not-a-jwt", wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, httpErr{Error: "invalid or expired jwt"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_userApi_update(t *testing.T) {
	app := setup(t)
	token := getToken(t, app.member, app.conf)

	// a second member owning an email
	req, rec := newRequest(http.MethodPost, "/v1/auth/login", []byte(`{"email": "sarah@friendcircle.com", "password": "x"}`))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("Auth required", func(t *testing.T) {
		req, rec := newRequest(http.MethodPut, "/v1/me", []byte(`{}`))
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}, rec)
	})

	t.Run("email taken", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPut, "/v1/me", token, []byte(`{"email": "SARAH@friendcircle.com"}`))
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"email": user.ErrEmailExists.Error()}),
		}, rec)
	})

	t.Run("json", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPut, "/v1/me", token, []byte(`{"name": "  Alex J. ", "email": ""}`))
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var got ProfileResponse
		unmarshal(t, rec, &got)
		want := app.member
		want.Name = "Alex J."
		assert.Equal(t, want, got.User)
		assert.Equal(t, core.OutcomeSucceeded, got.Outcome.Status)
		assert.Equal(t, "Profile Updated", got.Outcome.Notice.Title)
		assert.Equal(t, "Your profile has been successfully updated.", got.Outcome.Notice.Description)
	})

	t.Run("multipart avatar", func(t *testing.T) {
		png := "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"
		req, rec := newMultipartRequest(t, http.MethodPut, "/v1/me", token,
			map[string]string{"email": "alex.j@friendcircle.com"},
			map[string][2]string{"avatar": {"me.png", png}},
		)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var got ProfileResponse
		unmarshal(t, rec, &got)
		assert.Equal(t, "Alex J.", got.User.Name)
		assert.Equal(t, "alex.j@friendcircle.com", got.User.Email)
		assert.True(t, strings.HasPrefix(got.User.Avatar, "data:image/png;base64,"), got.User.Avatar)
	})
}
