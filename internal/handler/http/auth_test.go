// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-resale-market/internal/service"
	"github.com/MKhiriev/go-resale-market/internal/store"
	"github.com/MKhiriev/go-resale-market/models"
)

var alice = models.PublicUser{
	UserID:  "u-1",
	Token:   "TOKEN1234567890a",
	Account: models.Account{Username: "alice"},
}

// ── signup ───────────────────────────────────────────────────────────────────

func TestSignup_Multipart(t *testing.T) {
	router, deps := newTestRouter(t)

	deps.auth.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.RegisterRequest) (models.PublicUser, error) {
			assert.Equal(t, "alice", req.Username)
			assert.Equal(t, "alice@example.com", req.Email)
			assert.Equal(t, "azerty", req.Password)
			assert.True(t, req.Newsletter)
			require.NotNil(t, req.Avatar)
			assert.Equal(t, "image/png", req.Avatar.ContentType)
			assert.Equal(t, pngBytes, req.Avatar.Data)
			return alice, nil
		},
	)

	body, contentType := multipartBody(t, map[string]string{
		"username":   "alice",
		"email":      "alice@example.com",
		"password":   "azerty",
		"newsletter": "true",
	}, formFile{field: "picture", filename: "me.png", contentType: "image/png", data: pngBytes})

	req := httptest.NewRequest(http.MethodPost, "/user/signup", body)
	req.Header.Set("Content-Type", contentType)
	rr := serve(router, req)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{"_id":"u-1","token":"TOKEN1234567890a","account":{"username":"alice"}}`, rr.Body.String())
}

func TestSignup_JSON(t *testing.T) {
	tests := []struct {
		newsletter string
		want       bool
	}{
		{`true`, true},
		{`"true"`, true},
		{`false`, false},
		{`"yes"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.newsletter, func(t *testing.T) {
			router, deps := newTestRouter(t)
			deps.auth.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, req models.RegisterRequest) (models.PublicUser, error) {
					assert.Equal(t, tt.want, req.Newsletter)
					assert.Nil(t, req.Avatar)
					return alice, nil
				},
			)

			payload := fmt.Sprintf(`{"username":"alice","email":"a@b.c","password":"p","newsletter":%s}`, tt.newsletter)
			req := httptest.NewRequest(http.MethodPost, "/user/signup", strings.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			rr := serve(router, req)

			assert.Equal(t, http.StatusCreated, rr.Code)
		})
	}
}

func TestSignup_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing fields",
			err:         fmt.Errorf("%w: username, email and password are required", service.ErrInvalidDataProvided),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request",
		},
		{
			name:        "duplicate email",
			err:         fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists),
			wantStatus:  http.StatusConflict,
			wantMessage: "User already registered with this email address",
		},
		{
			name:        "store failure",
			err:         fmt.Errorf("user creation ended with error: %w", store.ErrExecutingStatement),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "user creation ended with error: failed to execute statement",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter(t)
			deps.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.PublicUser{}, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/user/signup", strings.NewReader(`{"email":"a@b.c"}`))
			req.Header.Set("Content-Type", "application/json")
			rr := serve(router, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeBody(t, rr)["message"])
		})
	}
}

func TestSignup_MalformedJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/user/signup", strings.NewReader(`{"email":`))
	req.Header.Set("Content-Type", "application/json")
	rr := serve(router, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"Invalid request"}`, rr.Body.String())
}

// ── login ────────────────────────────────────────────────────────────────────

func TestLogin(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "unknown email", err: fmt.Errorf("user search by email failed: %w", store.ErrNoUserWasFound), wantStatus: http.StatusNotFound, wantMessage: "User not found"},
		{name: "wrong password", err: service.ErrWrongPassword, wantStatus: http.StatusUnauthorized, wantMessage: "Unauthorized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter(t)
			deps.auth.EXPECT().
				Login(gomock.Any(), models.LoginRequest{Email: "alice@example.com", Password: "azerty"}).
				Return(alice, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/user/login",
				strings.NewReader(`{"email":"alice@example.com","password":"azerty"}`))
			req.Header.Set("Content-Type", "application/json")
			rr := serve(router, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			body := decodeBody(t, rr)
			if tt.err == nil {
				assert.Equal(t, alice.Token, body["token"])
				return
			}
			assert.Equal(t, tt.wantMessage, body["message"])
		})
	}
}

func TestLogin_URLEncodedForm(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.auth.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Email: "alice@example.com", Password: "azerty"}).
		Return(alice, nil)

	form := url.Values{"email": {"alice@example.com"}, "password": {"azerty"}}
	req := httptest.NewRequest(http.MethodPost, "/user/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := serve(router, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
