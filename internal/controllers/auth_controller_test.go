package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"mybusnow/internal/models"
)

func withUser(t *testing.T, env *testEnv, id uint, email, password, role string) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	env.users.users[email] = models.User{ID: id, Email: email, Password: string(hashed), Role: role}
}

func TestLoginAdmin(t *testing.T) {
	env := newTestEnv()
	withUser(t, env, 1, "ops@mybusnow.in", "s3cret", models.RoleAdmin)

	rec := env.do(t, http.MethodPost, "/admin/login", `{"email":"ops@mybusnow.in","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "password")

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	claims, err := env.auth.ValidateToken(body.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestLoginAdminRejections(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"wrong password", `{"email":"ops@mybusnow.in","password":"guess"}`, http.StatusUnauthorized},
		{"unknown user", `{"email":"nobody@mybusnow.in","password":"s3cret"}`, http.StatusUnauthorized},
		{"not an admin", `{"email":"rider@mybusnow.in","password":"s3cret"}`, http.StatusForbidden},
		{"malformed email", `{"email":"ops","password":"s3cret"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			withUser(t, env, 1, "ops@mybusnow.in", "s3cret", models.RoleAdmin)
			withUser(t, env, 2, "rider@mybusnow.in", "s3cret", "rider")

			rec := env.do(t, http.MethodPost, "/admin/login", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
