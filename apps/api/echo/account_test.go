package echoapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/curaedu/cura/core/account"
	"github.com/curaedu/cura/core/auth"
)

func TestAccountAPI_signup(t *testing.T) {
	env := setup(t)

	body := marshallObj(t, account.NewUser{
		Email:    "jane@test.local",
		Password: "Secret123",
		Role:     auth.RoleStudent,
		Name:     "Jane Doe",
	})
	rec := env.do(newRequest(http.MethodPost, "/v1/auth/signup", body))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var usr account.User
	decodeBody(t, rec.Body, &usr)
	assert.Equal(t, "jane@test.local", usr.Email)
	assert.Equal(t, auth.RoleStudent, usr.Role)
	assert.NotEmpty(t, usr.ID)
	assert.NotContains(t, rec.Body.String(), "password")

	// duplicate email is rejected
	rec = env.do(newRequest(http.MethodPost, "/v1/auth/signup", body))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAccountAPI_signup_validation(t *testing.T) {
	env := setup(t)

	tests := []struct {
		name string
		data account.NewUser
	}{
		{"missing email", account.NewUser{Password: "Secret123", Role: "student", Name: "J"}},
		{"bad email", account.NewUser{Email: "nope", Password: "Secret123", Role: "student", Name: "J"}},
		{"short password", account.NewUser{Email: "a@b.cd", Password: "short", Role: "student", Name: "J"}},
		{"unknown role", account.NewUser{Email: "a@b.cd", Password: "Secret123", Role: "admin", Name: "J"}},
		{"missing name", account.NewUser{Email: "a@b.cd", Password: "Secret123", Role: "student"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(newRequest(http.MethodPost, "/v1/auth/signup", marshallObj(t, tt.data)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAccountAPI_login(t *testing.T) {
	env := setup(t)
	env.createUser(t, "jane@test.local", auth.RoleStudent, "Jane Doe", "Secret123")

	rec := env.do(newRequest(http.MethodPost, "/v1/auth/login",
		marshallObj(t, LoginRequest{Email: "jane@test.local", Password: "Secret123"})))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	decodeBody(t, rec.Body, &resp)
	assert.NotEmpty(t, resp.Token)

	// the token works on an authenticated endpoint
	rec = env.do(newAuthRequest(http.MethodGet, "/v1/auth/me", resp.Token))
	assert.Equal(t, http.StatusOK, rec.Code)

	var usr account.User
	decodeBody(t, rec.Body, &usr)
	assert.Equal(t, "jane@test.local", usr.Email)
}

func TestAccountAPI_login_invalidCredentials(t *testing.T) {
	env := setup(t)
	env.createUser(t, "jane@test.local", auth.RoleStudent, "Jane Doe", "Secret123")

	// wrong password and unknown email look the same
	rec := env.do(newRequest(http.MethodPost, "/v1/auth/login",
		marshallObj(t, LoginRequest{Email: "jane@test.local", Password: "wrong"})))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(newRequest(http.MethodPost, "/v1/auth/login",
		marshallObj(t, LoginRequest{Email: "who@test.local", Password: "Secret123"})))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAccountAPI_me_requiresToken(t *testing.T) {
	env := setup(t)

	rec := env.do(newRequest(http.MethodGet, "/v1/auth/me"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(newAuthRequest(http.MethodGet, "/v1/auth/me", "garbage"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// A token signed with the right key but long past its expiry is still
// accepted; only a bad signature or missing claims get rejected.
func TestAccountAPI_me_expiredTokenStillAccepted(t *testing.T) {
	env := setup(t)
	usr := env.createUser(t, "jane@test.local", auth.RoleStudent, "Jane Doe", "Secret123")

	claims := auth.NewUserClaims(usr.ID, usr.Email, usr.Role, usr.Name, env.conf)
	claims.IssuedAt = claims.IssuedAt - 2*365*24*3600
	claims.ExpiresAt = claims.IssuedAt + 60
	token, err := auth.GenerateToken(claims, env.conf.SecretKey)
	if err != nil {
		t.Fatalf("GenerateToken() failed: %v", err)
	}

	rec := env.do(newAuthRequest(http.MethodGet, "/v1/auth/me", token))
	assert.Equal(t, http.StatusOK, rec.Code)
}
