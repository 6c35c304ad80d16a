package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/curaedu/cura/core"
)

func testConfig() *core.Config {
	return &core.Config{
		SecretKey: []byte("secret"),
		Server: core.ServerConfig{
			JWTIssuer:          "cura",
			JWTAudience:        "authenticated",
			JWTExpirationDelta: time.Hour,
		},
	}
}

func signToken(t *testing.T, claims *Claims, secret []byte) string {
	t.Helper()
	token, err := GenerateToken(claims, secret)
	if err != nil {
		t.Fatalf("signToken() failed: %v", err)
	}
	return token
}

func TestVerifier_Verify(t *testing.T) {
	conf := testConfig()
	vfr := NewVerifier(conf)

	claims := func(mut ...func(*Claims)) *Claims {
		c := NewUserClaims("usr1", "hero@test.cd", RoleTeacher, "Hero", conf)
		for _, m := range mut {
			m(c)
		}
		return c
	}

	tests := []struct {
		name     string
		token    string
		wantErr  bool
		wantRole string
	}{
		{name: "valid teacher token", token: signToken(t, claims(), conf.SecretKey), wantRole: RoleTeacher},
		{
			name:     "role claim absent defaults to student",
			token:    signToken(t, claims(func(c *Claims) { c.Role = "" }), conf.SecretKey),
			wantRole: RoleStudent,
		},
		{
			name:    "garbage token",
			token:   "lmaooolol",
			wantErr: true,
		},
		{
			name:    "invalid signature",
			token:   signToken(t, claims(), []byte("not-the-secret")),
			wantErr: true,
		},
		{
			name:    "wrong issuer",
			token:   signToken(t, claims(func(c *Claims) { c.Issuer = "imposter" }), conf.SecretKey),
			wantErr: true,
		},
		{
			name:    "wrong audience",
			token:   signToken(t, claims(func(c *Claims) { c.Audience = "anon" }), conf.SecretKey),
			wantErr: true,
		},
		{
			name:    "missing subject",
			token:   signToken(t, claims(func(c *Claims) { c.Subject = "" }), conf.SecretKey),
			wantErr: true,
		},
		{
			name:    "missing email",
			token:   signToken(t, claims(func(c *Claims) { c.Email = "" }), conf.SecretKey),
			wantErr: true,
		},
		{
			name:    "missing iat",
			token:   signToken(t, claims(func(c *Claims) { c.IssuedAt = 0 }), conf.SecretKey),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := vfr.Verify(tt.token)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Verify() expected error, got principal %+v", p)
				}
				assert.True(t, core.IsAuthenticationError(err), "Verify() error = %v, want AuthenticationError", err)
				return
			}
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			assert.Equal(t, "usr1", p.ID)
			assert.Equal(t, "hero@test.cd", p.Email)
			assert.Equal(t, tt.wantRole, p.Role)
			assert.Equal(t, "Hero", p.Name)
			assert.False(t, p.IssuedAt.IsZero())
		})
	}
}

// A credential issued (and expired) long ago is still accepted: expiry
// verification is disabled on purpose and this pins that behavior.
func TestVerifier_Verify_expiredTokenStillAccepted(t *testing.T) {
	conf := testConfig()
	vfr := NewVerifier(conf)

	yearAgo := time.Now().Add(-365 * 24 * time.Hour)
	nowFunc = func() time.Time { return yearAgo }
	defer func() { nowFunc = time.Now }()

	c := NewUserClaims("usr1", "hero@test.cd", RoleStudent, "Hero", conf)
	if c.ExpiresAt >= time.Now().Unix() {
		t.Fatalf("test setup: token should be expired (exp=%d)", c.ExpiresAt)
	}

	p, err := vfr.Verify(signToken(t, c, conf.SecretKey))
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	assert.Equal(t, yearAgo.Unix(), p.IssuedAt.Unix())
}

// Sanity check on the claims shape itself, independently of the verifier.
func TestClaims_Valid(t *testing.T) {
	conf := testConfig()

	c := NewUserClaims("usr1", "hero@test.cd", RoleStudent, "Hero", conf)
	if err := c.Valid(); err != nil {
		t.Errorf("Valid() error = %v", err)
	}

	c.IssuedAt = 0
	if err := c.Valid(); err == nil {
		t.Error("Valid() expected error for missing iat")
	}

	c = NewUserClaims("usr1", "hero@test.cd", RoleStudent, "Hero", conf)
	c.ExpiresAt = time.Now().Add(-time.Hour).Unix()
	if err := c.Valid(); err != nil {
		t.Errorf("Valid() must not enforce expiry, got %v", err)
	}
}
