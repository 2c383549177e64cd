package e2e

import (
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you/streamsvc/internal/infrastructure/repositories"
	testconfig "github.com/you/streamsvc/internal/tests/config"
)

// TestCompleteAuthenticationFlow walks register -> login -> profile -> preferences -> logout
func TestCompleteAuthenticationFlow(t *testing.T) {
	suite := NewTestSuite(t)

	email := "nour@example.com"
	password := "SecurePassword123!"

	// Step 1: registration
	resp := suite.Do(t, http.MethodPost, "/auth/register", map[string]string{
		"email":     email,
		"password":  password,
		"firstName": "Nour",
	}, "")
	require.Equal(t, http.StatusCreated, resp.Status, resp.Error.Message)
	assert.Equal(t, "User registered successfully", resp.Message)

	var created struct {
		ID    string  `json:"id"`
		Email *string `json:"email"`
		Phone *string `json:"phone"`
	}
	resp.DecodeData(t, &created)
	assert.NotEmpty(t, created.ID)
	assert.Nil(t, created.Phone)

	var stored repositories.DBUser
	require.NoError(t, suite.DB.Where("email = ?", email).First(&stored).Error)
	assert.NotEqual(t, password, stored.PasswordHash)
	assert.False(t, stored.IsVerified)

	// Step 2: duplicate registration conflicts
	resp = suite.Do(t, http.MethodPost, "/auth/register", map[string]string{"email": email, "phone": "+971500000099", "password": password}, "")
	assert.Equal(t, http.StatusConflict, resp.Status)
	assert.Equal(t, "CONFLICT", resp.Error.Code)

	// Step 3: login sets the cookie and signs the user id into the token
	resp = suite.Do(t, http.MethodPost, "/auth/login", map[string]string{"emailOrPhone": email, "password": password}, "")
	require.Equal(t, http.StatusOK, resp.Status)
	var login struct {
		Token string `json:"token"`
		User  struct {
			ID         string `json:"id"`
			FirstName  string `json:"firstName"`
			IsVerified bool   `json:"isVerified"`
		} `json:"user"`
	}
	resp.DecodeData(t, &login)
	assert.Equal(t, created.ID, login.User.ID)
	assert.Equal(t, "Nour", login.User.FirstName)

	require.Len(t, resp.Cookies, 1)
	cookie := resp.Cookies[0]
	assert.Equal(t, "authToken", cookie.Name)
	assert.Equal(t, login.Token, cookie.Value)
	assert.Equal(t, 604800, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(login.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testconfig.TestJWTSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims["sub"])

	// Step 4: protected profile
	resp = suite.Do(t, http.MethodGet, "/auth/me", nil, login.Token)
	require.Equal(t, http.StatusOK, resp.Status)

	// Step 5: preferred language change
	resp = suite.Do(t, http.MethodPatch, "/auth/me/preferences", map[string]string{"preferredLanguage": "ar"}, login.Token)
	require.Equal(t, http.StatusOK, resp.Status)
	var profile struct {
		PreferredLanguage string `json:"preferredLanguage"`
	}
	resp.DecodeData(t, &profile)
	assert.Equal(t, "ar", profile.PreferredLanguage)

	// Step 6: logout revokes the token
	resp = suite.Do(t, http.MethodPost, "/auth/logout", nil, login.Token)
	require.Equal(t, http.StatusOK, resp.Status)

	resp = suite.Do(t, http.MethodGet, "/auth/me", nil, login.Token)
	assert.Equal(t, http.StatusUnauthorized, resp.Status)
	assert.Equal(t, "Token has been revoked", resp.Error.Message)
}

func TestLoginFailures(t *testing.T) {
	suite := NewTestSuite(t)

	tests := []struct {
		name           string
		body           map[string]string
		expectedStatus int
		expectedMsg    string
	}{
		{name: "wrong password", body: map[string]string{"emailOrPhone": "sam@example.com", "password": "nope"}, expectedStatus: http.StatusUnauthorized, expectedMsg: "Invalid email/phone or password"},
		{name: "unknown user", body: map[string]string{"emailOrPhone": "ghost@example.com", "password": seedPassword}, expectedStatus: http.StatusUnauthorized, expectedMsg: "Invalid email/phone or password"},
		{name: "missing password", body: map[string]string{"emailOrPhone": "sam@example.com"}, expectedStatus: http.StatusBadRequest, expectedMsg: "Email/Phone and password are required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := suite.Do(t, http.MethodPost, "/auth/login", tt.body, "")
			assert.Equal(t, tt.expectedStatus, resp.Status)
			assert.Equal(t, tt.expectedMsg, resp.Error.Message)
			assert.Equal(t, tt.expectedStatus, resp.Error.StatusCode)
		})
	}

	// phone works as the identifier too
	assert.NotEmpty(t, suite.Login(t, "+971500000011", seedPassword))
}

func TestOTPFlow(t *testing.T) {
	suite := NewTestSuite(t)
	phone := "+971500000010"

	resp := suite.Do(t, http.MethodPost, "/auth/request-otp", map[string]string{"phoneOrEmail": phone}, "")
	require.Equal(t, http.StatusOK, resp.Status, resp.Error.Message)
	var issued struct {
		ExpiresIn int `json:"expiresIn"`
	}
	resp.DecodeData(t, &issued)
	assert.Equal(t, 600, issued.ExpiresIn)

	code := suite.Notifier.LastCode(t, phone)
	assert.Len(t, code, 6)

	resp = suite.Do(t, http.MethodPost, "/auth/verify-otp", map[string]string{"phoneOrEmail": phone, "otp": code}, "")
	require.Equal(t, http.StatusOK, resp.Status, resp.Error.Message)
	var verified struct {
		Token string `json:"token"`
		User  struct {
			FirstName string `json:"firstName"`
		} `json:"user"`
	}
	resp.DecodeData(t, &verified)
	assert.NotEmpty(t, verified.Token)
	assert.Equal(t, "ليلى", verified.User.FirstName)

	// a code is accepted at most once
	resp = suite.Do(t, http.MethodPost, "/auth/verify-otp", map[string]string{"phoneOrEmail": phone, "otp": code}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.Status)
	assert.Equal(t, "Invalid or expired OTP", resp.Error.Message)

	// email destinations go out by email
	resp = suite.Do(t, http.MethodPost, "/auth/request-otp", map[string]string{"phoneOrEmail": "sam@example.com"}, "")
	require.Equal(t, http.StatusOK, resp.Status)
	assert.Len(t, suite.Notifier.LastCode(t, "sam@example.com"), 6)

	resp = suite.Do(t, http.MethodPost, "/auth/request-otp", map[string]string{"phoneOrEmail": "ghost@example.com"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.Status)
	assert.Equal(t, "User not found", resp.Error.Message)
}

func TestProtectedRoutes(t *testing.T) {
	suite := NewTestSuite(t)

	t.Run("missing token", func(t *testing.T) {
		resp := suite.Do(t, http.MethodGet, "/watchlist", nil, "")
		assert.Equal(t, http.StatusUnauthorized, resp.Status)
		assert.Equal(t, "Missing authorization header", resp.Error.Message)
	})

	t.Run("forged token", func(t *testing.T) {
		resp := suite.Do(t, http.MethodGet, "/watchlist", nil, "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, resp.Status)
		assert.Equal(t, "AUTHENTICATION_ERROR", resp.Error.Code)
	})

	t.Run("role without policy is forbidden", func(t *testing.T) {
		require.NoError(t, suite.DB.Model(&repositories.DBUser{}).
			Where("email = ?", "sam@example.com").Update("role", "guest").Error)
		token := suite.Login(t, "sam@example.com", seedPassword)

		resp := suite.Do(t, http.MethodGet, "/auth/me", nil, token)
		assert.Equal(t, http.StatusForbidden, resp.Status)
		assert.Equal(t, "AUTHORIZATION_ERROR", resp.Error.Code)
	})
}
