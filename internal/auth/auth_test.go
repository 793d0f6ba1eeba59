package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		_, err := NewTokenService("")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("valid secret", func(t *testing.T) {
		service, err := NewTokenService("test-secret")
		assert.NoError(t, err)
		assert.NotNil(t, service)
	})
}

func TestJWTOperations(t *testing.T) {
	service, err := NewTokenService("test-signing-key-for-jwt-operations")
	require.NoError(t, err)

	actor := Actor{ID: uuid.New(), Role: RoleStudent}

	token, err := service.GenerateJWT(actor, time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, actor.ID.String(), claims.UserID)
	assert.Equal(t, RoleStudent, claims.Role)
	assert.Equal(t, tokenIssuer, claims.Issuer)

	parsed, err := claims.Actor()
	require.NoError(t, err)
	assert.Equal(t, actor, parsed)

	_, err = service.ValidateJWT("invalid-token")
	assert.Error(t, err)
}

func TestJWTExpiration(t *testing.T) {
	service, err := NewTokenService("test-signing-key-for-expiration-test")
	require.NoError(t, err)

	token, err := service.GenerateJWT(Actor{ID: uuid.New(), Role: RoleAdmin}, -time.Minute)
	require.NoError(t, err)

	_, err = service.ValidateJWT(token)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTWrongSecret(t *testing.T) {
	issuer, err := NewTokenService("issuer-secret")
	require.NoError(t, err)
	verifier, err := NewTokenService("other-secret")
	require.NoError(t, err)

	token, err := issuer.GenerateJWT(Actor{ID: uuid.New(), Role: RoleStudent}, time.Hour)
	require.NoError(t, err)

	_, err = verifier.ValidateJWT(token)
	assert.Error(t, err)
}

func TestClaimsActor(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		claims := &AuthClaims{UserID: "not-a-uuid", Role: RoleStudent}
		_, err := claims.Actor()
		assert.Error(t, err)
	})

	t.Run("invalid role", func(t *testing.T) {
		claims := &AuthClaims{UserID: uuid.New().String(), Role: "mentor"}
		_, err := claims.Actor()
		assert.Error(t, err)
	})
}

func TestActorContext(t *testing.T) {
	_, ok := ActorFromContext(context.Background())
	assert.False(t, ok)

	actor := Actor{ID: uuid.New(), Role: RoleAdmin}
	ctx := WithActor(context.Background(), actor)
	got, ok := ActorFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, actor, got)
	assert.True(t, got.IsAdmin())
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service, err := NewTokenService("middleware-secret")
	require.NoError(t, err)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.Use(middleware.RequireAuth())
	router.GET("/me", func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no actor"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": actor.ID.String(), "role": actor.Role})
	})
	router.GET("/admin", middleware.RequireRole(RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	do := func(path, header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("missing header", func(t *testing.T) {
		w := do("/me", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authorization header is required")
	})

	t.Run("malformed header", func(t *testing.T) {
		w := do("/me", "Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid authorization header format")
	})

	t.Run("invalid token", func(t *testing.T) {
		w := do("/me", "Bearer garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token with non-uuid subject", func(t *testing.T) {
		claims := &AuthClaims{
			UserID: "12345",
			Role:   RoleStudent,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("middleware-secret"))
		require.NoError(t, err)

		w := do("/me", "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid student token", func(t *testing.T) {
		id := uuid.New()
		token, err := service.GenerateJWT(Actor{ID: id, Role: RoleStudent}, time.Hour)
		require.NoError(t, err)

		w := do("/me", "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), id.String())
	})

	t.Run("student rejected from admin route", func(t *testing.T) {
		token, err := service.GenerateJWT(Actor{ID: uuid.New(), Role: RoleStudent}, time.Hour)
		require.NoError(t, err)

		w := do("/admin", "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin allowed on admin route", func(t *testing.T) {
		token, err := service.GenerateJWT(Actor{ID: uuid.New(), Role: RoleAdmin}, time.Hour)
		require.NoError(t, err)

		w := do("/admin", "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
