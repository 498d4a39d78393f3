package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/jacksonrcmachado/ldm-CRUD-Tarefas/internal/utils"
)

const testJWTSecret = "tarefas_test_jwt_secret_key_1234567890"

func TestMain(m *testing.M) {
	_ = os.Setenv("JWT_SECRET", testJWTSecret)
	gin.SetMode(gin.TestMode)
	code := m.Run()
	os.Exit(code)
}

// gatedRouter wires the gate in front of a probe handler that records
// whether it was reached and with which user id.
func gatedRouter(reached *bool, gotUserID *int) *gin.Engine {
	router := gin.New()
	router.GET("/tarefas", AuthRequired(), func(c *gin.Context) {
		*reached = true
		if value, ok := c.Get(UserIDContextKey); ok {
			if id, ok := value.(int); ok {
				*gotUserID = id
			}
		}
		c.Status(http.StatusOK)
	})
	return router
}

func expiredToken(t *testing.T, userID int) string {
	t.Helper()
	now := time.Now().Add(-2 * time.Hour)
	claims := utils.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			Issuer:    "tarefas-api",
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthRequiredValidToken(t *testing.T) {
	token, err := utils.GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var (
		reached bool
		userID  int
	)
	router := gatedRouter(&reached, &userID)

	req := httptest.NewRequest(http.MethodGet, "/tarefas", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !reached {
		t.Fatalf("expected handler to be reached")
	}
	if userID != 42 {
		t.Fatalf("expected user_id 42 in context, got %d", userID)
	}
}

func TestAuthRequiredRejections(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"malformed header", "Bearer"},
		{"garbage token", "Bearer not-a-jwt"},
		{"expired token", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			header := tc.header
			if tc.name == "expired token" {
				header = "Bearer " + expiredToken(t, 42)
			}

			var (
				reached bool
				userID  int
			)
			router := gatedRouter(&reached, &userID)

			req := httptest.NewRequest(http.MethodGet, "/tarefas", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", resp.Code)
			}
			// The gate must reject before any downstream work happens.
			if reached {
				t.Fatalf("expected handler not to be reached")
			}
		})
	}
}

func TestAuthRequiredWrongSignature(t *testing.T) {
	claims := utils.Claims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			Issuer:    "tarefas-api",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("another_secret_key_that_is_long_enough_123"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	var (
		reached bool
		userID  int
	)
	router := gatedRouter(&reached, &userID)

	req := httptest.NewRequest(http.MethodGet, "/tarefas", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
	if reached {
		t.Fatalf("expected handler not to be reached")
	}
}
