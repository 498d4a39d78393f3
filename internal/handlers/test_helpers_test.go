package handlers

import (
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"github.com/jacksonrcmachado/ldm-CRUD-Tarefas/internal/database"
	"github.com/jacksonrcmachado/ldm-CRUD-Tarefas/internal/monitoring"
	"github.com/jacksonrcmachado/ldm-CRUD-Tarefas/internal/store"
)

const testJWTSecret = "tarefas_test_jwt_secret_key_1234567890"

func TestMain(m *testing.M) {
	_ = os.Setenv("JWT_SECRET", testJWTSecret)
	gin.SetMode(gin.TestMode)
	code := m.Run()
	os.Exit(code)
}

// setupMockHandler builds a Handler over a sqlmock-backed store.
func setupMockHandler(t *testing.T) (*Handler, sqlmock.Sqlmock, func()) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}

	db := database.FromConn(conn, "postgres")
	st := store.New(db)
	h := New(st, monitoring.NewService(time.Now(), db, st))

	cleanup := func() {
		_ = conn.Close()
	}

	return h, mock, cleanup
}

func mustStatus(t *testing.T, actual int, expected int) {
	t.Helper()
	if actual != expected {
		t.Fatalf("expected status %d, got %d", expected, actual)
	}
}

func expectHTTP200(t *testing.T, status int) {
	t.Helper()
	mustStatus(t, status, http.StatusOK)
}
