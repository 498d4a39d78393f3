package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func TestHealthCheck(t *testing.T) {
	h, _, cleanup := setupMockHandler(t)
	defer cleanup()

	router := gin.New()
	router.GET("/health", h.HealthCheck)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	expectHTTP200(t, resp.Code)
}

func TestStatusSnapshot(t *testing.T) {
	h, mock, cleanup := setupMockHandler(t)
	defer cleanup()

	mock.
		ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM users`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.
		ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM tarefas`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	router := gin.New()
	router.GET("/api/status", h.Status)

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	expectHTTP200(t, resp.Code)

	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if out["users_total"].(float64) != 3 {
		t.Fatalf("expected users_total=3, got %v", out["users_total"])
	}
	if out["tarefas_total"].(float64) != 12 {
		t.Fatalf("expected tarefas_total=12, got %v", out["tarefas_total"])
	}
	if out["db_status"] != "ok" {
		t.Fatalf("expected db_status=ok, got %v", out["db_status"])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
