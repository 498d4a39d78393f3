package monitoring

import (
	"runtime"
	"time"

	"github.com/jacksonrcmachado/ldm-CRUD-Tarefas/internal/database"
	"github.com/jacksonrcmachado/ldm-CRUD-Tarefas/internal/store"
)

// Service holds runtime context for monitoring and reporting.
type Service struct {
	startedAt time.Time
	db        *database.DB
	store     *store.Store
}

type Snapshot struct {
	TimestampUTC       string `json:"timestamp_utc"`
	UptimeSeconds      int64  `json:"uptime_seconds"`
	DBStatus           string `json:"db_status"`
	HTTPActiveRequests int64  `json:"http_active_requests"`
	HTTPTotalRequests  uint64 `json:"http_total_requests"`
	DBOpenConnections  int    `json:"db_open_connections"`
	DBInUseConnections int    `json:"db_in_use_connections"`
	DBWaitCount        int64  `json:"db_wait_count"`
	Goroutines         int    `json:"goroutines"`
	GoMemoryAllocBytes uint64 `json:"go_memory_alloc_bytes"`
	GoMemorySysBytes   uint64 `json:"go_memory_sys_bytes"`
	GoHeapInUseBytes   uint64 `json:"go_heap_in_use_bytes"`
	GoGCCount          uint32 `json:"go_gc_count"`
	UsersTotal         int64  `json:"users_total"`
	TarefasTotal       int64  `json:"tarefas_total"`
}

func NewService(startedAt time.Time, db *database.DB, st *store.Store) *Service {
	return &Service{startedAt: startedAt, db: db, store: st}
}

// Snapshot collects runtime, pool and domain counters. Counter queries
// are best-effort; a failing one leaves its field at zero.
func (s *Service) Snapshot() Snapshot {
	stats := s.db.Stats()
	activeHTTP, totalHTTP := getHTTPStats()

	dbStatus := "ok"
	if err := s.db.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
	}

	var memory runtime.MemStats
	runtime.ReadMemStats(&memory)

	snap := Snapshot{
		TimestampUTC:       time.Now().UTC().Format(time.RFC3339),
		UptimeSeconds:      int64(time.Since(s.startedAt).Seconds()),
		DBStatus:           dbStatus,
		HTTPActiveRequests: activeHTTP,
		HTTPTotalRequests:  totalHTTP,
		DBOpenConnections:  stats.OpenConnections,
		DBInUseConnections: stats.InUse,
		DBWaitCount:        int64(stats.WaitCount),
		Goroutines:         runtime.NumGoroutine(),
		GoMemoryAllocBytes: memory.Alloc,
		GoMemorySysBytes:   memory.Sys,
		GoHeapInUseBytes:   memory.HeapInuse,
		GoGCCount:          memory.NumGC,
	}

	if total, err := s.store.CountUsers(); err == nil {
		snap.UsersTotal = total
	}
	if total, err := s.store.CountTasks(); err == nil {
		snap.TarefasTotal = total
	}

	return snap
}
