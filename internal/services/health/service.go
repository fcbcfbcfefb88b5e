package health

import (
	"context"
	"time"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Status is the health payload.
type Status struct {
	OK       bool   `json:"ok"`
	Env      string `json:"env"`
	Storage  string `json:"storage"`
	Staffing string `json:"staffing"`
	Error    string `json:"error,omitempty"`
}

// Service encapsulates health-related checks.
type Service struct {
	DB       Pinger
	Env      string
	Staffing string
	Timeout  time.Duration
}

// NewService constructs a new health service. db may be nil when running on
// in-memory repositories.
func NewService(db Pinger, env, staffingSource string) *Service {
	return &Service{DB: db, Env: env, Staffing: staffingSource, Timeout: 2 * time.Second}
}

// Status reports whether the service can reach its storage.
func (s *Service) Status(ctx context.Context) Status {
	st := Status{OK: true, Env: s.Env, Storage: "memory", Staffing: s.Staffing}
	if s.DB == nil {
		return st
	}
	st.Storage = "postgres"
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := s.DB.PingContext(pingCtx); err != nil {
		st.OK = false
		st.Error = err.Error()
	}
	return st
}
