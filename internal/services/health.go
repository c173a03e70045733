package services

import (
	"context"
	"fmt"
	"time"

	"github.com/opencatalog/metacat/internal/config"
	"github.com/opencatalog/metacat/internal/repository"
	"github.com/opencatalog/metacat/internal/utils"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthService reports whether the service and its metadata repository are
// usable.
type HealthService struct {
	cfg  *config.Config
	repo repository.Metadata
}

func NewHealthService(cfg *config.Config, repo repository.Metadata) *HealthService {
	return &HealthService{cfg: cfg, repo: repo}
}

// Check performs a health check of the service and its repository.
func (s *HealthService) Check(ctx context.Context) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	if err := s.repo.Ping(ctx); err != nil {
		result.Status = "unhealthy"
		result.Database = "unreachable"
		result.Details["database_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Repository ping failed: %v", err)
		// Separates a dead host from a host that refuses the application
		// (wrong credentials, missing schema). sqlite has no host to probe.
		if s.cfg.DBType != "sqlite" {
			if pingErr := utils.PingHost(s.cfg.DBHost, s.cfg.DBPort, 2*time.Second); pingErr != nil {
				result.Details["database_host"] = "unreachable"
			} else {
				result.Details["database_host"] = "reachable"
			}
		}
		return result
	}

	result.Database = "ok"
	result.Details["database_type"] = s.cfg.DBType
	result.Details["database_name"] = s.cfg.DBDatabase
	return result
}
