package service

import (
	"database/sql"
	"fmt"

	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/database"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/model"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{
		db: db,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion returns the application version and the snapshot database
// schema version.
func (s *SystemService) CheckVersion() (model.VersionInfo, error) {
	dbVersion, err := database.Version(s.db)
	if err != nil {
		return model.VersionInfo{}, fmt.Errorf("failed to read database version: %w", err)
	}

	return model.VersionInfo{
		AppVersion:      version.Version,
		DbVersion:       fmt.Sprintf("%d", dbVersion),
		MigrationNeeded: dbVersion == 0,
	}, nil
}
