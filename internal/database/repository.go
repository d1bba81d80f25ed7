package database

import (
	"time"

	"github.com/actionsum/xdotool/internal/models"

	"github.com/pkg/errors"

	"gorm.io/gorm"
)

// Repository handles all journal database operations
type Repository struct {
	db *DB
}

// NewRepository creates a new repository instance
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new invocation into the journal
func (r *Repository) Create(inv *models.Invocation) error {
	result := r.db.Create(inv)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to insert invocation")
	}
	return nil
}

// GetSince retrieves all invocations since a given time, oldest first
func (r *Repository) GetSince(since time.Time) ([]*models.Invocation, error) {
	var invocations []*models.Invocation
	result := r.db.Where("timestamp >= ?", since).Order("timestamp ASC").Find(&invocations)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to query invocations")
	}

	return invocations, nil
}

// GetSummarySince aggregates invocations per subcommand since a given time.
// Derived fields (mean, success rate) are left to the caller.
func (r *Repository) GetSummarySince(since time.Time) ([]models.SubcommandSummary, error) {
	var summaries []models.SubcommandSummary

	result := r.db.Model(&models.Invocation{}).
		Select("subcommand, COUNT(*) as calls, " +
			"SUM(CASE WHEN exit_code <> 0 THEN 1 ELSE 0 END) as failures, " +
			"SUM(duration_ms) as total_ms").
		Where("timestamp >= ?", since).
		Group("subcommand").
		Order("calls DESC, subcommand ASC").
		Scan(&summaries)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to query invocation summary")
	}

	return summaries, nil
}

// GetLatest retrieves the most recent invocation, or nil if there is none
func (r *Repository) GetLatest() (*models.Invocation, error) {
	var inv models.Invocation
	result := r.db.Order("timestamp DESC").First(&inv)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(result.Error, "failed to get latest invocation")
	}
	return &inv, nil
}

// DeleteOlderThan permanently removes invocations and error logs before a date
func (r *Repository) DeleteOlderThan(before time.Time) (int64, error) {
	result := r.db.Unscoped().Where("timestamp < ?", before).Delete(&models.Invocation{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete old invocations")
	}

	if err := r.db.Unscoped().Where("timestamp < ?", before).Delete(&models.ErrorLog{}).Error; err != nil {
		return result.RowsAffected, errors.Wrap(err, "failed to delete old error logs")
	}

	return result.RowsAffected, nil
}

// CreateErrorLog inserts a new error log into the database
func (r *Repository) CreateErrorLog(errorLog *models.ErrorLog) error {
	result := r.db.Create(errorLog)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to insert error log")
	}
	return nil
}

// CountErrorLogsSince counts spawn failures since a given time
func (r *Repository) CountErrorLogsSince(since time.Time) (int64, error) {
	var count int64
	result := r.db.Model(&models.ErrorLog{}).Where("timestamp >= ?", since).Count(&count)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to count error logs")
	}
	return count, nil
}

// Clear removes all invocations and error logs from the database
func (r *Repository) Clear() error {
	if result := r.db.Exec("DELETE FROM invocations"); result.Error != nil {
		return errors.Wrap(result.Error, "failed to clear invocations")
	}
	if result := r.db.Exec("DELETE FROM error_logs"); result.Error != nil {
		return errors.Wrap(result.Error, "failed to clear error logs")
	}
	return nil
}
