package models

import (
	"time"

	"gorm.io/gorm"
)

// Invocation is one completed run of xdotool or xwd.
type Invocation struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Timestamp   time.Time      `gorm:"not null;index" json:"timestamp"`
	Tool        string         `gorm:"not null" json:"tool"`
	Subcommand  string         `gorm:"not null;index" json:"subcommand"`
	Line        string         `gorm:"not null" json:"line"`
	Display     uint32         `gorm:"not null" json:"display"`
	ExitCode    int            `gorm:"not null;default:0" json:"exit_code"`
	StdoutBytes int            `gorm:"not null;default:0" json:"stdout_bytes"`
	Stderr      string         `json:"stderr,omitempty"`
	DurationMs  int64          `gorm:"not null;default:0" json:"duration_ms"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

type SubcommandSummary struct {
	Subcommand  string  `json:"subcommand"`
	Calls       int64   `json:"calls"`
	Failures    int64   `json:"failures"`
	TotalMs     int64   `json:"total_ms"`
	MeanMs      float64 `json:"mean_ms"`
	SuccessRate float64 `json:"success_rate"`
}

type ReportPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Type  string    `json:"type"` // "day", "week", "month", "all"
}

type Report struct {
	Period        ReportPeriod        `json:"period"`
	Subcommands   []SubcommandSummary `json:"subcommands"`
	TotalCalls    int64               `json:"total_calls"`
	TotalFailures int64               `json:"total_failures"`
	TotalMs       int64               `json:"total_ms"`
	SpawnFailures int64               `json:"spawn_failures"`
	Last          *Invocation         `json:"last,omitempty"`
	GeneratedAt   time.Time           `json:"generated_at"`
}
