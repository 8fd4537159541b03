package types

import (
	"time"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
	LogLevelFatal LogLevel = "FATAL"
)

func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError, LogLevelFatal:
		return true
	}
	return false
}

// LogRecord is a single observed event from a producer. The ID is assigned
// by the store when the record is persisted. IncidentID is set at most once,
// when the detection engine attributes the record to an incident.
type LogRecord struct {
	ID         int64          `json:"id,omitempty"`
	ServiceID  string         `json:"serviceID"`
	Timestamp  time.Time      `json:"timestamp"`
	Level      LogLevel       `json:"level"`
	Message    string         `json:"message"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	IncidentID *string        `json:"incidentID,omitempty"`
}

type IncidentSeverity string

const (
	IncidentSeverityLow      IncidentSeverity = "LOW"
	IncidentSeverityMedium   IncidentSeverity = "MEDIUM"
	IncidentSeverityHigh     IncidentSeverity = "HIGH"
	IncidentSeverityCritical IncidentSeverity = "CRITICAL"
)

func (s IncidentSeverity) IsValid() bool {
	switch s {
	case IncidentSeverityLow, IncidentSeverityMedium, IncidentSeverityHigh, IncidentSeverityCritical:
		return true
	}
	return false
}

type IncidentStatus string

const (
	IncidentStatusOpen         IncidentStatus = "OPEN"
	IncidentStatusAcknowledged IncidentStatus = "ACKNOWLEDGED"
	IncidentStatusResolved     IncidentStatus = "RESOLVED"
)

func (s IncidentStatus) IsValid() bool {
	switch s {
	case IncidentStatusOpen, IncidentStatusAcknowledged, IncidentStatusResolved:
		return true
	}
	return false
}

// CanTransitionTo reports whether a status change is allowed. Transitions only
// move forward: OPEN -> ACKNOWLEDGED -> RESOLVED, with OPEN -> RESOLVED as a
// shortcut.
func (s IncidentStatus) CanTransitionTo(next IncidentStatus) bool {
	switch s {
	case IncidentStatusOpen:
		return next == IncidentStatusAcknowledged || next == IncidentStatusResolved
	case IncidentStatusAcknowledged:
		return next == IncidentStatusResolved
	}
	return false
}

type Incident struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	Severity   IncidentSeverity `json:"severity"`
	Status     IncidentStatus   `json:"status"`
	CreatedAt  time.Time        `json:"createdAt"`
	ResolvedAt *time.Time       `json:"resolvedAt,omitempty"`
}

// Lease is a time-bounded exclusive claim on a named resource. At most one
// live row exists per lock id; a row whose expiry has passed may be reclaimed
// by any instance.
type Lease struct {
	LockID      string    `json:"lockID"`
	HolderToken string    `json:"holderToken"`
	AcquiredAt  time.Time `json:"acquiredAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// BaselineBucket is a per-minute aggregate of ERROR records, used to build
// the statistical reference distribution for a detection pass.
type BaselineBucket struct {
	Bucket time.Time `json:"bucket"`
	Count  int64     `json:"count"`
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}
