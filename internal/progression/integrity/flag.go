package integrity

import (
	"time"

	"github.com/google/uuid"
)

// Severity of a validation result / integrity flag.
// Ordered: low < medium < high.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func (s Severity) String() string {
	return string(s)
}

func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	default:
		return false
	}
}

func (s Severity) weight() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// AtLeast escalates s to other if other is more severe. It never downgrades.
func (s Severity) AtLeast(other Severity) Severity {
	if other.weight() > s.weight() {
		return other
	}
	return s
}

// Status of an integrity flag. A flag starts pending and is reviewed exactly once.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCleared   Status = "cleared"
	StatusConfirmed Status = "confirmed"
)

func (s Status) String() string {
	return string(s)
}

// IsReviewOutcome reports whether s is a valid target of a moderation review.
func (s Status) IsReviewOutcome() bool {
	return s == StatusCleared || s == StatusConfirmed
}

// Flag is a persisted record of a workout that tripped one or more checks.
type Flag struct {
	ID          uuid.UUID      `json:"id"`
	UserID      uuid.UUID      `json:"userId"`
	FlagType    string         `json:"flagType"`
	Severity    Severity       `json:"severity"`
	Status      Status         `json:"status"`
	Details     map[string]any `json:"details"`
	FlaggedAt   time.Time      `json:"flaggedAt"`
	ReviewedBy  *uuid.UUID     `json:"reviewedBy,omitempty"`
	ReviewedAt  *time.Time     `json:"reviewedAt,omitempty"`
	ReviewNotes *string        `json:"reviewNotes,omitempty"`
}
