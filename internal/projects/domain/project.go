package domain

import "time"

// Project is a single portfolio entry, either a built-in fixture or a record
// mapped from an external GitHub repository. Projects are immutable once
// loaded; the catalog replaces the whole set on refresh.
type Project struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`   // active, completed, archived
	Priority    string     `json:"priority"` // low, medium, high
	Tags        []string   `json:"tags"`
	Progress    int        `json:"progress"` // 0-100
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	TeamSize    int        `json:"teamSize"`
	Budget      *float64   `json:"budget,omitempty"`
	Image       string     `json:"image,omitempty"`
	URL         string     `json:"url,omitempty"`
}

// Status constants
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusArchived  = "archived"
)

// Priority constants
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ValidStatus reports whether s is one of the known project statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// ValidPriority reports whether p is one of the known project priorities.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
