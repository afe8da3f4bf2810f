package projects

import (
	"time"

	"github.com/portfolio-hub/portfolio-backend/internal/projects/domain"
)

// Fixtures returns the built-in demo catalog, used when no GitHub account is
// configured. The slice is rebuilt on every call so callers can't mutate the
// shared set.
func Fixtures() []domain.Project {
	endQ1 := time.Date(2024, 3, 28, 0, 0, 0, 0, time.UTC)
	budgetDash := 12000.0

	return []domain.Project{
		{
			ID:          "fx-1",
			Title:       "Analytics Dashboard",
			Description: "Realtime metrics dashboard with configurable widgets.",
			Status:      domain.StatusActive,
			Priority:    domain.PriorityHigh,
			Tags:        []string{"TypeScript", "charts"},
			Progress:    65,
			StartDate:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			TeamSize:    3,
			Budget:      &budgetDash,
		},
		{
			ID:          "fx-2",
			Title:       "Billing Service",
			Description: "Invoice generation and payment reconciliation backend.",
			Status:      domain.StatusCompleted,
			Priority:    domain.PriorityMedium,
			Tags:        []string{"Go", "payments"},
			Progress:    100,
			StartDate:   time.Date(2023, 11, 2, 0, 0, 0, 0, time.UTC),
			EndDate:     &endQ1,
			TeamSize:    2,
		},
		{
			ID:          "fx-3",
			Title:       "Legacy CMS Migration",
			Description: "Content migration tooling for the retired CMS.",
			Status:      domain.StatusArchived,
			Priority:    domain.PriorityLow,
			Tags:        []string{"Python", "migration"},
			Progress:    100,
			StartDate:   time.Date(2023, 5, 20, 0, 0, 0, 0, time.UTC),
			TeamSize:    1,
		},
		{
			ID:          "fx-4",
			Title:       "Mobile Companion App",
			Description: "iOS/Android companion for the main product.",
			Status:      domain.StatusActive,
			Priority:    domain.PriorityMedium,
			Tags:        []string{"Flutter"},
			Progress:    30,
			StartDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			TeamSize:    4,
		},
	}
}
