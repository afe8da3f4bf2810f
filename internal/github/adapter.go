package github

import (
	"fmt"
	"strconv"
	"time"

	"github.com/portfolio-hub/portfolio-backend/internal/projects/domain"
)

// FallbackDescription substitutes for repositories with no description.
const FallbackDescription = "No description provided."

// MapRepos converts repository summaries into portfolio projects. The mapping
// is total and deterministic for a given import time: absent optional fields
// fall back to documented defaults instead of failing, imported repos are
// always active/medium/100% with a team of one, and the star/fork tags are
// only emitted for non-zero counts.
func MapRepos(repos []Repo, importedAt time.Time) []domain.Project {
	projects := make([]domain.Project, 0, len(repos))
	for _, r := range repos {
		projects = append(projects, MapRepo(r, importedAt))
	}
	return projects
}

// MapRepo converts a single repository summary.
func MapRepo(r Repo, importedAt time.Time) domain.Project {
	description := FallbackDescription
	if r.Description != nil {
		description = *r.Description
	}

	tags := []string{}
	if r.Language != nil && *r.Language != "" {
		tags = append(tags, *r.Language)
	}
	if r.Stars > 0 {
		tags = append(tags, fmt.Sprintf("⭐ %d", r.Stars))
	}
	if r.Forks > 0 {
		tags = append(tags, fmt.Sprintf("🍴 %d", r.Forks))
	}

	return domain.Project{
		ID:          strconv.FormatInt(r.ID, 10),
		Title:       r.Name,
		Description: description,
		Status:      domain.StatusActive,
		Priority:    domain.PriorityMedium,
		Tags:        tags,
		Progress:    100,
		StartDate:   importedAt,
		TeamSize:    1,
		URL:         r.URL,
	}
}
