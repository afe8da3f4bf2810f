package query

import (
	"sort"
	"strings"

	"github.com/portfolio-hub/portfolio-backend/internal/projects/domain"
)

// Sort keys
const (
	SortRecent   = "recent"
	SortProgress = "progress"
	SortTitle    = "title"
)

// Criteria parameterizes a derived project view. Zero values mean "match all"
// for the filters and "recent" for the sort.
type Criteria struct {
	Query    string
	Status   string
	Priority string
	Sort     string
}

// DeriveView filters and sorts projects according to the criteria. It is a
// pure function: the input slice is never mutated and the result is a fresh
// slice on every call, so it is safe to invoke on every keystroke.
//
// Active filters are ANDed. The text filter is a case-insensitive substring
// match against title, description or any tag. Sorting is stable and applied
// after filtering; the default sort is most-recent start date first.
func DeriveView(projects []domain.Project, c Criteria) []domain.Project {
	out := make([]domain.Project, 0, len(projects))

	q := strings.ToLower(c.Query)
	for _, p := range projects {
		if q != "" && !matchesText(p, q) {
			continue
		}
		if c.Status != "" && p.Status != c.Status {
			continue
		}
		if c.Priority != "" && p.Priority != c.Priority {
			continue
		}
		out = append(out, p)
	}

	switch c.Sort {
	case SortProgress:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Progress > out[j].Progress
		})
	case SortTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Title < out[j].Title
		})
	case SortRecent:
		fallthrough
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].StartDate.After(out[j].StartDate)
		})
	}

	return out
}

func matchesText(p domain.Project, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// ValidSort reports whether s is a known sort key.
func ValidSort(s string) bool {
	switch s {
	case SortRecent, SortProgress, SortTitle:
		return true
	}
	return false
}
