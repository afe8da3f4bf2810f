package refresh

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-hub/portfolio-backend/internal/github"
	"github.com/portfolio-hub/portfolio-backend/internal/notify"
	"github.com/portfolio-hub/portfolio-backend/internal/projects/service"
)

type countingLister struct {
	calls atomic.Int64
	err   error
}

func (c *countingLister) ListUserRepos(ctx context.Context, username string) ([]github.Repo, error) {
	c.calls.Add(1)
	if c.err != nil {
		return nil, c.err
	}
	return []github.Repo{{ID: 1, Name: "one"}}, nil
}

func TestScheduler_RejectsInvalidSpec(t *testing.T) {
	toasts := notify.NewStore()
	defer toasts.Close()

	s := NewScheduler(service.NewCatalog("octocat", time.Minute, &countingLister{}, nil), toasts)
	err := s.Start("not a cron spec")
	assert.Error(t, err)
}

func TestScheduler_RunsRefreshOnSchedule(t *testing.T) {
	toasts := notify.NewStore()
	defer toasts.Close()

	lister := &countingLister{}
	s := NewScheduler(service.NewCatalog("octocat", time.Minute, lister, nil), toasts)

	require.NoError(t, s.Start("* * * * * *"))
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return lister.calls.Load() >= 1
	}, 3*time.Second, 50*time.Millisecond)
	assert.Empty(t, toasts.List())
}

func TestScheduler_FailureSurfacesToast(t *testing.T) {
	toasts := notify.NewStore()
	defer toasts.Close()

	lister := &countingLister{err: errors.New("upstream down")}
	s := NewScheduler(service.NewCatalog("octocat", time.Minute, lister, nil), toasts)

	require.NoError(t, s.Start("* * * * * *"))
	defer s.Stop()

	assert.Eventually(t, func() bool {
		for _, n := range toasts.List() {
			if n.Kind == notify.KindError && n.Message == "Failed to load GitHub projects" {
				return true
			}
		}
		return false
	}, 3*time.Second, 50*time.Millisecond)
}
