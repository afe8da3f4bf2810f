package refresh

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/portfolio-hub/portfolio-backend/internal/notify"
	"github.com/portfolio-hub/portfolio-backend/internal/projects/service"
)

// refreshTimeout bounds one background catalog refresh.
const refreshTimeout = 30 * time.Second

// Scheduler re-fetches the GitHub catalog on a cron spec so the cache stays
// warm between user requests. Failures are logged and surfaced as a toast;
// the previous cached set stays in place.
type Scheduler struct {
	catalog *service.Catalog
	toasts  *notify.Store
	cron    *cron.Cron
}

func NewScheduler(catalog *service.Catalog, toasts *notify.Store) *Scheduler {
	return &Scheduler{
		catalog: catalog,
		toasts:  toasts,
		cron:    cron.New(cron.WithSeconds()),
	}
}

// Start registers the refresh job under the given cron spec (seconds field
// included) and starts the scheduler.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.runRefresh); err != nil {
		log.Printf("Failed to create refresh job: %v", err)
		return err
	}

	log.Printf("Catalog refresh scheduler started (spec %q)", spec)
	s.cron.Start()
	return nil
}

// Stop halts the scheduler; running jobs finish.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) runRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	items, err := s.catalog.Refresh(ctx)
	if err != nil {
		log.Printf("Catalog refresh failed: %v", err)
		s.toasts.Add(notify.KindError, "Failed to load GitHub projects")
		return
	}

	log.Printf("Catalog refresh completed, %d projects at %s", len(items), time.Now().Format(time.RFC1123))
}
