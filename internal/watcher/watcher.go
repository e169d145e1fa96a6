package watcher

import (
	"context"
	"log"
	"time"

	"github.com/jitendrapal/pathology-v1/internal/config"
	"github.com/jitendrapal/pathology-v1/internal/models"
)

// OverdueLister is the read the watcher needs from the bill store.
type OverdueLister interface {
	ListOverdue(ctx context.Context, asOf time.Time) ([]models.Bill, error)
}

// Watcher sweeps for bills past their due date with money still owed and
// logs them for the front desk. It never mutates bill state; status stays
// a pure function of the amounts.
type Watcher struct {
	cfg   *config.Config
	bills OverdueLister
}

func New(cfg *config.Config, bills OverdueLister) *Watcher {
	return &Watcher{
		cfg:   cfg,
		bills: bills,
	}
}

// Start begins the overdue sweep loop and blocks until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	log.Println("Starting overdue-bill watcher...")

	if err := w.sweep(ctx); err != nil {
		log.Printf("Warning: overdue sweep on startup failed: %v", err)
	}

	ticker := time.NewTicker(time.Duration(w.cfg.OverdueInterval) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Overdue-bill watcher shutting down...")
			return ctx.Err()
		case <-ticker.C:
			if err := w.sweep(ctx); err != nil {
				log.Printf("Error sweeping overdue bills: %v", err)
			}
		}
	}
}

func (w *Watcher) sweep(ctx context.Context) error {
	bills, err := w.bills.ListOverdue(ctx, time.Now())
	if err != nil {
		return err
	}
	if len(bills) == 0 {
		return nil
	}

	log.Printf("Found %d overdue bill(s)", len(bills))
	for _, bill := range bills {
		log.Printf("Overdue bill %s: patient %s owes %s (due %s)",
			bill.ID, bill.PatientID, bill.RemainingAmount, bill.DueDate.Format("2006-01-02"))
	}
	return nil
}
