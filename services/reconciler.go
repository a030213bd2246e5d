package services

import (
	cron "github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"salon-backend/storage"
)

// Reconciler periodically re-runs identity resolution for bookings whose
// customer link was lost to a partial failure (booking inserted, link
// write never landed). The two-step create remains non-transactional;
// this job is what keeps the unlinked window temporary.
type Reconciler struct {
	store storage.Storage
	log   *zap.Logger
	cron  *cron.Cron
	spec  string
}

func NewReconciler(store storage.Storage, log *zap.Logger, spec string) *Reconciler {
	return &Reconciler{
		store: store,
		log:   log,
		cron:  cron.New(),
		spec:  spec,
	}
}

// Start schedules the reconciliation pass. The cron spec comes from
// configuration (default every 10 minutes).
func (r *Reconciler) Start() error {
	if _, err := r.cron.AddFunc(r.spec, r.Run); err != nil {
		return err
	}
	r.cron.Start()
	return nil
}

func (r *Reconciler) Stop() {
	r.cron.Stop()
}

// Run links every unlinked booking it can. Idempotent: already-linked
// bookings are no longer returned by the store, and re-resolving the same
// phone reuses the same customer.
func (r *Reconciler) Run() {
	unlinked, err := r.store.GetUnlinkedBookings()
	if err != nil {
		r.log.Error("reconcile: listing unlinked bookings failed", zap.Error(err))
		return
	}
	if len(unlinked) == 0 {
		return
	}

	relinked := 0
	for i := range unlinked {
		b := ResolveBookingCustomer(r.store, &unlinked[i], r.log)
		if b.CustomerID != nil {
			relinked++
		}
	}
	r.log.Info("reconcile pass finished",
		zap.Int("unlinked", len(unlinked)), zap.Int("relinked", relinked))
}
