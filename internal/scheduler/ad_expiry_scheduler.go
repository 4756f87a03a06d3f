package scheduler

import (
	"time"

	"github.com/franchisehub/franchisehub-backend/internal/app/service"
	"github.com/franchisehub/franchisehub-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// AdExpiryScheduler deactivates advertisements whose campaign window has
// ended. Runs once a day; the expiry sweep is idempotent so missed or
// repeated runs are harmless.
type AdExpiryScheduler struct {
	cron      *cron.Cron
	adService service.AdvertisementService
}

func NewAdExpiryScheduler(adService service.AdvertisementService) *AdExpiryScheduler {
	return &AdExpiryScheduler{
		cron:      cron.New(),
		adService: adService,
	}
}

// Start registers the daily sweep (midnight) and runs one immediately so a
// restart never leaves expired ads visible until the next tick.
func (s *AdExpiryScheduler) Start() error {
	_, err := s.cron.AddFunc("0 0 * * *", s.sweep)
	if err != nil {
		logger.Error("Failed to add cron job for ad expiry", err)
		return err
	}

	s.cron.Start()
	logger.Info("Ad expiry scheduler started (daily at midnight)", nil)

	go s.sweep()

	return nil
}

func (s *AdExpiryScheduler) sweep() {
	logger.Info("Starting ad expiry sweep", nil)

	deactivated, err := s.adService.ExpireCampaigns(time.Now())
	if err != nil {
		logger.Error("Ad expiry sweep failed", err)
		return
	}

	logger.Info("Ad expiry sweep finished", map[string]interface{}{
		"deactivated": deactivated,
	})
}

func (s *AdExpiryScheduler) Stop() {
	logger.Info("Stopping ad expiry scheduler...", nil)
	s.cron.Stop()
	logger.Info("Ad expiry scheduler stopped", nil)
}
