package scheduler

import (
	"context"
	"fmt"
	"time"

	"standup-bot/internal/logger"
	"standup-bot/internal/standup"

	"github.com/robfig/cron/v3"
)

// Scheduler fires the two daily triggers: opening the standup thread in the
// morning and chasing missing reports before the sync.
type Scheduler struct {
	cronEngine       *cron.Cron
	service          *standup.Service
	cronOpenThread   string
	cronChaseReports string
}

func New(service *standup.Service, cronOpenThread, cronChaseReports string) *Scheduler {
	return &Scheduler{
		cronEngine:       cron.New(cron.WithLocation(time.Local)),
		service:          service,
		cronOpenThread:   cronOpenThread,
		cronChaseReports: cronChaseReports,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cronEngine.AddFunc(s.cronOpenThread, func() {
		logger.Log.Info("Cron trigger: open daily thread")
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if _, err := s.service.OpenDailyThread(ctx); err != nil {
			logger.Log.WithError(err).Error("Opening daily thread failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to add open-thread cron job: %w", err)
	}

	_, err = s.cronEngine.AddFunc(s.cronChaseReports, func() {
		logger.Log.Info("Cron trigger: chase missing reports")
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := s.service.NotifyMissing(ctx); err != nil {
			logger.Log.WithError(err).Error("Chasing missing reports failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to add chase-reports cron job: %w", err)
	}

	s.cronEngine.Start()
	logger.Log.Info("Scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cronEngine.Stop()
	<-ctx.Done()
	logger.Log.Info("Scheduler stopped")
}
