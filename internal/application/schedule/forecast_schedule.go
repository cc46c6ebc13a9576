package schedule

import (
	"context"
	"sync"
	"time"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/usecase/location"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	DefaultRefreshCron        = "@every 10m"
	defaultRefreshConcurrency = 4
	defaultRefreshTimeout     = 2 * time.Minute
)

// ForecastSchedulerConfig holds configuration for the forecast refresh
type ForecastSchedulerConfig struct {
	CronExpression string
	Concurrency    int
	Timeout        time.Duration
}

// RefreshSummary counts the outcome of one refresh run
type RefreshSummary struct {
	RequestID string
	Total     int
	Refreshed int
	Failed    int
}

// ForecastScheduler periodically refetches every saved location past the cache, so later reads see fresh forecasts
type ForecastScheduler struct {
	cron            *cron.Cron
	weatherUseCase  weather.UseCase
	locationUseCase location.UseCase
	config          ForecastSchedulerConfig
}

func NewForecastScheduler(weatherUseCase weather.UseCase, locationUseCase location.UseCase, config ForecastSchedulerConfig) *ForecastScheduler {
	if config.CronExpression == "" {
		config.CronExpression = DefaultRefreshCron
	}
	if config.Concurrency <= 0 {
		config.Concurrency = defaultRefreshConcurrency
	}
	if config.Timeout <= 0 {
		config.Timeout = defaultRefreshTimeout
	}

	return &ForecastScheduler{
		cron:            cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		weatherUseCase:  weatherUseCase,
		locationUseCase: locationUseCase,
		config:          config,
	}
}

// InitForecastScheduleTasks registers the refresh job and starts the cron
func (s *ForecastScheduler) InitForecastScheduleTasks() error {
	_, err := s.cron.AddFunc(s.config.CronExpression, s.ExecuteScheduledTask)
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Infof("Forecast refresh scheduler started with cron expression: %s", s.config.CronExpression)
	return nil
}

// ExecuteScheduledTask runs one refresh bounded by the configured timeout
func (s *ForecastScheduler) ExecuteScheduledTask() {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Timeout)
	defer cancel()

	s.RefreshAll(ctx)
}

// RefreshAll builds one independent report per saved location. A failing location is logged and skipped.
func (s *ForecastScheduler) RefreshAll(ctx context.Context) RefreshSummary {
	summary := RefreshSummary{RequestID: uuid.New().String()}
	log.Info(msg.GetMessage("schedule.refresh.start"), zap.String("request_id", summary.RequestID))

	locations, err := s.locationUseCase.FindAll(ctx)
	if err != nil {
		log.Error(msg.GetMessage("schedule.refresh.failed"), zap.String("request_id", summary.RequestID), zap.Error(err))
		return summary
	}
	summary.Total = len(locations)

	var wg sync.WaitGroup
	var mu sync.Mutex
	slots := make(chan struct{}, s.config.Concurrency)

	for _, saved := range locations {
		wg.Add(1)
		go func(saved entity.SavedLocation) {
			defer wg.Done()

			slots <- struct{}{}
			defer func() { <-slots }()

			report, err := s.weatherUseCase.RefreshReport(ctx, saved.Name, saved.Coordinates())

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				summary.Failed++
				log.Warn("Failed to refresh location forecast",
					zap.String("request_id", summary.RequestID),
					zap.String("location_id", saved.ID),
					zap.String("location", saved.Name),
					zap.Error(err))
				return
			}

			summary.Refreshed++
			log.Debug("Location forecast refreshed",
				zap.String("request_id", summary.RequestID),
				zap.String("location", saved.Name),
				zap.Int("temperature", report.Forecast.Current.Temperature),
				zap.String("condition", report.Forecast.Current.Condition))
		}(saved)
	}
	wg.Wait()

	log.Info(msg.GetMessage("schedule.refresh.end"),
		zap.String("request_id", summary.RequestID),
		zap.Int("total", summary.Total),
		zap.Int("refreshed", summary.Refreshed),
		zap.Int("failed", summary.Failed))
	return summary
}

// Stop gracefully stops the scheduler
func (s *ForecastScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}
