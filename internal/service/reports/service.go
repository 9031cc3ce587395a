package reports

import (
	"context"
	"fmt"

	"github.com/clickcy/clickbarber/internal/domain"
	"github.com/clickcy/clickbarber/internal/service/reports/models"
)

// Service сервис отчётности приборной панели
type Service struct {
	appointmentRepo AppointmentRepository
	saleRepo        SaleRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса отчётности
func NewService(
	appointmentRepo AppointmentRepository,
	saleRepo SaleRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		saleRepo:        saleRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// TodayStats собирает сводку за сегодня: записи, уникальные клиенты,
// выручка и её рост относительно вчерашнего дня
func (s *Service) TodayStats(ctx context.Context) (*models.TodayStatsResponse, error) {
	now := s.timeProvider.Now()
	s.logger.Info("TodayStats: building stats for %s", now.Format(domain.DateFormat))

	appointments, uniqueClients, err := s.appointmentRepo.DayStats(ctx, now)
	if err != nil {
		s.logger.Error("TodayStats: failed to get appointment stats: %v", err)
		return nil, fmt.Errorf("%w: TodayStats - repository error: %v", ErrInternal, err)
	}

	revenue, err := s.saleRepo.DayRevenue(ctx, now)
	if err != nil {
		s.logger.Error("TodayStats: failed to get today revenue: %v", err)
		return nil, fmt.Errorf("%w: TodayStats - repository error: %v", ErrInternal, err)
	}

	yesterdayRevenue, err := s.saleRepo.DayRevenue(ctx, now.AddDate(0, 0, -1))
	if err != nil {
		s.logger.Error("TodayStats: failed to get yesterday revenue: %v", err)
		return nil, fmt.Errorf("%w: TodayStats - repository error: %v", ErrInternal, err)
	}

	resp := &models.TodayStatsResponse{
		Date:                 now.Format(domain.DateFormat),
		Appointments:         appointments,
		UniqueClients:        uniqueClients,
		Revenue:              revenue,
		RevenueGrowthPercent: growthPercent(revenue, yesterdayRevenue),
	}

	s.logger.Info("TodayStats: appointments=%d, clients=%d, revenue=%.2f, growth=%.1f%%",
		resp.Appointments, resp.UniqueClients, resp.Revenue, resp.RevenueGrowthPercent)

	return resp, nil
}

// growthPercent считает рост выручки относительно предыдущего дня.
// При нулевой вчерашней выручке рост равен 100% если сегодня что-то продали,
// и 0% если оба дня пустые.
func growthPercent(today, yesterday float64) float64 {
	if yesterday == 0 {
		if today > 0 {
			return 100
		}
		return 0
	}
	return (today - yesterday) / yesterday * 100
}
