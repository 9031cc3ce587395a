package models

// TodayStatsResponse сводка приборной панели за сегодняшний день
type TodayStatsResponse struct {
	Date                 string  `json:"date"` // "2026-03-12"
	Appointments         int     `json:"appointments"`
	UniqueClients        int     `json:"uniqueClients"`
	Revenue              float64 `json:"revenue"`
	RevenueGrowthPercent float64 `json:"revenueGrowthPercent"` // Относительно вчерашнего дня
}
