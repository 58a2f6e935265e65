package dto

import "github.com/opsdesk-inc/opsdesk/internal/domain/printlog"

// LogResult reports how many cards a print run recorded.
type LogResult struct {
	Count int `json:"count"`
}

type ToolPrintDTO struct {
	ID uint `json:"id"`
}

type MonthlyStatsDTO struct {
	Month     string `json:"month"`
	Pregnancy int64  `json:"pregnancy"`
	HasBaby   int64  `json:"has_baby"`
	Normal    int64  `json:"normal"`
	Tools     int64  `json:"tools"`
	Total     int64  `json:"total"`
}

func ToMonthlyStatsDTOs(stats []printlog.MonthlyStats) []MonthlyStatsDTO {
	out := make([]MonthlyStatsDTO, 0, len(stats))
	for _, s := range stats {
		out = append(out, MonthlyStatsDTO{
			Month:     s.Month,
			Pregnancy: s.Pregnancy,
			HasBaby:   s.HasBaby,
			Normal:    s.Normal,
			Tools:     s.Tools,
			Total:     s.Total,
		})
	}
	return out
}
