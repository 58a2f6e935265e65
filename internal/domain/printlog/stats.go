package printlog

import "sort"

// Reason keywords that split card prints into report buckets. Matching is
// case-insensitive substring; anything matching neither counts as normal.
const (
	KeywordPregnancy = "pregnancy"
	KeywordBaby      = "baby"
)

// CardMonth holds card print counts for one YYYY-MM month.
type CardMonth struct {
	Month     string
	Pregnancy int64
	HasBaby   int64
	Normal    int64
}

// ToolMonth holds the summed tool card quantity for one YYYY-MM month.
type ToolMonth struct {
	Month string
	Tools int64
}

// MonthlyStats is one row of the print report.
type MonthlyStats struct {
	Month     string
	Pregnancy int64
	HasBaby   int64
	Normal    int64
	Tools     int64
	Total     int64
}

// MergeMonths joins card and tool counts on month, ordered oldest first.
// A month present on only one side reports zero for the other.
func MergeMonths(cards []CardMonth, tools []ToolMonth) []MonthlyStats {
	byMonth := make(map[string]*MonthlyStats, len(cards)+len(tools))
	row := func(month string) *MonthlyStats {
		s, ok := byMonth[month]
		if !ok {
			s = &MonthlyStats{Month: month}
			byMonth[month] = s
		}
		return s
	}

	for _, c := range cards {
		s := row(c.Month)
		s.Pregnancy += c.Pregnancy
		s.HasBaby += c.HasBaby
		s.Normal += c.Normal
	}
	for _, t := range tools {
		row(t.Month).Tools += t.Tools
	}

	out := make([]MonthlyStats, 0, len(byMonth))
	for _, s := range byMonth {
		s.Total = s.Pregnancy + s.HasBaby + s.Normal + s.Tools
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}
