package analytics

// SampleTrend returns a canned series for the given metric so a freshly
// seeded deployment can render non-empty charts. Served only when demo data
// is enabled and the genuine series is entirely zero.
func SampleTrend(metric string) []TrendPoint {
	switch metric {
	case MetricAttendance:
		return []TrendPoint{
			{Label: "2026-W05", Value: 91.2},
			{Label: "2026-W06", Value: 93.8},
			{Label: "2026-W07", Value: 89.5},
			{Label: "2026-W08", Value: 94.1},
			{Label: "2026-W09", Value: 92.7},
			{Label: "2026-W10", Value: 95.0},
		}
	case MetricGrades:
		return []TrendPoint{
			{Label: "2025-10", Value: 71.4},
			{Label: "2025-11", Value: 73.9},
			{Label: "2025-12", Value: 72.6},
			{Label: "2026-01", Value: 75.2},
			{Label: "2026-02", Value: 77.8},
			{Label: "2026-03", Value: 76.5},
		}
	case MetricFees:
		return []TrendPoint{
			{Label: "2025-10", Value: 1250000},
			{Label: "2025-11", Value: 980000},
			{Label: "2025-12", Value: 1430000},
			{Label: "2026-01", Value: 1675000},
			{Label: "2026-02", Value: 1120000},
			{Label: "2026-03", Value: 1540000},
		}
	default:
		return nil
	}
}

// AllZero reports whether every point in a series has a zero value, the
// signal that the demo fallback may substitute.
func AllZero(points []TrendPoint) bool {
	for _, p := range points {
		if p.Value != 0 {
			return false
		}
	}
	return true
}
