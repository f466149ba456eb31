package assessment

// CPTMetrics are signal-detection counts for a continuous performance run.
// Accuracy in the score map counts only correct detections; these metrics add
// the misses and false alarms the score leaves implicit.
type CPTMetrics struct {
	Presented     int
	Targets       int
	Hits          int
	Omissions     int
	Commissions   int
	CorrectReject int
}

// HitRate is hits over targets, or zero when no target was presented.
func (m CPTMetrics) HitRate() float64 {
	if m.Targets == 0 {
		return 0
	}
	return float64(m.Hits) / float64(m.Targets)
}

// ComputeCPTMetrics scores responses against the presented symbols.
func ComputeCPTMetrics(presented []string, target string, responses []CPTResponse) CPTMetrics {
	detected := make(map[int]bool, len(responses))
	for _, r := range responses {
		detected[r.Index] = true
	}

	m := CPTMetrics{Presented: len(presented)}
	for i, s := range presented {
		isTarget := s == target
		if isTarget {
			m.Targets++
		}
		switch {
		case isTarget && detected[i]:
			m.Hits++
		case isTarget:
			m.Omissions++
		case detected[i]:
			m.Commissions++
		default:
			m.CorrectReject++
		}
	}
	return m
}
