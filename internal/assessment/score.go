package assessment

import "math"

// CalculateScore aggregates responses into a single score in [0, 100] as a
// weight-normalized mean of per-question normalized values. Responses whose
// QuestionID matches no supplied question are skipped; a nil Value scores 0
// for its item but still counts the item's weight. Out-of-range values are
// clamped. When nothing contributes any weight the score is 0. The result is
// a pure function of its inputs and independent of response order.
func CalculateScore(responses []Response, questions []Question) int {
	index := make(map[string]*Question, len(questions))
	for i := range questions {
		index[questions[i].ID] = &questions[i]
	}

	var totalScore, totalWeight float64
	for _, r := range responses {
		q, ok := index[r.QuestionID]
		if !ok {
			continue
		}
		maxValue := DefaultMaxValue
		if len(q.Options) > 0 {
			maxValue = len(q.Options) - 1
		}
		var normalized float64
		if r.Value != nil && maxValue > 0 {
			v := *r.Value
			if v < 0 {
				v = 0
			}
			if v > maxValue {
				v = maxValue
			}
			if q.Reversed {
				normalized = float64(maxValue-v) / float64(maxValue) * 100
			} else {
				normalized = float64(v) / float64(maxValue) * 100
			}
		}
		totalScore += normalized * q.Weight
		totalWeight += q.Weight
	}

	if totalWeight <= 0 {
		return 0
	}
	return int(math.Round(totalScore / totalWeight))
}
