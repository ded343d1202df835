package main

// Metric accumulates a count and a sum of samples.
type Metric struct {
	Count int
	Sum   float64
}

func (m *Metric) Add(v float64) {
	m.Count++
	m.Sum += v
}

// Avg is 0 for an empty metric.
func (m *Metric) Avg() float64 {
	if m.Count == 0 {
		return 0
	}
	return m.Sum / float64(m.Count)
}

// ByClass holds one value per sign class.
type ByClass[T int | float64] struct {
	Positive T
	Negative T
	Overall  T
}

type Summary struct {
	Sums     ByClass[float64]
	Counts   ByClass[int]
	Averages ByClass[float64]
}

// Aggregate partitions samples by sign. Zero counts as positive.
func Aggregate(samples []float64) Summary {
	var pos, neg, all Metric
	for _, v := range samples {
		if v >= 0.0 {
			pos.Add(v)
		} else {
			neg.Add(v)
		}
		all.Add(v)
	}
	return Summary{
		Sums:     ByClass[float64]{Positive: pos.Sum, Negative: neg.Sum, Overall: all.Sum},
		Counts:   ByClass[int]{Positive: pos.Count, Negative: neg.Count, Overall: all.Count},
		Averages: ByClass[float64]{Positive: pos.Avg(), Negative: neg.Avg(), Overall: all.Avg()},
	}
}
