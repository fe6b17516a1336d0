// Package relevance combines a candidate's string-similarity score and
// its corpus frequency into the single ranking number the rest of the
// engine sorts on.
package relevance

// Weights scales the three components of the relevance formula. The
// zero value is not useful; use DefaultWeights.
type Weights struct {
	StrWeight   float64
	FreqWeight  float64
	TotalWeight float64
}

// DefaultWeights weighs string relevance, frequency, and the combined
// total equally.
func DefaultWeights() Weights {
	return Weights{StrWeight: 1, FreqWeight: 1, TotalWeight: 1}
}

// Calc computes relevance scores given a fixed set of Weights.
type Calc struct {
	weights Weights
}

// NewCalc builds a Calc from the given weights.
func NewCalc(weights Weights) Calc {
	return Calc{weights: weights}
}

// WithTotalWeight returns a copy of c with TotalWeight overridden; used
// by extensions that need to dampen or boost an entire result set
// relative to the primary predictions.
func (c Calc) WithTotalWeight(totalWeight float64) Calc {
	c.weights.TotalWeight = totalWeight
	return c
}

// Calc combines strRel (0-1000, from a string similarity metric) and
// frequency (0-1, the item's corpus share) into a single u16 relevance
// score. Frequency is scaled up by 1e6 before weighting so that even
// rare-but-present words clear the "has frequency info" floor of 1.
func (c Calc) Calc(frequency float64, strRel uint16) uint16 {
	srel := min(float64(strRel)*c.weights.StrWeight, 1000.0)

	frel := min(frequency*1_000_000.0*c.weights.FreqWeight, 1000.0)
	if frel > 0 && frel < 1 {
		frel = 1
	}

	total := (srel + frel + 1.0) * c.weights.TotalWeight
	return uint16(total * 10.0)
}
