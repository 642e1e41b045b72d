package samples

import "github.com/landesfeind/procrec/src/types"

// Summary condenses a sample sequence.
type Summary struct {
	Count    int
	Duration float64
	MaxCPU   float64
	MeanCPU  float64
	MaxRSS   uint64
	MeanRSS  float64
}

// Summarize scans data once. Duration is the largest timestamp; the sequence need not be
// sorted.
func Summarize(data []types.Sample) Summary {
	sum := Summary{Count: len(data)}
	if len(data) == 0 {
		return sum
	}
	var cpuTotal, rssTotal float64
	for _, s := range data {
		if s.TS > sum.Duration {
			sum.Duration = s.TS
		}
		if s.CPU > sum.MaxCPU {
			sum.MaxCPU = s.CPU
		}
		if s.RSS > sum.MaxRSS {
			sum.MaxRSS = s.RSS
		}
		cpuTotal += s.CPU
		rssTotal += float64(s.RSS)
	}
	sum.MeanCPU = cpuTotal / float64(len(data))
	sum.MeanRSS = rssTotal / float64(len(data))
	return sum
}
