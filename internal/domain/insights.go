package domain

import (
	"fmt"
	"math"
)

// Projection multipliers. Fixed planning constants, not statistically
// fit to historical outcomes.
const (
	optimisticMultiplier   = 1.15
	realisticMultiplier    = 0.95
	conservativeMultiplier = 0.80
)

const (
	minConfidence = 0.40
	maxConfidence = 0.95
)

// Coverage below this ratio is flagged as a delivery risk.
const lowCoverageThreshold = 0.7

// SummarizeInsights derives a confidence score, delivery projections,
// and operator guidance from an allocation's coverage of the goal.
// hadCandidates reports whether any playlists were considered at all.
func SummarizeInsights(allocations []AllocationItem, goal int64, hadCandidates bool) LearningInsights {
	var total int64
	for _, item := range allocations {
		total += item.Allocation
	}

	coverage := 0.0
	if goal > 0 {
		coverage = float64(total) / float64(goal)
	}

	// Confidence rises with coverage but stays bounded away from 0
	// and 1 to avoid false certainty.
	confidence := 0.6 + (coverage-0.5)*0.5
	if confidence < minConfidence {
		confidence = minConfidence
	}
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	insights := LearningInsights{
		ConfidenceScore:     confidence,
		OptimisticStreams:   int64(math.Round(float64(total) * optimisticMultiplier)),
		RealisticStreams:    int64(math.Round(float64(total) * realisticMultiplier)),
		ConservativeStreams: int64(math.Round(float64(total) * conservativeMultiplier)),
	}

	if coverage < 1 {
		insights.Recommendations = append(insights.Recommendations,
			"raise vendor capacity ceilings to close the allocation gap",
			"extend the campaign duration so playlists can deliver more volume",
			"add genre-adjacent playlists to widen the candidate pool",
		)
	} else {
		insights.Recommendations = append(insights.Recommendations,
			"allocation covers the full stream goal; proceed with this plan")
	}

	if coverage < lowCoverageThreshold {
		insights.RiskFactors = append(insights.RiskFactors,
			fmt.Sprintf("only %.0f%% of the stream goal could be allocated", coverage*100))
	}
	if !hadCandidates {
		insights.RiskFactors = append(insights.RiskFactors,
			"no playlists match the campaign genre profile")
	}
	return insights
}
