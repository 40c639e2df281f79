package domain

// Relevance weighting. Exact sub-genre fit dominates so creative fit
// beats raw reach in the allocation order.
const (
	exactMatchWeight = 0.55
	overlapWeight    = 0.25
	volumeWeight     = 0.20

	// Daily stream rate treated as full volume signal strength.
	maxVolumeSignal = 50000.0
)

// RelevanceScore scores a playlist against a campaign's primary
// sub-genre and full genre list. The result is in [0,1] and is fully
// deterministic in its inputs.
func RelevanceScore(p Playlist, subGenre string, campaignGenres []string) float64 {
	exactMatch := 0.0
	for _, genre := range p.Genres {
		if genre == subGenre {
			exactMatch = 1.0
			break
		}
	}

	overlapCount := 0
	for _, genre := range campaignGenres {
		for _, have := range p.Genres {
			if genre == have {
				overlapCount++
				break
			}
		}
	}
	denom := len(campaignGenres)
	if denom < 1 {
		denom = 1
	}
	overlapScore := clamp01(float64(overlapCount) / float64(denom))

	volumeScore := p.AvgDailyStreams / maxVolumeSignal
	if volumeScore > 1 {
		volumeScore = 1
	}

	score := exactMatchWeight*exactMatch + overlapWeight*overlapScore + volumeWeight*volumeScore
	return clamp01(score)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
