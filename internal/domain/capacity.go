package domain

import "math"

const (
	// Share of a playlist's followers assumed to convert to a stream
	// per day when no delivery history exists.
	followerConversionRate = 0.01

	// Absolute floor of streams/day credited to any listed playlist.
	minimumDailyStreams = 100
)

// EstimateCapacity returns the maximum streams a playlist can plausibly
// deliver over the campaign window. Playlists with no observed delivery
// history fall back to a follower-based estimate so they are not
// permanently unallocatable. The allocator and the validator must both
// go through this function; they may not diverge on capacity.
func EstimateCapacity(p Playlist, durationDays int) int64 {
	if durationDays <= 0 {
		return 0
	}
	base := int64(math.Floor(p.AvgDailyStreams * float64(durationDays)))
	if base > 0 {
		return base
	}
	followerBased := int64(math.Floor(float64(p.FollowerCount) * followerConversionRate * float64(durationDays)))
	minimum := int64(minimumDailyStreams * durationDays)
	if followerBased > minimum {
		return followerBased
	}
	return minimum
}
