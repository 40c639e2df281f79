package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var genrePattern = regexp.MustCompile(`^[a-z0-9&+/ -]{2,40}$`)

func NormalizeGenre(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

func ValidateGenre(v string) error {
	if !genrePattern.MatchString(v) {
		return fmt.Errorf("%w: genre must be 2-40 lowercase chars (letters, digits, '&', '+', '/', '-', space)", ErrInvalidInput)
	}
	return nil
}

// ValidateAllocationRequest rejects parameters the planner cannot work
// with. A zero or negative goal is deliberately allowed; the allocator
// answers it with an empty plan rather than an error.
func ValidateAllocationRequest(req AllocationRequest) error {
	if req.CampaignID == uuid.Nil {
		return fmt.Errorf("%w: campaign_id is required", ErrInvalidInput)
	}
	if req.DurationDays <= 0 {
		return fmt.Errorf("%w: duration_days must be a positive integer", ErrInvalidInput)
	}
	if req.SubGenre != "" {
		if err := ValidateGenre(NormalizeGenre(req.SubGenre)); err != nil {
			return err
		}
	}
	for _, genre := range req.CampaignGenres {
		if err := ValidateGenre(NormalizeGenre(genre)); err != nil {
			return err
		}
	}
	return nil
}
