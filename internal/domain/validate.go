package domain

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// ValidateAllocations re-checks an allocation set against the same
// per-playlist and per-vendor constraints the allocator enforces. It is
// independent of the allocator's state so it can validate hand-edited
// or imported allocations, given the same playlist/vendor context.
// Problems are reported as data: every error is accumulated, nothing
// short-circuits.
func ValidateAllocations(allocations []AllocationItem, vendorCaps VendorCaps, playlists []Playlist, durationDays int, vendors []Vendor) ValidationResult {
	playlistByID := make(map[uuid.UUID]Playlist, len(playlists))
	for _, p := range playlists {
		playlistByID[p.PlaylistID] = p
	}
	vendorName := make(map[uuid.UUID]string, len(vendors))
	for _, v := range vendors {
		vendorName[v.VendorID] = v.Name
	}

	var errs []string
	vendorTotals := make(map[uuid.UUID]int64)
	for _, item := range allocations {
		p, known := playlistByID[item.PlaylistID]
		if !known {
			errs = append(errs, fmt.Sprintf("allocation references unknown playlist %s", item.PlaylistID))
			continue
		}
		if item.Allocation < 0 {
			errs = append(errs, fmt.Sprintf("playlist %q has a negative allocation (%d)", p.Name, item.Allocation))
		}
		if capacity := EstimateCapacity(p, durationDays); item.Allocation > capacity {
			errs = append(errs, fmt.Sprintf("playlist %q allocation of %d exceeds its estimated capacity of %d streams", p.Name, item.Allocation, capacity))
		}
		vendorTotals[item.VendorID] += item.Allocation
	}

	// Sorted vendor order keeps the error list deterministic.
	vendorIDs := make([]uuid.UUID, 0, len(vendorTotals))
	for vendorID := range vendorTotals {
		vendorIDs = append(vendorIDs, vendorID)
	}
	sort.Slice(vendorIDs, func(i, j int) bool { return vendorIDs[i].String() < vendorIDs[j].String() })

	for _, vendorID := range vendorIDs {
		total := vendorTotals[vendorID]
		if total == 0 {
			continue
		}
		vendorCap, present := vendorCaps[vendorID]
		if !present || vendorCap <= 0 {
			// Default-open: an absent or zero cap means unlimited.
			continue
		}
		if total > vendorCap {
			name := vendorName[vendorID]
			if name == "" {
				name = vendorID.String()
			}
			errs = append(errs, fmt.Sprintf("vendor %q total allocation of %d exceeds its cap of %d streams", name, total, vendorCap))
		}
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
