package domain

import "strings"

// Region is the geographic classification bucket assigned to imported
// articles. Manually authored articles carry no region.
type Region string

const (
	RegionLocal         Region = "local"
	RegionNational      Region = "national"
	RegionInternational Region = "international"
)

// ValidRegions contains all valid regions.
var ValidRegions = []Region{RegionLocal, RegionNational, RegionInternational}

// legacy UI value still sent by older admin builds
const legacyRegionLucknow = "lucknow"

// NormalizeRegion maps a raw region string to its canonical Region.
// The legacy alias "lucknow" maps to local. The second return value
// reports whether the input was recognized.
func NormalizeRegion(raw string) (Region, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case legacyRegionLucknow, string(RegionLocal):
		return RegionLocal, true
	case string(RegionNational):
		return RegionNational, true
	case string(RegionInternational):
		return RegionInternational, true
	}
	return "", false
}

// IsValidRegion checks if a region is one of the canonical values.
func IsValidRegion(region string) bool {
	for _, r := range ValidRegions {
		if string(r) == region {
			return true
		}
	}
	return false
}
