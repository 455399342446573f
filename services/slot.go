package services

import "time"

// IST is India Standard Time. It has no DST, so a fixed zone is exact.
var IST = time.FixedZone("IST", 5*60*60+30*60)

// NormalizeSlot moves t into IST at millisecond precision, the resolution the store keeps.
func NormalizeSlot(t time.Time) time.Time {
	return t.In(IST).Truncate(time.Millisecond)
}
