package timezone

import "time"

// The shop operates in a single timezone; appointment dates and decision
// timestamps are interpreted in it.
const DefaultTimezone = "Asia/Manila"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}
