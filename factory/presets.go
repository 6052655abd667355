/*
presets.go - Ready-made calendar profiles

AVAILABLE PROFILES:
  USProfile:         Sunday start, America/New_York, en-US
  ISOProfile:        Monday start, ISO 8601 week numbering, UTC
  MiddleEastProfile: Saturday start, Asia/Riyadh, ar-SA
  JapanProfile:      Sunday start, Asia/Tokyo, ja-JP

CUSTOMIZATION:
  These are starting points. Override fields before saving:

    p := factory.USProfile("hq")
    p.TimeZone = "America/Los_Angeles"
    store.SaveProfile(ctx, p)

SEE ALSO:
  - profile.go: Document-based profile creation
*/
package factory

import "github.com/warp/calendar-engine/calendar"

// USProfile returns a Sunday-start US profile.
func USProfile(id calendar.ProfileID) calendar.Profile {
	return calendar.Profile{
		ID:           id,
		Name:         "United States",
		FirstWeekday: 1,
		TimeZone:     "America/New_York",
		Locale:       "en-US",
	}
}

// ISOProfile returns a Monday-start profile with ISO 8601 week numbers.
func ISOProfile(id calendar.ProfileID) calendar.Profile {
	return calendar.Profile{
		ID:                     id,
		Name:                   "ISO 8601",
		FirstWeekday:           2,
		TimeZone:               "UTC",
		Locale:                 "en-GB",
		MinimumDaysInFirstWeek: 4,
	}
}

// MiddleEastProfile returns a Saturday-start profile.
func MiddleEastProfile(id calendar.ProfileID) calendar.Profile {
	return calendar.Profile{
		ID:           id,
		Name:         "Middle East",
		FirstWeekday: 7,
		TimeZone:     "Asia/Riyadh",
		Locale:       "ar-SA",
	}
}

// JapanProfile returns a Sunday-start Japanese profile.
func JapanProfile(id calendar.ProfileID) calendar.Profile {
	return calendar.Profile{
		ID:           id,
		Name:         "Japan",
		FirstWeekday: 1,
		TimeZone:     "Asia/Tokyo",
		Locale:       "ja-JP",
	}
}

// DefaultProfiles returns one of each preset, used to seed empty stores.
func DefaultProfiles() []calendar.Profile {
	return []calendar.Profile{
		USProfile("us"),
		ISOProfile("iso"),
		MiddleEastProfile("middle-east"),
		JapanProfile("japan"),
	}
}
