package utils

import "time"

// DateLayout is the calendar-date format shared by the reset scheduler and
// the daily history table. Comparing these strings compares civil dates.
const DateLayout = "2006-01-02"

// LocalTime is a user's wall-clock view of one instant.
type LocalTime struct {
	Hour   int
	Minute int
	Date   string

	local time.Time
}

// ResolveLocalTime converts an instant into a user's local hour, minute and
// calendar date. An empty or unknown IANA zone falls back to fallback rather
// than failing, so one bad user record cannot break a whole scheduler pass.
func ResolveLocalTime(timezone string, at time.Time, fallback *time.Location) LocalTime {
	loc := fallback
	if timezone != "" {
		if parsed, err := time.LoadLocation(timezone); err == nil {
			loc = parsed
		}
	}

	local := at.In(loc)
	return LocalTime{
		Hour:   local.Hour(),
		Minute: local.Minute(),
		Date:   local.Format(DateLayout),
		local:  local,
	}
}

// PreviousDate is the calendar day that ended at the most recent local
// midnight, which is the day a history entry is archived for.
func (lt LocalTime) PreviousDate() string {
	return lt.local.AddDate(0, 0, -1).Format(DateLayout)
}
