package seasonal

import (
	"time"
)

// AnchorDate is the Monday the first season ever started on.
// Every season is a consecutive 7 day window counted from it.
var AnchorDate = time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC)

const seasonLengthDays = 7

// SeasonNumber returns the season a date falls into, starting at 1 on the
// anchor date. Dates before the anchor map to season 0 (pre-history).
func SeasonNumber(date time.Time) int {
	days := daysSinceAnchor(date)
	if days < 0 {
		return 0
	}
	return days/seasonLengthDays + 1
}

// SeasonDates returns the start (Monday) and end (Sunday) dates of a season.
func SeasonDates(number int) (start, end time.Time) {
	start = AnchorDate.AddDate(0, 0, (number-1)*seasonLengthDays)
	end = start.AddDate(0, 0, seasonLengthDays-1)
	return start, end
}

// CurrentSeasonNumber returns the season number for today.
func CurrentSeasonNumber() int {
	return SeasonNumber(time.Now().UTC())
}

// PreviousSeasonNumber returns the season number before the current one.
func PreviousSeasonNumber() int {
	return CurrentSeasonNumber() - 1
}

// daysSinceAnchor counts whole calendar days between the anchor and a date,
// ignoring the time of day.
func daysSinceAnchor(date time.Time) int {
	year, month, day := date.UTC().Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return int(midnight.Sub(AnchorDate) / (24 * time.Hour))
}
