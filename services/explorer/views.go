package explorer

import (
	"embed"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"graphsense-dashboard/pkg/storage"

	"github.com/gofiber/template/html/v2"
)

//go:embed views/*
var viewsFS embed.FS

const timeLayout = "2006-01-02 15:04:05"

// NewViews returns the HTML engine for the explorer pages.
func NewViews() *html.Engine {
	engine := html.NewFileSystem(http.FS(viewsFS), ".html")
	engine.AddFunc("formatTime", FormatTime)
	engine.AddFunc("formatDuration", FormatDuration)
	engine.AddFunc("tagString", TagString)
	engine.AddFunc("amount", FormatAmount)
	return engine
}

// FormatTime renders a unix timestamp in UTC.
func FormatTime(unix int64) string {
	return time.Unix(unix, 0).UTC().Format(timeLayout)
}

// FormatDuration describes the activity period between two unix timestamps using its
// three most significant calendar units.
func FormatDuration(first, last int64) string {
	if first == last {
		return "Single transaction"
	}
	if last < first {
		first, last = last, first
	}

	y, mo, d, h, mi, s := calendarDiff(time.Unix(first, 0).UTC(), time.Unix(last, 0).UTC())
	switch {
	case y > 0:
		return fmt.Sprintf("%d years %d months %d days", y, mo, d)
	case mo > 0:
		return fmt.Sprintf("%d months %d days %d hours", mo, d, h)
	case d > 0:
		return fmt.Sprintf("%d days %d hours %d minutes", d, h, mi)
	}
	return fmt.Sprintf("%d hours %d minutes %d seconds", h, mi, s)
}

// calendarDiff splits b-a into whole months counted from a, then the remaining
// days and clock time. a must not be after b.
func calendarDiff(a, b time.Time) (years, months, days, hours, mins, secs int) {
	total := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if total > 0 && addMonths(a, total).After(b) {
		total--
	}
	rest := b.Sub(addMonths(a, total))

	years, months = total/12, total%12
	days = int(rest / (24 * time.Hour))
	rest -= time.Duration(days) * 24 * time.Hour
	hours = int(rest / time.Hour)
	rest -= time.Duration(hours) * time.Hour
	mins = int(rest / time.Minute)
	rest -= time.Duration(mins) * time.Minute
	secs = int(rest / time.Second)
	return
}

// addMonths moves t forward n months, clamping to the last day of the target month.
func addMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	day := t.Day()
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return first.AddDate(0, 0, day-1)
}

// TagString shows a single tag by name and otherwise the number of tags.
func TagString(tags []storage.Tag) string {
	if len(tags) == 1 {
		return tags[0].Tag
	}
	return fmt.Sprintf("(%d tags)", len(tags))
}

// FormatAmount prints the smallest-unit figure of v.
func FormatAmount(v storage.Values) string {
	return strconv.FormatInt(int64(v.Smallest()), 10)
}
