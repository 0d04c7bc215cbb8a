// Package parser resolves stats window expressions.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/nudge-cli/nudge/internal/clock"
	apperrors "github.com/nudge-cli/nudge/internal/errors"
)

// monthsRegex matches shorthand like "1m", "3m", "6m", "12m".
var monthsRegex = regexp.MustCompile(`(?i)^(\d{1,2})m$`)

// ParseWindow resolves a window expression to its start time. A nil
// result means the all-time window. Named windows cover the supported
// views (today, months back, a year back, all); anything else falls
// through to natural-language parsing ("3 months ago", "last monday").
func ParseWindow(input string, now time.Time) (*time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))

	switch input {
	case "", "all", "alltime", "all-time":
		return nil, nil
	case "today", "day":
		t := clock.StartOfDay(now)
		return &t, nil
	case "week":
		t := now.AddDate(0, 0, -7)
		return &t, nil
	case "month":
		t := now.AddDate(0, -1, 0)
		return &t, nil
	case "year", "1y":
		t := now.AddDate(-1, 0, 0)
		return &t, nil
	}

	if match := monthsRegex.FindStringSubmatch(input); match != nil {
		n, _ := strconv.Atoi(match[1])
		t := now.AddDate(0, -n, 0)
		return &t, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return nil, apperrors.NewUserErrorWithField("window", input,
			"could not understand window", "try 'today', '3m', '1y', 'all', or a date")
	}

	t := result.Time
	return &t, nil
}
