package models

import (
	"fmt"
	"strconv"
	"time"
)

// LookbackSeason selects full-season averages instead of a day window.
const LookbackSeason = Lookback("season")

// Lookback is the historical period per-game averages are computed over:
// either the literal "season" or a string of digits giving a day count.
type Lookback string

// Days returns the day count and true when the lookback is a digit string.
func (l Lookback) Days() (int, bool) {
	n, err := strconv.Atoi(string(l))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// IsSeason reports whether the lookback covers the full season.
func (l Lookback) IsSeason() bool {
	_, ok := l.Days()
	return !ok
}

// Window returns the [from, to] date window ending at current. ok is false
// for a full-season lookback, which has no explicit window.
func (l Lookback) Window(current time.Time) (from, to time.Time, ok bool) {
	days, ok := l.Days()
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return current.AddDate(0, 0, -days), current, true
}

// Describe renders the lookback for warnings and report headers.
func (l Lookback) Describe() string {
	if days, ok := l.Days(); ok {
		return fmt.Sprintf("in the last %d days", days)
	}
	return "this season"
}
