package model

import "strings"

var months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

type EventHistory struct {
	Month  string `db:"month"  yaml:"month"  json:"month"` // 3-letter abbreviation
	Events int    `db:"events" yaml:"events" json:"events"`
}

// MonthIndex returns 0..11 for Jan..Dec, or len(months) for unknown values
// so they sort last.
func MonthIndex(month string) int {
	for i, m := range months {
		if strings.EqualFold(m, month) {
			return i
		}
	}
	return len(months)
}
