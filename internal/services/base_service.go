package services

import "github.com/aarondl/null/v8"

// formatNullDate renders an open-ended history date as an empty string.
func formatNullDate(t null.Time) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format(reportDateFormat)
}
