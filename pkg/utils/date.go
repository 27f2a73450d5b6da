package utils

import (
	"time"
)

// ParseDate converte yyyy-mm-dd na localização informada
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(time.DateOnly, dateStr, loc)
}
