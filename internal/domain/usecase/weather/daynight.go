package weather

import "time"

const (
	nightStartHour = 18
	nightEndHour   = 6
)

// IsNight reports whether instant falls outside daylight. With both sunrise and sunset known
// the instant is night strictly before sunrise or strictly after sunset; otherwise it is
// night from 18:00 to 05:59 in the instant's own zone.
func IsNight(instant time.Time, sunrise, sunset *time.Time) bool {
	if sunrise != nil && sunset != nil {
		return instant.Before(*sunrise) || instant.After(*sunset)
	}

	hour := instant.Hour()
	return hour >= nightStartHour || hour < nightEndHour
}
