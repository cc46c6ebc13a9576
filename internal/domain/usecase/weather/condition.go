package weather

import "go-weather/pkg/msg"

const (
	IconClear        = "sun.max.fill"
	IconClearNight   = "moon.stars.fill"
	IconPartly       = "cloud.sun.fill"
	IconPartlyNight  = "cloud.moon.fill"
	IconCloudy       = "cloud.fill"
	IconFog          = "cloud.fog.fill"
	IconDrizzle      = "cloud.drizzle.fill"
	IconRain         = "cloud.rain.fill"
	IconSnow         = "cloud.snow.fill"
	IconHeavyRain    = "cloud.heavyrain.fill"
	IconThunderstorm = "cloud.bolt.rain.fill"
)

// IconFor maps a weather code to its icon id. Only clear and partly cloudy skies differ at night.
func IconFor(code int, isNight bool) string {
	switch code {
	case 0:
		if isNight {
			return IconClearNight
		}
		return IconClear
	case 1, 2:
		if isNight {
			return IconPartlyNight
		}
		return IconPartly
	case 3:
		return IconCloudy
	case 45, 48:
		return IconFog
	case 51, 53, 55, 56, 57:
		return IconDrizzle
	case 61, 63, 65, 66, 67:
		return IconRain
	case 71, 73, 75, 77, 85, 86:
		return IconSnow
	case 80, 81, 82:
		return IconHeavyRain
	case 95, 96, 99:
		return IconThunderstorm
	default:
		return IconCloudy
	}
}

// ConditionKey returns the message key suffix describing a weather code
func ConditionKey(code int) string {
	switch {
	case code == 0:
		return "clear"
	case code == 1 || code == 2:
		return "partly-cloudy"
	case code == 3:
		return "overcast"
	case code == 45 || code == 48:
		return "fog"
	case code >= 51 && code <= 57:
		return "drizzle"
	case code == 61 || code == 63 || code == 65:
		return "rain"
	case code == 66 || code == 67:
		return "freezing-rain"
	case code >= 71 && code <= 77:
		return "snow"
	case code >= 80 && code <= 82:
		return "heavy-rain"
	case code == 85 || code == 86:
		return "snow-showers"
	case code == 95 || code == 96 || code == 99:
		return "thunderstorm"
	default:
		return "unknown"
	}
}

// ConditionLabel returns the localized condition label of a weather code
func ConditionLabel(code int) string {
	return msg.GetMessage("weather.condition." + ConditionKey(code))
}
