package entity

type ClothingItem struct {
	Icon   string `json:"icon"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
	Color  string `json:"color"`
}

// TemperatureFeeling is the display category of a temperature.
type TemperatureFeeling string

const (
	FeelingVeryCold TemperatureFeeling = "very-cold"
	FeelingCold     TemperatureFeeling = "cold"
	FeelingCool     TemperatureFeeling = "cool"
	FeelingMild     TemperatureFeeling = "mild"
	FeelingWarm     TemperatureFeeling = "warm"
	FeelingHot      TemperatureFeeling = "hot"
	FeelingVeryHot  TemperatureFeeling = "very-hot"
)

// Color returns the color tag used to render the feeling.
func (f TemperatureFeeling) Color() string {
	switch f {
	case FeelingVeryCold, FeelingCold:
		return "blue"
	case FeelingCool:
		return "cyan"
	case FeelingMild:
		return "green"
	case FeelingWarm:
		return "orange"
	default:
		return "red"
	}
}
