package entity

// CurrentConditions is the display summary of the current weather.
type CurrentConditions struct {
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Icon        string `json:"icon"`
	High        int    `json:"high"`
	Low         int    `json:"low"`
}

type HourlyPoint struct {
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	Temperature int    `json:"temperature"`
}

type DailyPoint struct {
	Day  string `json:"day"`
	Icon string `json:"icon"`
	High int    `json:"high"`
	Low  int    `json:"low"`
}

// Forecast is the projection of a ForecastDocument at a given instant.
type Forecast struct {
	Timezone string            `json:"timezone"`
	Current  CurrentConditions `json:"current"`
	Hourly   []HourlyPoint     `json:"hourly"`
	Daily    []DailyPoint      `json:"daily"`
}
