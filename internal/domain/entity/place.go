package entity

// Place is a geocoding hit.
type Place struct {
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
	Country     string      `json:"country"`
	DisplayName string      `json:"displayName"`
}

// PopularCity is an entry of the built-in city catalog.
type PopularCity struct {
	Name      string  `json:"name" yaml:"name"`
	Country   string  `json:"country" yaml:"country"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}
