package external

// NominatimPlaceDTO represents one row of the Nominatim search API
type NominatimPlaceDTO struct {
	Lat         string               `json:"lat"`
	Lon         string               `json:"lon"`
	DisplayName string               `json:"display_name"`
	Name        *string              `json:"name"`
	Address     *NominatimAddressDTO `json:"address"`
}

// NominatimAddressDTO represents the addressdetails block
type NominatimAddressDTO struct {
	City    *string `json:"city"`
	Town    *string `json:"town"`
	Village *string `json:"village"`
	Country *string `json:"country"`
	State   *string `json:"state"`
}
