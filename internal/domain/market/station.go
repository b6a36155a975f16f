package market

// StationAvailabilityRequest is the check in Station's shape.
type StationAvailabilityRequest struct {
	MarketID    int64  `json:"market_id,omitempty"`
	Zipcode     string `json:"zipcode,omitempty"`
	Latitude    string `json:"latitude,omitempty"`
	Longitude   string `json:"longitude,omitempty"`
	ServiceDate string `json:"service_date,omitempty"`
	StartTime   string `json:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty"`
}

type StationAvailability struct {
	Availability string `json:"availability,omitempty"`
}

type StationState struct {
	ID           int64  `json:"id,omitempty"`
	Name         string `json:"name,omitempty"`
	Abbreviation string `json:"abbreviation,omitempty"`
}

type StationPlaceOfService struct {
	ID             int64  `json:"id,omitempty"`
	PlaceOfService string `json:"place_of_service,omitempty"`
	BillingCityID  int64  `json:"billing_city_id,omitempty"`
}
