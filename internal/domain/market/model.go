// Package market proxies market coverage lookups: whether an address
// is serviceable, which states are live, and the places of service a
// billing city supports.
package market

// AvailabilityRequest asks whether the requested visit can be served.
type AvailabilityRequest struct {
	MarketID    int64  `json:"marketId,omitempty"`
	Zipcode     string `json:"zipcode,omitempty"`
	Latitude    string `json:"latitude,omitempty"`
	Longitude   string `json:"longitude,omitempty"`
	ServiceDate string `json:"serviceDate,omitempty"`
	StartTime   string `json:"startTime,omitempty"`
	EndTime     string `json:"endTime,omitempty"`
}

// Availability is Station's verdict.
type Availability struct {
	Availability string `json:"availability,omitempty"`
}

// State is one live state.
type State struct {
	ID           int64  `json:"id,omitempty"`
	Name         string `json:"name,omitempty"`
	Abbreviation string `json:"abbreviation,omitempty"`
}

// PlaceOfService is one visit location type a billing city supports.
type PlaceOfService struct {
	ID             int64  `json:"id,omitempty"`
	PlaceOfService string `json:"placeOfService,omitempty"`
	BillingCityID  int64  `json:"billingCityId,omitempty"`
}
