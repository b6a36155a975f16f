package market

// AvailabilityToStation maps the availability check input.
func AvailabilityToStation(in *AvailabilityRequest) *StationAvailabilityRequest {
	if in == nil {
		return &StationAvailabilityRequest{}
	}
	return &StationAvailabilityRequest{
		MarketID:    in.MarketID,
		Zipcode:     in.Zipcode,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		ServiceDate: in.ServiceDate,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
	}
}

// StationToStates maps the live state list, empty when upstream sent
// none.
func StationToStates(in []StationState) []State {
	out := make([]State, 0, len(in))
	for _, s := range in {
		out = append(out, State{ID: s.ID, Name: s.Name, Abbreviation: s.Abbreviation})
	}
	return out
}

// StationToPlacesOfService maps the place of service list.
func StationToPlacesOfService(in []StationPlaceOfService) []PlaceOfService {
	out := make([]PlaceOfService, 0, len(in))
	for _, p := range in {
		out = append(out, PlaceOfService{
			ID:             p.ID,
			PlaceOfService: p.PlaceOfService,
			BillingCityID:  p.BillingCityID,
		})
	}
	return out
}
