package insurancenetwork

// sortFieldOf collapses the public sort field string to the upstream
// enum; anything unrecognized is unspecified.
func sortFieldOf(s string) int32 {
	switch s {
	case "name":
		return SortFieldName
	case "update":
		return SortFieldUpdatedAt
	default:
		return SortFieldUnspecified
	}
}

func sortDirectionOf(s string) int32 {
	switch s {
	case "asc":
		return SortDirectionAscending
	case "desc":
		return SortDirectionDescending
	default:
		return SortDirectionUnspecified
	}
}

// SearchToServices maps the public search input to the upstream shape.
func SearchToServices(in *SearchRequest) *ServicesSearchRequest {
	if in == nil {
		return &ServicesSearchRequest{}
	}
	return &ServicesSearchRequest{
		Search:        in.Search,
		PayerIDs:      in.PayerIDs,
		StateAbbrs:    in.StateAbbrs,
		SortField:     sortFieldOf(in.SortField),
		SortDirection: sortDirectionOf(in.SortDirection),
		Limit:         in.Limit,
		Offset:        in.Offset,
	}
}

// ServicesToNetwork maps an upstream network to the public shape. The
// singular claims address appears only when the upstream address is
// present and non-empty; the address list always maps, empty included.
func ServicesToNetwork(in *ServicesInsuranceNetwork) *InsuranceNetwork {
	if in == nil {
		return nil
	}
	out := &InsuranceNetwork{
		ID:                        in.ID,
		Name:                      in.Name,
		Notes:                     in.Notes,
		PackageID:                 in.PackageID,
		InsuranceClassificationID: in.InsuranceClassificationID,
		InsurancePayerID:          in.InsurancePayerID,
		InsurancePlanID:           in.InsurancePlanID,
		EligibilityCheckEnabled:   in.EligibilityCheckEnabled,
		ProviderEnrollmentEnabled: in.ProviderEnrollmentEnabled,
		Active:                    in.Active,
		EmcCode:                   in.EmcCode,
		Addresses:                 addressesFromServices(in.Addresses),
		CreatedAt:                 in.CreatedAt,
		UpdatedAt:                 in.UpdatedAt,
	}
	if in.Address != nil && *in.Address != (ServicesInsuranceNetworkAddress{}) {
		out.ClaimsAddress = &InsuranceNetworkAddress{
			City:    in.Address.City,
			State:   in.Address.State,
			Zipcode: in.Address.Zipcode,
			Address: in.Address.Address,
		}
	}
	return out
}

func addressesFromServices(in []ServicesInsuranceNetworkAddress) []InsuranceNetworkAddress {
	out := make([]InsuranceNetworkAddress, 0, len(in))
	for _, a := range in {
		out = append(out, InsuranceNetworkAddress{
			City:    a.City,
			State:   a.State,
			Zipcode: a.Zipcode,
			Address: a.Address,
		})
	}
	return out
}

// NetworkToServices is the reverse mapping used on writes.
func NetworkToServices(in *InsuranceNetwork) *ServicesInsuranceNetwork {
	if in == nil {
		return nil
	}
	out := &ServicesInsuranceNetwork{
		ID:                        in.ID,
		Name:                      in.Name,
		Notes:                     in.Notes,
		PackageID:                 in.PackageID,
		InsuranceClassificationID: in.InsuranceClassificationID,
		InsurancePayerID:          in.InsurancePayerID,
		InsurancePlanID:           in.InsurancePlanID,
		EligibilityCheckEnabled:   in.EligibilityCheckEnabled,
		ProviderEnrollmentEnabled: in.ProviderEnrollmentEnabled,
		Active:                    in.Active,
		EmcCode:                   in.EmcCode,
		CreatedAt:                 in.CreatedAt,
		UpdatedAt:                 in.UpdatedAt,
	}
	for _, a := range in.Addresses {
		out.Addresses = append(out.Addresses, ServicesInsuranceNetworkAddress(a))
	}
	if in.ClaimsAddress != nil {
		sa := ServicesInsuranceNetworkAddress(*in.ClaimsAddress)
		out.Address = &sa
	}
	return out
}

// ServicesToNetworks maps a search result list.
func ServicesToNetworks(in []ServicesInsuranceNetwork) []InsuranceNetwork {
	out := make([]InsuranceNetwork, 0, len(in))
	for i := range in {
		out = append(out, *ServicesToNetwork(&in[i]))
	}
	return out
}

// StationToClassifications maps the classification catalog.
func StationToClassifications(in []StationInsuranceClassification) []InsuranceClassification {
	out := make([]InsuranceClassification, 0, len(in))
	for _, c := range in {
		out = append(out, InsuranceClassification{ID: c.ID, Name: c.Name})
	}
	return out
}
