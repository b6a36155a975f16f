package channelitem

// StationToChannelItem renames every field from snake_case to the
// public camelCase shape. There is no conditional logic on this
// resource; both directions are plain renames.
func StationToChannelItem(in *StationChannelItem) *ChannelItem {
	if in == nil {
		return nil
	}
	return &ChannelItem{
		ID:                          in.ID,
		Name:                        in.Name,
		ChannelID:                   in.ChannelID,
		ChannelName:                 in.ChannelName,
		TypeName:                    in.TypeName,
		Agreement:                   in.Agreement,
		SourceName:                  in.SourceName,
		ContactPerson:               in.ContactPerson,
		PhoneNumber:                 in.PhoneNumber,
		Email:                       in.Email,
		Address:                     in.Address,
		City:                        in.City,
		State:                       in.State,
		Zipcode:                     in.Zipcode,
		CasePolicyNumber:            in.CasePolicyNumber,
		EmrProviderName:             in.EmrProviderName,
		PreferredPartner:            in.PreferredPartner,
		PreferredPartnerDescription: in.PreferredPartnerDescription,
		BypassRiskStratification:    in.BypassRiskStratification,
		BypassScreeningProtocol:     in.BypassScreeningProtocol,
		SendClinicalNote:            in.SendClinicalNote,
		SendNoteAutomatically:       in.SendNoteAutomatically,
		BlendedBill:                 in.BlendedBill,
		BlendedDescription:          in.BlendedDescription,
		EraEnrollment:               in.EraEnrollment,
		BillingCityID:               in.BillingCityID,
		MarketID:                    in.MarketID,
		DeactivatedAt:               in.DeactivatedAt,
		CreatedAt:                   in.CreatedAt,
		UpdatedAt:                   in.UpdatedAt,
	}
}

// ChannelItemToStation is the reverse rename.
func ChannelItemToStation(in *ChannelItem) *StationChannelItem {
	if in == nil {
		return nil
	}
	return &StationChannelItem{
		ID:                          in.ID,
		Name:                        in.Name,
		ChannelID:                   in.ChannelID,
		ChannelName:                 in.ChannelName,
		TypeName:                    in.TypeName,
		Agreement:                   in.Agreement,
		SourceName:                  in.SourceName,
		ContactPerson:               in.ContactPerson,
		PhoneNumber:                 in.PhoneNumber,
		Email:                       in.Email,
		Address:                     in.Address,
		City:                        in.City,
		State:                       in.State,
		Zipcode:                     in.Zipcode,
		CasePolicyNumber:            in.CasePolicyNumber,
		EmrProviderName:             in.EmrProviderName,
		PreferredPartner:            in.PreferredPartner,
		PreferredPartnerDescription: in.PreferredPartnerDescription,
		BypassRiskStratification:    in.BypassRiskStratification,
		BypassScreeningProtocol:     in.BypassScreeningProtocol,
		SendClinicalNote:            in.SendClinicalNote,
		SendNoteAutomatically:       in.SendNoteAutomatically,
		BlendedBill:                 in.BlendedBill,
		BlendedDescription:          in.BlendedDescription,
		EraEnrollment:               in.EraEnrollment,
		BillingCityID:               in.BillingCityID,
		MarketID:                    in.MarketID,
		DeactivatedAt:               in.DeactivatedAt,
		CreatedAt:                   in.CreatedAt,
		UpdatedAt:                   in.UpdatedAt,
	}
}

// StationToChannelItems maps a search result list; an empty upstream
// list stays an empty list.
func StationToChannelItems(in []StationChannelItem) []ChannelItem {
	out := make([]ChannelItem, 0, len(in))
	for i := range in {
		out = append(out, *StationToChannelItem(&in[i]))
	}
	return out
}
