package carerequest

import (
	"errors"
	"strings"
	"time"
)

// ErrInputNotSpecified is returned when a mapper that requires input is
// handed nothing to map.
var ErrInputNotSpecified = errors.New("station care request input not specified")

// StationToCareRequest maps Station's care request shape to the public
// one. It is the only mapper with a precondition: a nil input fails
// rather than producing an empty object, because callers treat the
// result as a fetched resource.
func StationToCareRequest(in *StationCareRequest) (*CareRequest, error) {
	if in == nil {
		return nil, ErrInputNotSpecified
	}

	out := &CareRequest{
		ID:                   in.ID,
		MarketID:             in.MarketID,
		AssignmentStatus:     in.RequestStatus,
		ActiveStatusID:       in.ActiveStatusID,
		BillingStatus:        in.BillingStatus,
		RequestedServiceLine: in.RequestedServiceLine,
		ChannelItemID:        in.ChannelItemID,
		StatusID:             in.RequestStatusID,
		CreatedAt:            in.CreatedAt,
		UpdatedAt:            in.UpdatedAt,
		Address:              stationAddress(in),
	}

	if in.Caller != nil {
		out.Requester = &Requester{
			ID:                    in.Caller.ID,
			FirstName:             in.Caller.FirstName,
			LastName:              in.Caller.LastName,
			OrganizationName:      in.Caller.OrganizationName,
			OriginPhone:           in.Caller.OriginPhone,
			RelationshipToPatient: in.Caller.RelationshipToPatient,
		}
	}
	if in.Patient != nil {
		out.Patient = &Patient{
			ID:               in.Patient.ID,
			FirstName:        in.Patient.FirstName,
			LastName:         in.Patient.LastName,
			MobileNumber:     in.Patient.MobileNumber,
			DateOfBirth:      in.Patient.DOB,
			Age:              ageFromDOB(in.Patient.DOB, time.Now()),
			Sex:              in.Patient.Gender,
			EHRID:            in.Patient.EHRID,
			VoicemailConsent: in.Patient.VoicemailConsent,
		}
	}
	if in.Complaint != nil {
		out.Complaint = &Complaint{Symptoms: in.Complaint.Symptoms}
	}
	if in.AppointmentSlot != nil {
		out.AppointmentSlot = &AppointmentSlot{
			ID:        in.AppointmentSlot.ID,
			StartTime: in.AppointmentSlot.StartTime,
		}
	}
	if in.ShiftTeam != nil {
		out.ShiftTeam = &ShiftTeam{
			ID:      in.ShiftTeam.ID,
			CarName: in.ShiftTeam.CarName,
		}
	}
	if in.RiskAssessment != nil {
		out.RiskAssessment = &RiskAssessment{
			ProtocolID:     in.RiskAssessment.ProtocolID,
			ProtocolName:   in.RiskAssessment.ProtocolName,
			Score:          in.RiskAssessment.Score,
			WorstCaseScore: in.RiskAssessment.WorstCaseScore,
			OverrideReason: in.RiskAssessment.OverrideReason,
		}
	}
	// Partner referral exists only when Station assigned it an id.
	if in.PartnerReferralID != 0 {
		first, last := splitName(in.PartnerReferralName)
		out.PartnerReferral = &PartnerReferral{
			ID:        in.PartnerReferralID,
			FirstName: first,
			LastName:  last,
			Phone:     in.PartnerReferralPhone,
		}
	}

	return out, nil
}

// stationAddress lifts the inlined Station address fields into the
// public nested object; nil when Station sent no address at all.
func stationAddress(in *StationCareRequest) *Address {
	if in.StreetAddress1 == "" && in.City == "" && in.Zipcode == "" && in.Latitude == nil {
		return nil
	}
	return &Address{
		StreetAddress1:    in.StreetAddress1,
		StreetAddress2:    in.StreetAddress2,
		City:              in.City,
		State:             in.State,
		Zip:               string(in.Zipcode),
		Latitude:          formatCoordinate(in.Latitude),
		Longitude:         formatCoordinate(in.Longitude),
		AdditionalDetails: in.AdditionalDetails,
	}
}

// CareRequestToStation maps the public care request onto the shape
// Station accepts for create and update calls.
func CareRequestToStation(in *CareRequest) *StationCareRequest {
	if in == nil {
		return nil
	}

	out := &StationCareRequest{
		ID:                   in.ID,
		MarketID:             in.MarketID,
		RequestStatus:        in.AssignmentStatus,
		ActiveStatusID:       in.ActiveStatusID,
		BillingStatus:        in.BillingStatus,
		RequestedServiceLine: in.RequestedServiceLine,
		ChannelItemID:        in.ChannelItemID,
		RequestStatusID:      in.StatusID,
	}

	if in.Requester != nil {
		out.Caller = &StationCaller{
			ID:                    in.Requester.ID,
			FirstName:             in.Requester.FirstName,
			LastName:              in.Requester.LastName,
			OrganizationName:      in.Requester.OrganizationName,
			OriginPhone:           in.Requester.OriginPhone,
			RelationshipToPatient: in.Requester.RelationshipToPatient,
		}
	}
	if in.Patient != nil {
		out.Patient = &StationPatient{
			ID:               in.Patient.ID,
			FirstName:        in.Patient.FirstName,
			LastName:         in.Patient.LastName,
			MobileNumber:     in.Patient.MobileNumber,
			DOB:              in.Patient.DateOfBirth,
			Gender:           in.Patient.Sex,
			EHRID:            in.Patient.EHRID,
			VoicemailConsent: in.Patient.VoicemailConsent,
		}
	}
	if in.Complaint != nil {
		out.Complaint = &StationComplaint{Symptoms: in.Complaint.Symptoms}
	}
	if in.AppointmentSlot != nil {
		out.AppointmentSlot = &StationAppointmentSlot{
			ID:        in.AppointmentSlot.ID,
			StartTime: in.AppointmentSlot.StartTime,
		}
	}
	if in.Address != nil {
		out.StreetAddress1 = in.Address.StreetAddress1
		out.StreetAddress2 = in.Address.StreetAddress2
		out.City = in.Address.City
		out.State = in.Address.State
		out.Zipcode = flexString(in.Address.Zip)
		out.Latitude = parseCoordinate(in.Address.Latitude)
		out.Longitude = parseCoordinate(in.Address.Longitude)
		out.AdditionalDetails = in.Address.AdditionalDetails
		// Geocoding is skipped when the caller already supplied
		// coordinates.
		out.SkipGeocode = in.Address.Latitude != ""
	}

	return out
}

// UpdateStatusToStation maps a status transition payload. The shift
// team rides in meta_data only for a positive id; Station rejects zero
// and negative team ids on this endpoint.
func UpdateStatusToStation(in *UpdateStatusPayload) *StationUpdateStatusPayload {
	if in == nil {
		return &StationUpdateStatusPayload{}
	}
	out := &StationUpdateStatusPayload{
		RequestStatus:   in.Status,
		RequestStatusID: in.StatusID,
		Reassignment:    in.Reassignment,
		Comment:         in.Comment,
	}
	if in.ShiftTeamID > 0 {
		out.MetaData = &StationMetaData{ShiftTeamID: in.ShiftTeamID}
	}
	return out
}

// AcceptIfFeasibleToStation maps the accept-if-feasible payload. Unlike
// UpdateStatusToStation this guard is plain presence, not positivity;
// the two endpoints have always differed and callers depend on each as
// it stands.
func AcceptIfFeasibleToStation(in *AcceptIfFeasiblePayload) *StationAcceptIfFeasiblePayload {
	out := &StationAcceptIfFeasiblePayload{}
	if in != nil && in.ShiftTeamID != 0 {
		out.MetaData = &StationMetaData{ShiftTeamID: in.ShiftTeamID}
	}
	return out
}

// PartnerReferralToStation maps the public partner referral to the
// partner_referrals sub-resource payload.
func PartnerReferralToStation(in *PartnerReferral) *StationPartnerReferral {
	if in == nil {
		return nil
	}
	out := &StationPartnerReferral{
		ID:           in.ID,
		Phone:        in.Phone,
		Email:        in.Email,
		Relationship: in.Relationship,
	}
	if in.FirstName != nil {
		out.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		out.LastName = *in.LastName
	}
	return out
}

// EtaRangeToStation maps a public ETA range for creation.
func EtaRangeToStation(in *EtaRange) *StationEtaRange {
	if in == nil {
		return nil
	}
	return &StationEtaRange{
		ID:                  in.ID,
		StartsAt:            in.StartsAt,
		EndsAt:              in.EndsAt,
		CareRequestID:       in.CareRequestID,
		CareRequestStatusID: in.CareRequestStatusID,
	}
}

// StationToEtaRange maps Station's ETA range shape back to the public
// one.
func StationToEtaRange(in *StationEtaRange) *EtaRange {
	if in == nil {
		return nil
	}
	return &EtaRange{
		ID:                  in.ID,
		StartsAt:            in.StartsAt,
		EndsAt:              in.EndsAt,
		CareRequestID:       in.CareRequestID,
		CareRequestStatusID: in.CareRequestStatusID,
	}
}

// StationToTimeWindowsAvailabilities maps the per-service-date window
// lists. An absent list at any level becomes an empty slice, never nil
// semantics visible to clients.
func StationToTimeWindowsAvailabilities(in []StationTimeWindowsAvailability) []TimeWindowsAvailability {
	out := make([]TimeWindowsAvailability, 0, len(in))
	for _, s := range in {
		out = append(out, TimeWindowsAvailability{
			ServiceDate:            s.ServiceDate,
			AvailableTimeWindows:   stationTimeWindows(s.AvailableTimeWindows),
			UnavailableTimeWindows: stationTimeWindows(s.UnavailableTimeWindows),
		})
	}
	return out
}

func stationTimeWindows(in []StationTimeWindow) []TimeWindow {
	out := make([]TimeWindow, 0, len(in))
	for _, w := range in {
		out = append(out, TimeWindow{StartsAt: w.StartsAt, EndsAt: w.EndsAt})
	}
	return out
}

// splitName divides a combined "First Last" contact name at the first
// space. A name with no space is all first name; an empty name yields
// neither part.
func splitName(name string) (first, last *string) {
	if name == "" {
		return nil, nil
	}
	parts := strings.SplitN(name, " ", 2)
	first = &parts[0]
	if len(parts) == 2 && parts[1] != "" {
		last = &parts[1]
	}
	return first, last
}
