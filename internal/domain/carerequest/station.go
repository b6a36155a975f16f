package carerequest

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// flexString decodes a JSON string or number into its string form.
// Station is inconsistent about zip codes and geocoordinates, sending
// numbers on some endpoints and strings on others.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func (f flexString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

// StationCareRequest is the snake_case care request shape Station
// returns. Address fields are inlined on the request itself.
type StationCareRequest struct {
	ID                   int64                  `json:"id,omitempty"`
	MarketID             int64                  `json:"market_id,omitempty"`
	Caller               *StationCaller         `json:"caller,omitempty"`
	Patient              *StationPatient        `json:"patient,omitempty"`
	StreetAddress1       string                 `json:"street_address_1,omitempty"`
	StreetAddress2       string                 `json:"street_address_2,omitempty"`
	City                 string                 `json:"city,omitempty"`
	State                string                 `json:"state,omitempty"`
	Zipcode              flexString             `json:"zipcode,omitempty"`
	Latitude             *float64               `json:"latitude,omitempty"`
	Longitude            *float64               `json:"longitude,omitempty"`
	AdditionalDetails    string                 `json:"additional_details,omitempty"`
	Complaint            *StationComplaint      `json:"complaint,omitempty"`
	AppointmentSlot      *StationAppointmentSlot `json:"appointment_slot,omitempty"`
	RequestStatus        string                 `json:"request_status,omitempty"`
	ActiveStatusID       int64                  `json:"active_status_id,omitempty"`
	ShiftTeam            *StationShiftTeam      `json:"shift_team,omitempty"`
	RiskAssessment       *StationRiskAssessment `json:"risk_assessment,omitempty"`
	PartnerReferralID    int64                  `json:"partner_referral_id,omitempty"`
	PartnerReferralName  string                 `json:"partner_referral_name,omitempty"`
	PartnerReferralPhone string                 `json:"partner_referral_phone,omitempty"`
	BillingStatus        string                 `json:"billing_status,omitempty"`
	RequestedServiceLine string                 `json:"requested_service_line,omitempty"`
	ChannelItemID        int64                  `json:"channel_item_id,omitempty"`
	RequestStatusID      int64                  `json:"request_status_id,omitempty"`
	SkipGeocode          bool                   `json:"skip_geocode,omitempty"`
	CreatedAt            string                 `json:"created_at,omitempty"`
	UpdatedAt            string                 `json:"updated_at,omitempty"`
}

type StationCaller struct {
	ID                    int64  `json:"id,omitempty"`
	FirstName             string `json:"first_name,omitempty"`
	LastName              string `json:"last_name,omitempty"`
	OrganizationName      string `json:"organization_name,omitempty"`
	OriginPhone           string `json:"origin_phone,omitempty"`
	RelationshipToPatient string `json:"relationship_to_patient,omitempty"`
}

type StationPatient struct {
	ID               int64  `json:"id,omitempty"`
	FirstName        string `json:"first_name,omitempty"`
	LastName         string `json:"last_name,omitempty"`
	MobileNumber     string `json:"mobile_number,omitempty"`
	DOB              string `json:"dob,omitempty"`
	Gender           string `json:"gender,omitempty"`
	EHRID            string `json:"ehr_id,omitempty"`
	VoicemailConsent bool   `json:"voicemail_consent,omitempty"`
}

type StationComplaint struct {
	Symptoms string `json:"symptoms,omitempty"`
}

type StationAppointmentSlot struct {
	ID        int64  `json:"id,omitempty"`
	StartTime string `json:"start_time,omitempty"`
}

type StationShiftTeam struct {
	ID      int64  `json:"id,omitempty"`
	CarName string `json:"car_name,omitempty"`
}

type StationRiskAssessment struct {
	ProtocolID     int64   `json:"protocol_id,omitempty"`
	ProtocolName   string  `json:"protocol_name,omitempty"`
	Score          float64 `json:"score,omitempty"`
	WorstCaseScore float64 `json:"worst_case_score,omitempty"`
	OverrideReason string  `json:"override_reason,omitempty"`
}

// StationMetaData rides along on status transitions when a shift team
// is involved.
type StationMetaData struct {
	ShiftTeamID int64 `json:"shift_team_id,omitempty"`
}

// StationUpdateStatusPayload is the body of
// PATCH /api/care_requests/:id/update_status.
type StationUpdateStatusPayload struct {
	RequestStatus   string           `json:"request_status,omitempty"`
	RequestStatusID int64            `json:"request_status_id,omitempty"`
	Reassignment    bool             `json:"reassignment,omitempty"`
	Comment         string           `json:"comment,omitempty"`
	MetaData        *StationMetaData `json:"meta_data,omitempty"`
}

// StationAcceptIfFeasiblePayload is the body of
// PATCH /api/care_requests/:id/accept_if_feasible.
type StationAcceptIfFeasiblePayload struct {
	MetaData *StationMetaData `json:"meta_data,omitempty"`
}

// StationPartnerReferral is the partner_referrals sub-resource payload.
type StationPartnerReferral struct {
	ID           int64  `json:"id,omitempty"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	Relationship string `json:"relationship,omitempty"`
}

type StationEtaRange struct {
	ID                  int64  `json:"id,omitempty"`
	StartsAt            string `json:"starts_at,omitempty"`
	EndsAt              string `json:"ends_at,omitempty"`
	CareRequestID       int64  `json:"care_request_id,omitempty"`
	CareRequestStatusID int64  `json:"care_request_status_id,omitempty"`
}

type StationTimeWindow struct {
	StartsAt string `json:"starts_at,omitempty"`
	EndsAt   string `json:"ends_at,omitempty"`
}

type StationTimeWindowsAvailability struct {
	ServiceDate            string              `json:"service_date,omitempty"`
	AvailableTimeWindows   []StationTimeWindow `json:"available_time_windows,omitempty"`
	UnavailableTimeWindows []StationTimeWindow `json:"unavailable_time_windows,omitempty"`
}

// parseCoordinate converts a public-side coordinate string back to the
// numeric form Station expects; nil when absent or unparseable.
func parseCoordinate(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// formatCoordinate renders a Station coordinate as the public string.
func formatCoordinate(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
