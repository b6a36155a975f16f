// Package carerequest owns the CareRequest resource family: the public
// camelCase shapes served by this API, the snake_case shapes Station
// speaks, and the mappers between them. Mapping is the contract here;
// a field rename that drifts between the two directions silently
// corrupts data at the boundary.
package carerequest

import "time"

// CareRequest is the public representation of a patient service request.
type CareRequest struct {
	ID                   int64               `json:"id,omitempty"`
	MarketID             int64               `json:"marketId,omitempty"`
	Requester            *Requester          `json:"requester,omitempty"`
	Patient              *Patient            `json:"patient,omitempty"`
	Address              *Address            `json:"address,omitempty"`
	Complaint            *Complaint          `json:"complaint,omitempty"`
	AppointmentSlot      *AppointmentSlot    `json:"appointmentSlot,omitempty"`
	AssignmentStatus     string              `json:"assignmentStatus,omitempty"`
	ActiveStatusID       int64               `json:"activeStatusId,omitempty"`
	ShiftTeam            *ShiftTeam          `json:"shiftTeam,omitempty"`
	RiskAssessment       *RiskAssessment     `json:"riskAssessment,omitempty"`
	PartnerReferral      *PartnerReferral    `json:"partnerReferral,omitempty"`
	BillingStatus        string              `json:"billingStatus,omitempty"`
	RequestedServiceLine string              `json:"requestedServiceLine,omitempty"`
	ChannelItemID        int64               `json:"channelItemId,omitempty"`
	StatusID             int64               `json:"statusId,omitempty"`
	CreatedAt            string              `json:"createdAt,omitempty"`
	UpdatedAt            string              `json:"updatedAt,omitempty"`
}

// Requester is the person who initiated the request on the patient's
// behalf (Station calls this the caller).
type Requester struct {
	ID                    int64  `json:"id,omitempty"`
	FirstName             string `json:"firstName,omitempty"`
	LastName              string `json:"lastName,omitempty"`
	OrganizationName      string `json:"organizationName,omitempty"`
	OriginPhone           string `json:"originPhone,omitempty"`
	RelationshipToPatient string `json:"relationshipToPatient,omitempty"`
}

// Patient is the public patient summary attached to a care request.
type Patient struct {
	ID               int64  `json:"id,omitempty"`
	FirstName        string `json:"firstName,omitempty"`
	LastName         string `json:"lastName,omitempty"`
	MobileNumber     string `json:"mobileNumber,omitempty"`
	DateOfBirth      string `json:"dateOfBirth,omitempty"`
	Age              int    `json:"age,omitempty"`
	Sex              string `json:"sex,omitempty"`
	EHRID            string `json:"ehrId,omitempty"`
	VoicemailConsent bool   `json:"voicemailConsent,omitempty"`
}

// Address is the public visit address. Zip and geocoordinates are
// strings on this side regardless of how Station encodes them.
type Address struct {
	StreetAddress1 string `json:"streetAddress1,omitempty"`
	StreetAddress2 string `json:"streetAddress2,omitempty"`
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
	Zip            string `json:"zip,omitempty"`
	Latitude       string `json:"latitude,omitempty"`
	Longitude      string `json:"longitude,omitempty"`
	AdditionalDetails string `json:"additionalDetails,omitempty"`
}

// Complaint carries the reported symptoms.
type Complaint struct {
	Symptoms string `json:"symptoms,omitempty"`
}

// AppointmentSlot is a previously booked visit window.
type AppointmentSlot struct {
	ID        int64  `json:"id,omitempty"`
	StartTime string `json:"startTime,omitempty"`
}

// ShiftTeam identifies the care team assigned to the request.
type ShiftTeam struct {
	ID      int64  `json:"id,omitempty"`
	CarName string `json:"carName,omitempty"`
}

// RiskAssessment is the screening summary attached by risk
// stratification.
type RiskAssessment struct {
	ProtocolID     int64   `json:"protocolId,omitempty"`
	ProtocolName   string  `json:"protocolName,omitempty"`
	Score          float64 `json:"score,omitempty"`
	WorstCaseScore float64 `json:"worstCaseScore,omitempty"`
	OverrideReason string  `json:"overrideReason,omitempty"`
}

// PartnerReferral is the partner contact attached to a referred care
// request. FirstName/LastName are derived by splitting Station's
// combined name on the first space.
type PartnerReferral struct {
	ID        int64   `json:"id,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	Email     string  `json:"email,omitempty"`
	Relationship string `json:"relationship,omitempty"`
}

// UpdateStatusPayload drives a care request status transition.
type UpdateStatusPayload struct {
	Status        string `json:"status,omitempty"`
	StatusID      int64  `json:"statusId,omitempty"`
	ShiftTeamID   int64  `json:"shiftTeamId,omitempty"`
	Reassignment  bool   `json:"reassignment,omitempty"`
	Comment       string `json:"comment,omitempty"`
}

// AcceptIfFeasiblePayload asks Station to accept the request when the
// shift team has capacity.
type AcceptIfFeasiblePayload struct {
	ShiftTeamID int64 `json:"shiftTeamId,omitempty"`
}

// EtaRange is a scheduling window tied to a care request and status.
type EtaRange struct {
	ID                  int64  `json:"id,omitempty"`
	StartsAt            string `json:"startsAt,omitempty"`
	EndsAt              string `json:"endsAt,omitempty"`
	CareRequestID       int64  `json:"careRequestId,omitempty"`
	CareRequestStatusID int64  `json:"careRequestStatusId,omitempty"`
}

// TimeWindow is a single availability window.
type TimeWindow struct {
	StartsAt string `json:"startsAt,omitempty"`
	EndsAt   string `json:"endsAt,omitempty"`
}

// TimeWindowsAvailability lists the open and closed windows for one
// service date.
type TimeWindowsAvailability struct {
	ServiceDate            string       `json:"serviceDate,omitempty"`
	AvailableTimeWindows   []TimeWindow `json:"availableTimeWindows"`
	UnavailableTimeWindows []TimeWindow `json:"unavailableTimeWindows"`
}

// ageFromDOB derives whole years from a YYYY-MM-DD date of birth as of
// now; zero when dob does not parse.
func ageFromDOB(dob string, now time.Time) int {
	t, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return 0
	}
	years := now.Year() - t.Year()
	if now.YearDay() < t.YearDay() {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
