package selfschedule

import (
	"github.com/Rukio/nx-repo-sub005/internal/domain/carerequest"
)

// OssStationCareRequest is the self-schedule bundle in Station's shape.
type OssStationCareRequest struct {
	carerequest.StationCareRequest
	RiskAssessment *StationRiskAssessment `json:"risk_assessment,omitempty"`
	MpoaConsent    *StationMpoaConsent    `json:"mpoa_consent,omitempty"`
}

type StationRiskAssessment struct {
	ProtocolID     int64             `json:"protocol_id,omitempty"`
	Score          float64           `json:"score,omitempty"`
	OverrideReason string            `json:"override_reason,omitempty"`
	Responses      *StationResponses `json:"responses,omitempty"`
}

type StationResponses struct {
	Questions []StationQuestion `json:"questions"`
}

type StationQuestion struct {
	ID       int64   `json:"id,omitempty"`
	Question string  `json:"question,omitempty"`
	Answer   bool    `json:"answer"`
	Weight   float64 `json:"weight,omitempty"`
}

type StationMpoaConsent struct {
	Consented           bool   `json:"consented"`
	PowerOfAttorneyID   int64  `json:"power_of_attorney_id,omitempty"`
	TimeOfConsentChange string `json:"time_of_consent_change,omitempty"`
}

// StationNotification is the onboarding notification payload.
type StationNotification struct {
	JobID         string `json:"job_id,omitempty"`
	CareRequestID int64  `json:"care_request_id,omitempty"`
}
