package selfschedule

import (
	"github.com/Rukio/nx-repo-sub005/internal/domain/carerequest"
)

// OssCareRequest is the self-schedule creation bundle: a care request
// plus the risk assessment answers and the medical power of attorney
// consent captured by the web flow.
type OssCareRequest struct {
	carerequest.CareRequest
	RiskAssessment *RiskAssessment `json:"riskAssessment,omitempty"`
	MpoaConsent    *MpoaConsent    `json:"mpoaConsent,omitempty"`
}

// RiskAssessment carries the screener outcome and the answered
// questions.
type RiskAssessment struct {
	ProtocolID     int64      `json:"protocolId,omitempty"`
	Score          float64    `json:"score,omitempty"`
	OverrideReason string     `json:"overrideReason,omitempty"`
	Responses      *Responses `json:"responses,omitempty"`
}

// Responses wraps the answered question list.
type Responses struct {
	Questions []Question `json:"questions"`
}

// Question is one answered screener question.
type Question struct {
	ID       int64   `json:"id,omitempty"`
	Question string  `json:"question,omitempty"`
	Answer   bool    `json:"answer"`
	Weight   float64 `json:"weight,omitempty"`
}

// MpoaConsent records whether a medical power of attorney consented on
// the patient's behalf.
type MpoaConsent struct {
	Consented           bool   `json:"consented"`
	PowerOfAttorneyID   int64  `json:"powerOfAttorneyId,omitempty"`
	TimeOfConsentChange string `json:"timeOfConsentChange,omitempty"`
}

// Notification asks Station to schedule a follow-up message about an
// in-progress care request.
type Notification struct {
	JobID         string `json:"jobId,omitempty"`
	CareRequestID int64  `json:"careRequestId,omitempty"`
}
