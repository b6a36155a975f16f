package selfschedule

import (
	"github.com/Rukio/nx-repo-sub005/internal/domain/carerequest"
)

// OssToStation maps the self-schedule bundle to Station's shape. The
// risk assessment and its question list are optional at every level;
// absence at any level maps through without touching the missing piece.
func OssToStation(in *OssCareRequest) *OssStationCareRequest {
	if in == nil {
		return nil
	}
	out := &OssStationCareRequest{
		StationCareRequest: *carerequest.CareRequestToStation(&in.CareRequest),
	}
	if in.RiskAssessment != nil {
		out.RiskAssessment = &StationRiskAssessment{
			ProtocolID:     in.RiskAssessment.ProtocolID,
			Score:          in.RiskAssessment.Score,
			OverrideReason: in.RiskAssessment.OverrideReason,
			Responses:      responsesToStation(in.RiskAssessment.Responses),
		}
	}
	if in.MpoaConsent != nil {
		out.MpoaConsent = &StationMpoaConsent{
			Consented:           in.MpoaConsent.Consented,
			PowerOfAttorneyID:   in.MpoaConsent.PowerOfAttorneyID,
			TimeOfConsentChange: in.MpoaConsent.TimeOfConsentChange,
		}
	}
	return out
}

func responsesToStation(in *Responses) *StationResponses {
	if in == nil {
		return nil
	}
	questions := make([]StationQuestion, 0, len(in.Questions))
	for _, q := range in.Questions {
		questions = append(questions, StationQuestion{
			ID:       q.ID,
			Question: q.Question,
			Answer:   q.Answer,
			Weight:   q.Weight,
		})
	}
	return &StationResponses{Questions: questions}
}

// StationToOss maps Station's response back to the public bundle.
func StationToOss(in *OssStationCareRequest) (*OssCareRequest, error) {
	if in == nil {
		return nil, carerequest.ErrInputNotSpecified
	}
	base, err := carerequest.StationToCareRequest(&in.StationCareRequest)
	if err != nil {
		return nil, err
	}
	out := &OssCareRequest{CareRequest: *base}
	if in.RiskAssessment != nil {
		out.RiskAssessment = &RiskAssessment{
			ProtocolID:     in.RiskAssessment.ProtocolID,
			Score:          in.RiskAssessment.Score,
			OverrideReason: in.RiskAssessment.OverrideReason,
			Responses:      responsesFromStation(in.RiskAssessment.Responses),
		}
	}
	if in.MpoaConsent != nil {
		out.MpoaConsent = &MpoaConsent{
			Consented:           in.MpoaConsent.Consented,
			PowerOfAttorneyID:   in.MpoaConsent.PowerOfAttorneyID,
			TimeOfConsentChange: in.MpoaConsent.TimeOfConsentChange,
		}
	}
	return out, nil
}

func responsesFromStation(in *StationResponses) *Responses {
	if in == nil {
		return nil
	}
	questions := make([]Question, 0, len(in.Questions))
	for _, q := range in.Questions {
		questions = append(questions, Question{
			ID:       q.ID,
			Question: q.Question,
			Answer:   q.Answer,
			Weight:   q.Weight,
		})
	}
	return &Responses{Questions: questions}
}
