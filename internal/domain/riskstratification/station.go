package riskstratification

// StationProtocol is a protocol summary in Station's shape.
type StationProtocol struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	General  bool   `json:"general,omitempty"`
	HighRisk bool   `json:"high_risk,omitempty"`
}

// StationProtocolWithQuestions carries the question list.
type StationProtocolWithQuestions struct {
	StationProtocol
	Questions []StationProtocolQuestion `json:"questions,omitempty"`
}

type StationProtocolQuestion struct {
	ID      int64   `json:"id,omitempty"`
	Name    string  `json:"name,omitempty"`
	Order   int     `json:"order"`
	Weight  float64 `json:"weight,omitempty"`
	AllowNA bool    `json:"allow_na,omitempty"`
}

type StationSecondaryScreening struct {
	ID             int64  `json:"id,omitempty"`
	ProviderID     int64  `json:"provider_id,omitempty"`
	ApprovalStatus string `json:"approval_status,omitempty"`
	Note           string `json:"note,omitempty"`
}
