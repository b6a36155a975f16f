// Package riskstratification proxies the screening protocol catalog.
// A protocol is an ordered list of weighted yes/no questions the intake
// flow walks through to score a complaint.
package riskstratification

// Protocol is the public shape of a screening protocol summary.
type Protocol struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	General  bool   `json:"general,omitempty"`
	HighRisk bool   `json:"highRisk,omitempty"`
}

// ProtocolWithQuestions is a protocol plus its ordered question list.
type ProtocolWithQuestions struct {
	Protocol
	Questions []ProtocolQuestion `json:"questions"`
}

// ProtocolQuestion is one weighted yes/no question.
type ProtocolQuestion struct {
	ID      int64   `json:"id,omitempty"`
	Name    string  `json:"name,omitempty"`
	Order   int     `json:"order"`
	Weight  float64 `json:"weight,omitempty"`
	AllowNA bool    `json:"allowNa,omitempty"`
}

// SecondaryScreening is one completed secondary screening attached to a
// care request.
type SecondaryScreening struct {
	ID             int64  `json:"id,omitempty"`
	ProviderID     int64  `json:"providerId,omitempty"`
	ApprovalStatus string `json:"approvalStatus,omitempty"`
	Note           string `json:"note,omitempty"`
}
