package channelitem

// StationChannelItem is the same record in Station's snake_case shape.
type StationChannelItem struct {
	ID                           int64  `json:"id,omitempty"`
	Name                         string `json:"name,omitempty"`
	ChannelID                    int64  `json:"channel_id,omitempty"`
	ChannelName                  string `json:"channel_name,omitempty"`
	TypeName                     string `json:"type_name,omitempty"`
	Agreement                    string `json:"agreement,omitempty"`
	SourceName                   string `json:"source_name,omitempty"`
	ContactPerson                string `json:"contact_person,omitempty"`
	PhoneNumber                  string `json:"phone_number,omitempty"`
	Email                        string `json:"email,omitempty"`
	Address                      string `json:"address,omitempty"`
	City                         string `json:"city,omitempty"`
	State                        string `json:"state,omitempty"`
	Zipcode                      string `json:"zipcode,omitempty"`
	CasePolicyNumber             string `json:"case_policy_number,omitempty"`
	EmrProviderName              string `json:"emr_provider_name,omitempty"`
	PreferredPartner             bool   `json:"preferred_partner,omitempty"`
	PreferredPartnerDescription  string `json:"preferred_partner_description,omitempty"`
	BypassRiskStratification     bool   `json:"bypass_risk_stratification,omitempty"`
	BypassScreeningProtocol      bool   `json:"bypass_screening_protocol,omitempty"`
	SendClinicalNote             bool   `json:"send_clinical_note,omitempty"`
	SendNoteAutomatically        bool   `json:"send_note_automatically,omitempty"`
	BlendedBill                  bool   `json:"blended_bill,omitempty"`
	BlendedDescription           string `json:"blended_description,omitempty"`
	EraEnrollment                bool   `json:"era_enrollment,omitempty"`
	BillingCityID                int64  `json:"billing_city_id,omitempty"`
	MarketID                     int64  `json:"market_id,omitempty"`
	DeactivatedAt                string `json:"deactivated_at,omitempty"`
	CreatedAt                    string `json:"created_at,omitempty"`
	UpdatedAt                    string `json:"updated_at,omitempty"`
}
