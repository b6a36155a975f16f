// Package channelitem proxies Station's referral channel catalog. A
// channel item identifies where a care request came from (a partner,
// a campaign, a provider group) and carries the per-channel intake
// switches.
package channelitem

// ChannelItem is the public shape of a referral channel record.
type ChannelItem struct {
	ID                           int64  `json:"id,omitempty"`
	Name                         string `json:"name,omitempty"`
	ChannelID                    int64  `json:"channelId,omitempty"`
	ChannelName                  string `json:"channelName,omitempty"`
	TypeName                     string `json:"typeName,omitempty"`
	Agreement                    string `json:"agreement,omitempty"`
	SourceName                   string `json:"sourceName,omitempty"`
	ContactPerson                string `json:"contactPerson,omitempty"`
	PhoneNumber                  string `json:"phoneNumber,omitempty"`
	Email                        string `json:"email,omitempty"`
	Address                      string `json:"address,omitempty"`
	City                         string `json:"city,omitempty"`
	State                        string `json:"state,omitempty"`
	Zipcode                      string `json:"zipcode,omitempty"`
	CasePolicyNumber             string `json:"casePolicyNumber,omitempty"`
	EmrProviderName              string `json:"emrProviderName,omitempty"`
	PreferredPartner             bool   `json:"preferredPartner,omitempty"`
	PreferredPartnerDescription  string `json:"preferredPartnerDescription,omitempty"`
	BypassRiskStratification     bool   `json:"bypassRiskStratification,omitempty"`
	BypassScreeningProtocol      bool   `json:"bypassScreeningProtocol,omitempty"`
	SendClinicalNote             bool   `json:"sendClinicalNote,omitempty"`
	SendNoteAutomatically        bool   `json:"sendNoteAutomatically,omitempty"`
	BlendedBill                  bool   `json:"blendedBill,omitempty"`
	BlendedDescription           string `json:"blendedDescription,omitempty"`
	EraEnrollment                bool   `json:"eraEnrollment,omitempty"`
	BillingCityID                int64  `json:"billingCityId,omitempty"`
	MarketID                     int64  `json:"marketId,omitempty"`
	DeactivatedAt                string `json:"deactivatedAt,omitempty"`
	CreatedAt                    string `json:"createdAt,omitempty"`
	UpdatedAt                    string `json:"updatedAt,omitempty"`
}
