// Package insurancenetwork proxies the insurance network catalog used
// by the payer administration screens.
package insurancenetwork

// InsuranceNetwork is the public shape of a payer network.
type InsuranceNetwork struct {
	ID                        int64                     `json:"id,omitempty"`
	Name                      string                    `json:"name,omitempty"`
	Notes                     string                    `json:"notes,omitempty"`
	PackageID                 int64                     `json:"packageId,omitempty"`
	InsuranceClassificationID int64                     `json:"insuranceClassificationId,omitempty"`
	InsurancePayerID          int64                     `json:"insurancePayerId,omitempty"`
	InsurancePlanID           int64                     `json:"insurancePlanId,omitempty"`
	EligibilityCheckEnabled   bool                      `json:"eligibilityCheckEnabled,omitempty"`
	ProviderEnrollmentEnabled bool                      `json:"providerEnrollmentEnabled,omitempty"`
	Active                    bool                      `json:"active,omitempty"`
	EmcCode                   string                    `json:"emcCode,omitempty"`
	Addresses                 []InsuranceNetworkAddress `json:"addresses"`
	ClaimsAddress             *InsuranceNetworkAddress  `json:"claimsAddress,omitempty"`
	CreatedAt                 string                    `json:"createdAt,omitempty"`
	UpdatedAt                 string                    `json:"updatedAt,omitempty"`
}

// InsuranceNetworkAddress is one mailing address attached to a network.
type InsuranceNetworkAddress struct {
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zipcode string `json:"zipcode,omitempty"`
	Address string `json:"address,omitempty"`
}

// SearchRequest is the public search input. Sort field and direction
// are free strings on the wire and collapse to closed numeric enums
// upstream.
type SearchRequest struct {
	Search        string   `json:"search,omitempty"`
	PayerIDs      []int64  `json:"payerIds,omitempty"`
	StateAbbrs    []string `json:"stateAbbrs,omitempty"`
	SortField     string   `json:"sortField,omitempty"`
	SortDirection string   `json:"sortDirection,omitempty"`
	Limit         int      `json:"-"`
	Offset        int      `json:"-"`
}

// InsuranceClassification is one row of the classification catalog.
type InsuranceClassification struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}
