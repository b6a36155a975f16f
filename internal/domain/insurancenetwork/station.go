package insurancenetwork

// Sort enums used by the insurance service. Unrecognized public input
// collapses to unspecified rather than failing the search.
const (
	SortFieldUnspecified int32 = 0
	SortFieldName        int32 = 1
	SortFieldUpdatedAt   int32 = 2

	SortDirectionUnspecified int32 = 0
	SortDirectionAscending   int32 = 1
	SortDirectionDescending  int32 = 2
)

// ServicesInsuranceNetwork is the upstream shape of a payer network.
type ServicesInsuranceNetwork struct {
	ID                        int64                              `json:"id,omitempty"`
	Name                      string                             `json:"name,omitempty"`
	Notes                     string                             `json:"notes,omitempty"`
	PackageID                 int64                              `json:"package_id,omitempty"`
	InsuranceClassificationID int64                              `json:"insurance_classification_id,omitempty"`
	InsurancePayerID          int64                              `json:"insurance_payer_id,omitempty"`
	InsurancePlanID           int64                              `json:"insurance_plan_id,omitempty"`
	EligibilityCheckEnabled   bool                               `json:"eligibility_check_enabled,omitempty"`
	ProviderEnrollmentEnabled bool                               `json:"provider_enrollment_enabled,omitempty"`
	Active                    bool                               `json:"active,omitempty"`
	EmcCode                   string                             `json:"emc_code,omitempty"`
	Addresses                 []ServicesInsuranceNetworkAddress  `json:"addresses,omitempty"`
	Address                   *ServicesInsuranceNetworkAddress   `json:"address,omitempty"`
	CreatedAt                 string                             `json:"created_at,omitempty"`
	UpdatedAt                 string                             `json:"updated_at,omitempty"`
}

type ServicesInsuranceNetworkAddress struct {
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zipcode string `json:"zipcode,omitempty"`
	Address string `json:"address,omitempty"`
}

// ServicesSearchRequest is the upstream search input with numeric sort
// enums.
type ServicesSearchRequest struct {
	Search        string   `json:"search,omitempty"`
	PayerIDs      []int64  `json:"payer_ids,omitempty"`
	StateAbbrs    []string `json:"state_abbrs,omitempty"`
	SortField     int32    `json:"sort_field"`
	SortDirection int32    `json:"sort_direction"`
	Limit         int      `json:"limit,omitempty"`
	Offset        int      `json:"offset,omitempty"`
}

// StationInsuranceClassification is one classification row upstream.
type StationInsuranceClassification struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}
