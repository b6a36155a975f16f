package sessioncache

// OSSUserCache is the per-user self-schedule document. It carries the
// caller's in-progress form state between requests; every field is
// optional because the flow can be abandoned at any step.
type OSSUserCache struct {
	Requester       *CachedRequester   `json:"requester,omitempty"`
	PatientInfo     *CachedPatientInfo `json:"patientInfo,omitempty"`
	PowerOfAttorney *PowerOfAttorney   `json:"powerOfAttorney,omitempty"`
	PreferredEta    *PreferredEta      `json:"preferredEta,omitempty"`
	Symptoms        string             `json:"symptoms,omitempty"`
	AddressID       int64              `json:"addressId,omitempty"`
	PatientID       int64              `json:"patientId,omitempty"`
	CareRequestID   int64              `json:"careRequestId,omitempty"`
	MarketID        int64              `json:"marketId,omitempty"`
	PlaceOfService  string             `json:"placeOfService,omitempty"`
}

// CachedRequester records who started the request.
type CachedRequester struct {
	FirstName         string `json:"firstName,omitempty"`
	LastName          string `json:"lastName,omitempty"`
	Phone             string `json:"phone,omitempty"`
	RelationToPatient string `json:"relationToPatient,omitempty"`
}

// CachedPatientInfo mirrors the patient step of the form.
type CachedPatientInfo struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Sex         string `json:"sex,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
}

// PowerOfAttorney captures the medical power of attorney contact.
type PowerOfAttorney struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// PreferredEta is the caller's requested visit window.
type PreferredEta struct {
	PatientPreferredEtaStart string `json:"patientPreferredEtaStart,omitempty"`
	PatientPreferredEtaEnd   string `json:"patientPreferredEtaEnd,omitempty"`
}
