package insurancenetwork

import (
	"encoding/json"
	"testing"
)

func TestSearchEnumDefaults(t *testing.T) {
	out := SearchToServices(&SearchRequest{})
	if out.SortField != SortFieldUnspecified || out.SortDirection != SortDirectionUnspecified {
		t.Errorf("got sort_field=%d sort_direction=%d, want 0/0", out.SortField, out.SortDirection)
	}

	out = SearchToServices(nil)
	if out.SortField != 0 || out.SortDirection != 0 {
		t.Errorf("nil input: got sort_field=%d sort_direction=%d, want 0/0", out.SortField, out.SortDirection)
	}
}

func TestSearchEnumTranslation(t *testing.T) {
	tests := []struct {
		field, direction string
		wantField        int32
		wantDirection    int32
	}{
		{"name", "asc", SortFieldName, SortDirectionAscending},
		{"update", "desc", SortFieldUpdatedAt, SortDirectionDescending},
		{"created", "up", SortFieldUnspecified, SortDirectionUnspecified},
		{"NAME", "ASC", SortFieldUnspecified, SortDirectionUnspecified},
	}
	for _, tt := range tests {
		out := SearchToServices(&SearchRequest{SortField: tt.field, SortDirection: tt.direction})
		if out.SortField != tt.wantField {
			t.Errorf("sortField %q = %d, want %d", tt.field, out.SortField, tt.wantField)
		}
		if out.SortDirection != tt.wantDirection {
			t.Errorf("sortDirection %q = %d, want %d", tt.direction, out.SortDirection, tt.wantDirection)
		}
	}
}

func TestSearchEnumsAlwaysSerialized(t *testing.T) {
	body, err := json.Marshal(SearchToServices(&SearchRequest{Search: "aetna"}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(m["sort_field"]) != "0" || string(m["sort_direction"]) != "0" {
		t.Errorf("body = %s, want explicit zero enums", body)
	}
}

func TestClaimsAddressOnlyWhenUpstreamAddressNonEmpty(t *testing.T) {
	out := ServicesToNetwork(&ServicesInsuranceNetwork{ID: 1})
	if out.ClaimsAddress != nil {
		t.Errorf("absent upstream address should map to no claims address, got %+v", out.ClaimsAddress)
	}

	out = ServicesToNetwork(&ServicesInsuranceNetwork{
		ID:      1,
		Address: &ServicesInsuranceNetworkAddress{},
	})
	if out.ClaimsAddress != nil {
		t.Errorf("empty upstream address should map to no claims address, got %+v", out.ClaimsAddress)
	}

	out = ServicesToNetwork(&ServicesInsuranceNetwork{
		ID:      1,
		Address: &ServicesInsuranceNetworkAddress{City: "Denver", State: "CO", Zipcode: "80205"},
	})
	if out.ClaimsAddress == nil || out.ClaimsAddress.City != "Denver" {
		t.Errorf("claims address = %+v", out.ClaimsAddress)
	}
}

func TestAddressesDefaultToEmpty(t *testing.T) {
	out := ServicesToNetwork(&ServicesInsuranceNetwork{ID: 1})
	if out.Addresses == nil {
		t.Fatal("addresses should be an empty slice, not nil")
	}
	body, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(m["addresses"]) != "[]" {
		t.Errorf("addresses = %s, want []", m["addresses"])
	}
}

func TestNetworkRoundTrip(t *testing.T) {
	in := &ServicesInsuranceNetwork{
		ID:                        9,
		Name:                      "Aetna West",
		PackageID:                 4,
		InsuranceClassificationID: 2,
		InsurancePayerID:          11,
		EligibilityCheckEnabled:   true,
		Active:                    true,
		EmcCode:                   "EMC-1",
		Addresses: []ServicesInsuranceNetworkAddress{
			{City: "Denver", State: "CO", Zipcode: "80205", Address: "303 Main St"},
		},
		Address: &ServicesInsuranceNetworkAddress{City: "Phoenix", State: "AZ"},
	}

	mid := ServicesToNetwork(in)
	back := NetworkToServices(mid)
	if back.Name != in.Name || back.PackageID != in.PackageID || back.EmcCode != in.EmcCode {
		t.Errorf("round trip mismatch: %+v", back)
	}
	if len(back.Addresses) != 1 || back.Addresses[0].City != "Denver" {
		t.Errorf("addresses = %+v", back.Addresses)
	}
	if back.Address == nil || back.Address.City != "Phoenix" {
		t.Errorf("address = %+v", back.Address)
	}
}
