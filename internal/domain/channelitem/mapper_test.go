package channelitem

import (
	"reflect"
	"testing"
)

func TestNilMapsToNil(t *testing.T) {
	if out := StationToChannelItem(nil); out != nil {
		t.Errorf("got %+v", out)
	}
	if out := ChannelItemToStation(nil); out != nil {
		t.Errorf("got %+v", out)
	}
}

func TestRoundTrip(t *testing.T) {
	in := &ChannelItem{
		ID:                          12,
		Name:                        "Front Range Urgent Care",
		ChannelID:                   3,
		ChannelName:                 "Provider Group",
		TypeName:                    "clinic",
		Agreement:                   "signed",
		SourceName:                  "station",
		ContactPerson:               "Dana Ames",
		PhoneNumber:                 "3035550100",
		Email:                       "intake@example.com",
		Address:                     "303 Main St",
		City:                        "Denver",
		State:                       "CO",
		Zipcode:                     "80205",
		CasePolicyNumber:            "CP-9",
		EmrProviderName:             "athena",
		PreferredPartner:            true,
		PreferredPartnerDescription: "priority routing",
		BypassRiskStratification:    true,
		BypassScreeningProtocol:     false,
		SendClinicalNote:            true,
		SendNoteAutomatically:       true,
		BlendedBill:                 true,
		BlendedDescription:          "facility + professional",
		EraEnrollment:               true,
		BillingCityID:               5,
		MarketID:                    160,
		DeactivatedAt:               "",
		CreatedAt:                   "2024-01-02T00:00:00Z",
		UpdatedAt:                   "2026-06-30T00:00:00Z",
	}

	got := StationToChannelItem(ChannelItemToStation(in))
	if !reflect.DeepEqual(got, in) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, in)
	}
}

func TestListMapsEmptyToEmpty(t *testing.T) {
	out := StationToChannelItems(nil)
	if out == nil || len(out) != 0 {
		t.Errorf("got %#v, want empty slice", out)
	}
}

func TestListMapsEachItem(t *testing.T) {
	out := StationToChannelItems([]StationChannelItem{
		{ID: 1, Name: "a"},
		{ID: 2, Name: "b"},
	})
	if len(out) != 2 || out[0].ID != 1 || out[1].Name != "b" {
		t.Errorf("got %+v", out)
	}
}
