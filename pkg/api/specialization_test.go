package api

import (
	"encoding/json"
	"testing"
)

func TestSpecialization_UnmarshalEnvelope(t *testing.T) {
	payload := `{"type":"MAID","inputs":{"bedrooms":3,"bathrooms":2,"has_pets":true,"pet_count":1}}`

	var spec Specialization
	if err := json.Unmarshal([]byte(payload), &spec); err != nil {
		t.Fatal(err)
	}
	if spec.Type != BidTypeMaid {
		t.Fatalf("type = %q, want MAID", spec.Type)
	}
	if spec.Maid == nil || spec.Maid.Bedrooms != 3 || !spec.Maid.HasPets {
		t.Fatalf("maid inputs = %+v", spec.Maid)
	}
	if spec.Carpet != nil || spec.Window != nil {
		t.Fatal("only the tagged variant may be populated")
	}
}

func TestSpecialization_JanitorialNeedsNoInputs(t *testing.T) {
	var spec Specialization
	if err := json.Unmarshal([]byte(`{"type":"JANITORIAL"}`), &spec); err != nil {
		t.Fatal(err)
	}
	if spec.Type != BidTypeJanitorial {
		t.Fatalf("type = %q, want JANITORIAL", spec.Type)
	}
}

func TestSpecialization_MissingInputsRejected(t *testing.T) {
	var spec Specialization
	if err := json.Unmarshal([]byte(`{"type":"CARPET"}`), &spec); err == nil {
		t.Fatal("expected error for variant without inputs")
	}
}

func TestSpecialization_UnknownTypeRejected(t *testing.T) {
	var spec Specialization
	if err := json.Unmarshal([]byte(`{"type":"CHIMNEY","inputs":{}}`), &spec); err == nil {
		t.Fatal("expected error for unknown bid type")
	}
}

func TestSpecialization_MarshalRoundTrip(t *testing.T) {
	spec := Specialization{
		Type: BidTypeWindow,
		Window: &WindowInputs{
			PaneCountInterior: 12,
			PaneCountExterior: 6,
			IncludesScreens:   true,
			Stories:           3,
		},
	}

	raw, err := json.Marshal(spec)
	if err != nil {
		t.Fatal(err)
	}
	var decoded Specialization
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Window == nil || decoded.Window.PaneCountInterior != 12 || decoded.Window.Stories != 3 {
		t.Fatalf("round trip lost data: %+v", decoded.Window)
	}
}

func TestBidSnapshot_TotalSquareFootage(t *testing.T) {
	s := BidSnapshot{Areas: []Area{
		{SquareFootage: 2000, Quantity: 1},
		{SquareFootage: 150, Quantity: 4},
	}}
	if got := s.TotalSquareFootage(); got != 2600 {
		t.Fatalf("total sqft = %v, want 2600", got)
	}
}
