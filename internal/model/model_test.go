package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNewVesselAssignsShortID(t *testing.T) {
	v := NewVessel("Carrier", 100, 60)
	if len(v.ID) != 8 {
		t.Errorf("expected 8 character ID, got %q", v.ID)
	}
	if v.Rotation != Rotate0 {
		t.Errorf("expected new vessel to be unrotated, got %v", v.Rotation)
	}
	other := NewVessel("Carrier", 100, 60)
	if v.ID == other.ID {
		t.Error("expected distinct IDs for distinct vessels")
	}
}

func TestVesselRememberAndRevert(t *testing.T) {
	v := NewVessel("", 10, 10)
	v.MoveTo(5, 7)
	v.Remember()
	v.MoveTo(50, 70)
	v.Revert()
	if v.X != 5 || v.Y != 7 {
		t.Errorf("expected revert to (5, 7), got (%v, %v)", v.X, v.Y)
	}
}

func TestRectHelpers(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	if r.Right() != 40 || r.Bottom() != 60 {
		t.Errorf("unexpected edges: right=%v bottom=%v", r.Right(), r.Bottom())
	}
	cx, cy := r.Center()
	if cx != 25 || cy != 40 {
		t.Errorf("unexpected center (%v, %v)", cx, cy)
	}
	if !r.Contains(10, 20) || !r.Contains(40, 60) {
		t.Error("corners should be contained")
	}
	if r.Contains(41, 30) {
		t.Error("point right of rect should not be contained")
	}
}

func TestScenarioValidate(t *testing.T) {
	valid := Scenario{
		Anchorage: Anchorage{Width: 25, Height: 25},
		Fleets: []Fleet{
			{Designation: "Carrier", Count: 1, Dimensions: Dimensions{Width: 5, Height: 5}},
		},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid scenario, got %v", err)
	}

	cases := map[string]Scenario{
		"zero anchorage": {Anchorage: Anchorage{Width: 0, Height: 10}},
		"negative count": {
			Anchorage: Anchorage{Width: 10, Height: 10},
			Fleets:    []Fleet{{Designation: "A", Count: -1, Dimensions: Dimensions{Width: 1, Height: 1}}},
		},
		"zero dimensions": {
			Anchorage: Anchorage{Width: 10, Height: 10},
			Fleets:    []Fleet{{Designation: "A", Count: 1}},
		},
	}
	for name, s := range cases {
		if err := s.Validate(); !errors.Is(err, ErrInvalidScenario) {
			t.Errorf("%s: expected ErrInvalidScenario, got %v", name, err)
		}
	}
}

func TestScenarioJSONMatchesRemotePayload(t *testing.T) {
	payload := `{
		"anchorageSize": {"width": 12, "height": 15},
		"fleets": [
			{"singleShipDimensions": {"width": 6, "height": 5}, "shipDesignation": "LNG Unit", "shipCount": 2},
			{"singleShipDimensions": {"width": 3, "height": 12}, "shipDesignation": "Science & Engineering Ship", "shipCount": 5}
		]
	}`
	var s Scenario
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if s.Anchorage.Width != 12 || s.Anchorage.Height != 15 {
		t.Errorf("unexpected anchorage %+v", s.Anchorage)
	}
	if len(s.Fleets) != 2 || s.Fleets[1].Dimensions.Height != 12 || s.Fleets[0].Designation != "LNG Unit" {
		t.Errorf("unexpected fleets %+v", s.Fleets)
	}
	if s.TotalVessels() != 7 {
		t.Errorf("expected 7 vessels, got %d", s.TotalVessels())
	}
}

func TestTrackingEntryComplete(t *testing.T) {
	if (TrackingEntry{Placed: 1, Total: 2}).Complete() {
		t.Error("1 of 2 should not be complete")
	}
	if !(TrackingEntry{Placed: 2, Total: 2}).Complete() {
		t.Error("2 of 2 should be complete")
	}
}
