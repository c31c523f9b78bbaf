package domain

import (
	"errors"
	"math"
	"testing"
)

func TestIconTableCoversEveryType(t *testing.T) {
	for _, typ := range Types() {
		if Icon(typ) == "" {
			t.Errorf("no icon for type %q", typ)
		}
	}

	if got := Icon(TypeShopping); got != "assets/shop.png" {
		t.Fatalf("Icon(shopping) = %q, want assets/shop.png", got)
	}
}

func TestParseType(t *testing.T) {
	cases := []struct {
		tag     string
		want    POIType
		wantErr bool
	}{
		{"church", TypeChurch, false},
		{" Mountain ", TypeMountain, false},
		{"BUSINESS", TypeBusiness, false},
		{"castle", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.tag, func(t *testing.T) {
			got, err := ParseType(tc.tag)
			if tc.wantErr {
				if !errors.Is(err, ErrUnknownType) {
					t.Fatalf("ParseType(%q) err = %v, want ErrUnknownType", tc.tag, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseType(%q) unexpected error: %v", tc.tag, err)
			}
			if got != tc.want {
				t.Fatalf("ParseType(%q) = %q, want %q", tc.tag, got, tc.want)
			}
		})
	}
}

func TestNewMarker(t *testing.T) {
	poi := PointOfInterest{
		Name:        "Notre-Dame",
		Type:        TypeChurch,
		Coordinates: Coordinate{Latitude: 48.8530, Longitude: 2.3499},
	}

	m := NewMarker(3, poi)
	if m.Description != "" {
		t.Fatalf("description without distance = %q, want empty", m.Description)
	}
	if m.DistanceKm != nil {
		t.Fatalf("DistanceKm = %v, want nil", *m.DistanceKm)
	}
	if m.Index != 3 || m.Title != "Notre-Dame" || m.Icon != "assets/church.png" {
		t.Fatalf("unexpected marker identity: %+v", m)
	}
	if m.Anchor != (Anchor{X: 0.5, Y: 0.5}) {
		t.Fatalf("anchor = %+v, want centered", m.Anchor)
	}

	m = NewMarker(3, poi.WithDistance(343.5560603410416))
	if m.Description != "343.56km" {
		t.Fatalf("description = %q, want 343.56km", m.Description)
	}
}

func TestWithDistanceDoesNotMutateReceiver(t *testing.T) {
	poi := PointOfInterest{Name: "A", Type: TypeMonument}
	withD := poi.WithDistance(1.5)

	if poi.Distance != nil {
		t.Fatalf("receiver distance mutated: %v", *poi.Distance)
	}
	if withD.Distance == nil || *withD.Distance != 1.5 {
		t.Fatalf("copy distance = %v, want 1.5", withD.Distance)
	}
}

func TestProjectOrigin(t *testing.T) {
	p := Coordinate{}.Project()
	if math.Abs(p.X) > 1e-6 || math.Abs(p.Y) > 1e-6 {
		t.Fatalf("Project(0,0) = %+v, want origin", p)
	}
}

func TestProjectClampsPoles(t *testing.T) {
	cases := []struct {
		name  string
		lat   float64
		wantY float64
	}{
		{"south pole", -90, -0.5},
		{"north pole", 90, 0.5},
		{"map edge", MaxMercatorLatitude, 0.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Coordinate{Latitude: tc.lat}.Project()
			if math.IsInf(p.Y, 0) || math.IsNaN(p.Y) {
				t.Fatalf("Project(%v, 0).Y = %v, want finite", tc.lat, p.Y)
			}
			if math.Abs(p.Y-tc.wantY) > 1e-6 {
				t.Fatalf("Project(%v, 0).Y = %v, want %v", tc.lat, p.Y, tc.wantY)
			}
		})
	}
}

func TestNewMarkerAtPoleIsFinite(t *testing.T) {
	poi := PointOfInterest{Name: "Amundsen-Scott Station", Type: TypeAttraction, Coordinates: Coordinate{Latitude: -90}}

	m := NewMarker(0, poi.WithDistance(Distance(Coordinate{}, poi.Coordinates)))
	if math.IsInf(m.Projected.Y, 0) || math.IsNaN(m.Projected.Y) {
		t.Fatalf("projected = %+v, want finite", m.Projected)
	}
	if m.Description != "10007.54km" {
		t.Fatalf("description = %q, want 10007.54km", m.Description)
	}
}

func TestCoordinateFinite(t *testing.T) {
	if !(Coordinate{Latitude: -90, Longitude: 180}).Finite() {
		t.Fatal("pole reported as not finite")
	}
	if (Coordinate{Latitude: math.NaN()}).Finite() || (Coordinate{Longitude: math.Inf(1)}).Finite() {
		t.Fatal("non-finite coordinate reported as finite")
	}
}
