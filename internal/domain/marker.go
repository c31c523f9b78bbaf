package domain

// Asset reference per POI type, resolved at render time.
var icons = map[POIType]string{
	TypeChurch:     "assets/church.png",
	TypeMountain:   "assets/mountain.png",
	TypeShopping:   "assets/shop.png",
	TypeAttraction: "assets/attraction.png",
	TypeMonument:   "assets/monument.png",
	TypeBusiness:   "assets/business.png",
}

const (
	BannerTitle   = "Mappulator"
	BannerCaption = "Tap a destination on the map to see how far away it is!"
)

// Return the icon asset for t, or "" for a type outside the closed set.
func Icon(t POIType) string {
	return icons[t]
}

// Relative point of the icon placed on the coordinate.
type Anchor struct {
	X float64
	Y float64
}

// Render model for one point of interest on the map.
type Marker struct {
	Index       int
	Title       string
	Type        POIType
	Description string
	Icon        string
	Coordinate  Coordinate
	Anchor      Anchor
	DistanceKm  *float64
	Projected   Projected
}

// Static title and caption shown over the map.
type Banner struct {
	Title   string
	Caption string
}

func DefaultBanner() Banner {
	return Banner{Title: BannerTitle, Caption: BannerCaption}
}

// NewMarker builds the marker for the POI at position index.
// The description is the distance formatted as "<km>km", or empty while the
// distance is unknown.
func NewMarker(index int, p PointOfInterest) Marker {
	desc := ""
	if p.Distance != nil {
		desc = FormatKm(*p.Distance) + "km"
	}

	return Marker{
		Index:       index,
		Title:       p.Name,
		Type:        p.Type,
		Description: desc,
		Icon:        Icon(p.Type),
		Coordinate:  p.Coordinates,
		Anchor:      Anchor{X: 0.5, Y: 0.5},
		DistanceKm:  p.Distance,
		Projected:   p.Coordinates.Project(),
	}
}
