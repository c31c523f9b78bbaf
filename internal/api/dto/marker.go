package dto

type CoordinateResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type AnchorResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ProjectedResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type MarkerResponse struct {
	Index       int                `json:"index"`
	Title       string             `json:"title"`
	Type        string             `json:"type"`
	Description string             `json:"description"`
	Icon        string             `json:"icon"`
	Coordinate  CoordinateResponse `json:"coordinate"`
	Anchor      AnchorResponse     `json:"anchor"`
	DistanceKm  *float64           `json:"distance_km"`
	Projected   ProjectedResponse  `json:"projected"`
}

type ListMarkersResponse struct {
	Markers []MarkerResponse `json:"markers"`
}

type ObserverResponse struct {
	Observer *CoordinateResponse `json:"observer"`
}

type BannerResponse struct {
	Title   string `json:"title"`
	Caption string `json:"caption"`
}
