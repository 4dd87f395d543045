package models

// Venue is static reference data about a meeting space. Limitations of "NIL"
// means none recorded.
type Venue struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Module      string `json:"module"`
	Capacity    int    `json:"capacity"`
	AVFacility  string `json:"av_facility"`
	Limitations string `json:"limitations"`
	Suitability string `json:"suitability"`
	Comment     string `json:"comment"`
}
