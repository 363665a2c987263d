package stats

// Stats is a derived aggregate recomputed on demand from the order set.
type Stats struct {
	Today     int `json:"today"`
	ThisWeek  int `json:"this_week"`
	ThisMonth int `json:"this_month"`
	Total     int `json:"total"`
}
