package types

// Deficit is the shortfall between a plan's total requirement and the real
// on-hand quantity for one canonical item and unit. Computed on demand;
// never stored as authoritative state.
type Deficit struct {
	Item string     `json:"item"`
	Unit UnitFamily `json:"unit"`
	Need int64      `json:"need"`
	Have int64      `json:"have"`
	Buy  int64      `json:"buy"`
}
