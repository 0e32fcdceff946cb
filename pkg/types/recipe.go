package types

// Ingredient is one raw recipe line as authored in the catalog. Item and
// unit are free text; canonicalization happens at requirement resolution.
type Ingredient struct {
	Item     string `json:"item"`
	Quantity int64  `json:"quantity"`
	Unit     string `json:"unit"`
}

// Recipe is one dish definition from the catalog. The catalog is external
// collaborator data; the planning core reads it and never writes it.
type Recipe struct {
	Name        string       `json:"name"`
	Cuisine     string       `json:"cuisine"`
	Diet        string       `json:"diet"`
	PrepTimeMin int          `json:"prep_time_min"`
	CookTimeMin int          `json:"cook_time_min"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []string     `json:"steps"`
}

// TotalTime returns prep plus cook time in minutes.
func (r *Recipe) TotalTime() int {
	return r.PrepTimeMin + r.CookTimeMin
}

// Validate checks that the recipe is well-formed enough to store.
func (r *Recipe) Validate() error {
	if r.Name == "" {
		return ErrInvalidItem
	}
	return nil
}
