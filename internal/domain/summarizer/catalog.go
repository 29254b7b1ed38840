package summarizer

import "slices"

// Model is one selectable backend model.
type Model struct {
	ID   string `json:"id"`
	Slow bool   `json:"slow"`
}

// Catalog lists the selectable models and the submission defaults.
type Catalog struct {
	Models        []Model  `json:"models"`
	DefaultModel  string   `json:"defaultModel"`
	DefaultLength Length   `json:"defaultLength"`
	Lengths       []Length `json:"lengths"`
}

// NewCatalog builds the catalog; slow entries must also be listed in available.
func NewCatalog(available, slow []string, defaultModel string, defaultLength Length) Catalog {
	models := make([]Model, 0, len(available))
	for _, id := range available {
		models = append(models, Model{ID: id, Slow: slices.Contains(slow, id)})
	}
	return Catalog{
		Models:        models,
		DefaultModel:  defaultModel,
		DefaultLength: defaultLength,
		Lengths:       slices.Clone(Lengths),
	}
}

// Has reports whether id is a selectable model.
func (c Catalog) Has(id string) bool {
	return slices.ContainsFunc(c.Models, func(m Model) bool { return m.ID == id })
}

// Next returns the model following id, wrapping around. Unknown ids yield the first model.
func (c Catalog) Next(id string) string {
	if len(c.Models) == 0 {
		return id
	}
	idx := slices.IndexFunc(c.Models, func(m Model) bool { return m.ID == id })
	return c.Models[(idx+1)%len(c.Models)].ID
}

// NextLength cycles short, medium, long.
func NextLength(l Length) Length {
	idx := slices.Index(Lengths, l)
	return Lengths[(idx+1)%len(Lengths)]
}
