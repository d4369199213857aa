package catalog

// CategoryFacet is one top-level category with its subcategories.
type CategoryFacet struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}

// MaterialFacet is one selectable material.
type MaterialFacet struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PriceRangeFacet is one preset price bracket. Max of zero means unbounded.
type PriceRangeFacet struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max,omitempty"`
}

// Facets bundles the static sidebar metadata.
type Facets struct {
	Categories  []CategoryFacet   `json:"categories"`
	Materials   []MaterialFacet   `json:"materials"`
	PriceRanges []PriceRangeFacet `json:"price_ranges"`
}

var storefrontFacets = Facets{
	Categories: []CategoryFacet{
		{ID: "necklaces", Name: "Necklaces", Subcategories: []string{"pendant", "strand", "chain", "choker", "statement"}},
		{ID: "earrings", Name: "Earrings", Subcategories: []string{"stud", "hoop", "drop", "chandelier", "climber"}},
		{ID: "bracelets", Name: "Bracelets", Subcategories: []string{"tennis", "bangle", "charm", "cuff", "link"}},
		{ID: "rings", Name: "Rings", Subcategories: []string{"solitaire", "halo", "three-stone", "eternity", "statement"}},
	},
	Materials: []MaterialFacet{
		{ID: "gold", Name: "Gold"},
		{ID: "silver", Name: "Silver"},
		{ID: "rose-gold", Name: "Rose Gold"},
		{ID: "white-gold", Name: "White Gold"},
		{ID: "platinum", Name: "Platinum"},
		{ID: "pearl", Name: "Pearl"},
	},
	PriceRanges: []PriceRangeFacet{
		{ID: "under-7500", Name: "Under ₹7500", Min: 0, Max: 7499},
		{ID: "7500-15000", Name: "₹7500 - ₹15000", Min: 7500, Max: 14999},
		{ID: "15000-37500", Name: "₹15000 - ₹37500", Min: 15000, Max: 37499},
		{ID: "37500-plus", Name: "₹37500+", Min: 37500},
	},
}
