package models

// Roster is the ordered list of canonical names of one category.
type Roster struct {
	// Category is the roster this list belongs to.
	Category Category

	// Members are canonical names in insertion order (e.g., "joëlle", "jean junior").
	// Members are unique by normalized form.
	Members []string
}

// Rosters is a read-only snapshot of all three rosters taken before a run.
type Rosters struct {
	Girls   []string `yaml:"filles" mapstructure:"filles"`
	Boys    []string `yaml:"garcons" mapstructure:"garcons"`
	Coaches []string `yaml:"coachs" mapstructure:"coachs"`
}

// Get returns the members of the given category.
func (r Rosters) Get(c Category) []string {
	switch c {
	case CategoryGirls:
		return r.Girls
	case CategoryBoys:
		return r.Boys
	case CategoryCoaches:
		return r.Coaches
	default:
		return nil
	}
}

// Set replaces the members of the given category.
func (r *Rosters) Set(c Category, members []string) {
	switch c {
	case CategoryGirls:
		r.Girls = members
	case CategoryBoys:
		r.Boys = members
	case CategoryCoaches:
		r.Coaches = members
	}
}

// Ordered returns the rosters in resolution priority order.
func (r Rosters) Ordered() []Roster {
	out := make([]Roster, len(Categories))
	for i, c := range Categories {
		out[i] = Roster{Category: c, Members: r.Get(c)}
	}
	return out
}

// Size returns the total number of members across all rosters.
func (r Rosters) Size() int {
	return len(r.Girls) + len(r.Boys) + len(r.Coaches)
}
