package attendance

import (
	"sort"

	"github.com/mayobojhosue-coder/app-bloom/internal/models"
)

// Partition is the present/absent split of one roster for one run.
// Names are in display form and sorted.
type Partition struct {
	Category models.Category
	Present  []string
	Absent   []string
}

// Totals holds head counts.
type Totals struct {
	Present int
	Absent  int
}

// Totals returns the partition's head counts.
func (p Partition) Totals() Totals {
	return Totals{Present: len(p.Present), Absent: len(p.Absent)}
}

// CategoryMatch is a Match tagged with the roster that produced it.
type CategoryMatch struct {
	Match
	Category models.Category
}

// Result is the outcome of one reconciliation run.
type Result struct {
	// Partitions holds one entry per roster in resolution priority order.
	Partitions []Partition

	// Matches lists every resolved entry in input order.
	Matches []CategoryMatch

	// Unmatched lists entries no roster accepted, first mention only.
	Unmatched []string

	// Misses counts entries no roster accepted, repeats included.
	Misses int
}

// Partition returns the partition for category c.
func (r *Result) Partition(c models.Category) Partition {
	for _, p := range r.Partitions {
		if p.Category == c {
			return p
		}
	}
	return Partition{Category: c}
}

// Total sums the head counts of every roster.
func (r *Result) Total() Totals {
	var t Totals
	for _, p := range r.Partitions {
		pt := p.Totals()
		t.Present += pt.Present
		t.Absent += pt.Absent
	}
	return t
}

// Reconcile resolves every entry against the rosters and partitions each
// roster into present and absent members.
//
// Entries are tried against the rosters in models.Categories order and stop
// at the first roster that accepts them. Mentioning someone twice has no
// effect. Entries matching nothing are reported in Result.Unmatched and
// otherwise ignored.
func Reconcile(entries []string, rosters models.Rosters) *Result {
	ordered := rosters.Ordered()
	indexes := make([]*Index, len(ordered))
	// present[i] maps the normalized canonical name to its display form.
	present := make([]map[string]string, len(ordered))
	for i, roster := range ordered {
		indexes[i] = NewIndex(roster.Members)
		present[i] = make(map[string]string)
	}

	result := &Result{}
	unmatched := make(map[string]struct{})

	for _, entry := range entries {
		matched := false
		for i, idx := range indexes {
			m, ok := idx.Resolve(entry)
			if !ok {
				continue
			}
			present[i][Normalize(m.Name)] = DisplayForm(m.Name)
			result.Matches = append(result.Matches, CategoryMatch{Match: m, Category: ordered[i].Category})
			matched = true
			break
		}
		if matched {
			continue
		}
		result.Misses++
		key := Normalize(entry)
		if _, seen := unmatched[key]; !seen {
			unmatched[key] = struct{}{}
			result.Unmatched = append(result.Unmatched, entry)
		}
	}

	for i, roster := range ordered {
		result.Partitions = append(result.Partitions, partition(roster, present[i]))
	}
	return result
}

// partition splits roster by normalized identity. present maps normalized
// canonical names to display forms.
func partition(roster models.Roster, present map[string]string) Partition {
	absent := make(map[string]string)
	for _, member := range roster.Members {
		key := Normalize(member)
		if _, ok := present[key]; ok {
			continue
		}
		if _, seen := absent[key]; !seen {
			absent[key] = DisplayForm(member)
		}
	}

	return Partition{
		Category: roster.Category,
		Present:  sortedValues(present),
		Absent:   sortedValues(absent),
	}
}

func sortedValues(set map[string]string) []string {
	out := make([]string, 0, len(set))
	for _, v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
