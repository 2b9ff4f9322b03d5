package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayobojhosue-coder/app-bloom/internal/models"
)

var seedRosters = models.Rosters{
	Girls: []string{
		"danielle", "camille", "charis", "chrismaëlla", "sarah", "helena",
		"joëlle", "kenza", "leila", "maïva", "mariska", "sainte", "angèle",
		"melea", "ketlyn", "romaine", "dalhia", "holy", "ana", "josé",
	},
	Boys: []string{
		"jhosue", "iknan", "ighal", "patrick", "jeremie darlick", "jeremie",
		"alain emmanuel", "arthur", "nathan", "stephen", "yvan",
	},
	Coaches: []string{"noelvine", "jean junior", "valérie", "aurel"},
}

func smallRosters() models.Rosters {
	return models.Rosters{
		Girls:   []string{"Danielle", "Camille"},
		Boys:    []string{"Patrick"},
		Coaches: []string{"Aurel"},
	}
}

func TestReconcileCorrectsTypos(t *testing.T) {
	result := Reconcile(ParseEntries("danielle\ncamile"), models.Rosters{Girls: []string{"Danielle", "Camille"}})

	girls := result.Partition(models.CategoryGirls)
	assert.Equal(t, []string{"Camille", "Danielle"}, girls.Present)
	assert.Empty(t, girls.Absent)
	assert.Empty(t, result.Unmatched)
}

func TestReconcileUnknownEntry(t *testing.T) {
	rosters := smallRosters()
	result := Reconcile([]string{"Unknown Person"}, rosters)

	for _, p := range result.Partitions {
		assert.Empty(t, p.Present, p.Category)
	}
	assert.Equal(t, []string{"Camille", "Danielle"}, result.Partition(models.CategoryGirls).Absent)
	assert.Equal(t, []string{"Patrick"}, result.Partition(models.CategoryBoys).Absent)
	assert.Equal(t, []string{"Aurel"}, result.Partition(models.CategoryCoaches).Absent)
	assert.Equal(t, []string{"Unknown Person"}, result.Unmatched)
	assert.Empty(t, result.Matches)
}

func TestReconcileEmptyInput(t *testing.T) {
	result := Reconcile(nil, seedRosters)

	require.Len(t, result.Partitions, 3)
	for _, p := range result.Partitions {
		assert.Empty(t, p.Present)
		assert.Len(t, p.Absent, len(seedRosters.Get(p.Category)))
	}
	assert.Equal(t, Totals{Present: 0, Absent: seedRosters.Size()}, result.Total())
}

func TestReconcileEmptyRosters(t *testing.T) {
	result := Reconcile([]string{"danielle"}, models.Rosters{})

	for _, p := range result.Partitions {
		assert.Empty(t, p.Present)
		assert.Empty(t, p.Absent)
	}
	assert.Equal(t, []string{"danielle"}, result.Unmatched)
}

func TestReconcilePriorityOrder(t *testing.T) {
	rosters := models.Rosters{
		Girls:   []string{"Jeremie"},
		Boys:    []string{"jérémie"},
		Coaches: []string{"JEREMIE"},
	}

	result := Reconcile([]string{"jeremie"}, rosters)

	assert.Equal(t, []string{"Jeremie"}, result.Partition(models.CategoryGirls).Present)
	assert.Empty(t, result.Partition(models.CategoryBoys).Present)
	assert.Equal(t, []string{"Jérémie"}, result.Partition(models.CategoryBoys).Absent)
	assert.Empty(t, result.Partition(models.CategoryCoaches).Present)

	require.Len(t, result.Matches, 1)
	assert.Equal(t, models.CategoryGirls, result.Matches[0].Category)
}

func TestReconcileFallsThroughRosters(t *testing.T) {
	result := Reconcile([]string{"patrik", "AUREL"}, smallRosters())

	assert.Equal(t, []string{"Patrick"}, result.Partition(models.CategoryBoys).Present)
	assert.Equal(t, []string{"Aurel"}, result.Partition(models.CategoryCoaches).Present)
	assert.Equal(t, Totals{Present: 2, Absent: 2}, result.Total())
}

func TestReconcileDuplicatesCollapse(t *testing.T) {
	rosters := smallRosters()

	once := Reconcile([]string{"camille"}, rosters)
	many := Reconcile([]string{"camille", "Camille", "camile", "CAMILLE"}, rosters)

	assert.Equal(t, once.Partitions, many.Partitions)
	assert.Len(t, many.Matches, 4)
}

func TestReconcileAccentAndCase(t *testing.T) {
	for _, entry := range []string{"josé", "JOSE", "José"} {
		result := Reconcile([]string{entry}, seedRosters)
		assert.Equal(t, []string{"José"}, result.Partition(models.CategoryGirls).Present, entry)
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	entries := ParseEntries("danielle\ncamile\njeremi\nNoelvine\nsomeone else\nalain")

	first := Reconcile(entries, seedRosters)
	second := Reconcile(entries, seedRosters)

	assert.Equal(t, first, second)
}

func TestReconcilePartitionCoversRoster(t *testing.T) {
	inputs := []string{
		"",
		"danielle\ncamile",
		"jeremi\njeremie darlik\nalain\nsara",
		"JEAN JUNIOR\nvalerie\nAurel\nnoelvine",
		"Unknown Person\nkenza\nleïla\nholi",
	}

	for _, in := range inputs {
		result := Reconcile(ParseEntries(in), seedRosters)

		for _, p := range result.Partitions {
			present := normalizedSet(p.Present)
			absent := normalizedSet(p.Absent)

			for key := range present {
				assert.NotContains(t, absent, key, "input %q: %s both present and absent", in, key)
			}

			union := make(map[string]bool)
			for k := range present {
				union[k] = true
			}
			for k := range absent {
				union[k] = true
			}
			assert.Equal(t, normalizedSet(seedRosters.Get(p.Category)), union, "input %q: %s", in, p.Category)
		}
	}
}

func TestReconcileUnmatchedDeduplicated(t *testing.T) {
	result := Reconcile([]string{"nobody", "NOBODY", "danielle", "Nobody"}, smallRosters())

	assert.Equal(t, []string{"nobody"}, result.Unmatched)
	assert.Equal(t, 3, result.Misses)
}

func TestReconcileRecordsMatches(t *testing.T) {
	result := Reconcile([]string{"danielle", "camile"}, smallRosters())

	require.Len(t, result.Matches, 2)
	assert.True(t, result.Matches[0].Exact)
	assert.Equal(t, "Danielle", result.Matches[0].Name)
	assert.False(t, result.Matches[1].Exact)
	assert.Equal(t, "camile", result.Matches[1].Entry)
	assert.Equal(t, "Camille", result.Matches[1].Name)
}

func normalizedSet(names []string) map[string]bool {
	out := make(map[string]bool, len(names))
	for _, n := range names {
		out[Normalize(n)] = true
	}
	return out
}
