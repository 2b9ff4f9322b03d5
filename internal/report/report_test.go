package report

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/mayobojhosue-coder/app-bloom/internal/attendance"
	"github.com/mayobojhosue-coder/app-bloom/internal/models"
)

func TestFormat(t *testing.T) {
	rosters := models.Rosters{
		Girls:   []string{"danielle", "camille", "joëlle"},
		Boys:    []string{"patrick", "jeremie"},
		Coaches: []string{"noelvine", "aurel"},
	}
	result := attendance.Reconcile(attendance.ParseEntries("camile\nPatrick\naurel\nquelqu'un"), rosters)

	got := Format(result, Options{Date: time.Date(2026, time.March, 7, 18, 0, 0, 0, time.UTC)})

	want := `Liste de présence de Bloom
Date : 07/03/2026

Présents:
✓ Aurel
✓ Camille
✓ Patrick

Absents:
✗ Danielle
✗ Jeremie
✗ Joëlle

Coachs absents:
✗ Noelvine

Totaux :
Filles : 1 présentes / 2 absentes
Garçons : 1 présents / 1 absents
Coachs : 1 présents / 1 absents
Total général : 3 présents / 4 absents
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Format() mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatEmptyLists(t *testing.T) {
	rosters := models.Rosters{Girls: []string{"danielle"}}
	result := attendance.Reconcile([]string{"danielle"}, rosters)

	got := Format(result, Options{Title: "Séance du samedi", Date: time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)})

	assert.True(t, strings.HasPrefix(got, "Séance du samedi\nDate : 31/01/2026\n"))
	assert.Contains(t, got, "\nAbsents:\nAucun\n")
	assert.Contains(t, got, "\nCoachs absents:\nAucun\n")
	assert.Contains(t, got, "Filles : 1 présentes / 0 absentes\n")
	assert.Contains(t, got, "Total général : 1 présents / 0 absents\n")
}

func TestList(t *testing.T) {
	assert.Equal(t, "Aucun", List(nil, PresentMark))
	assert.Equal(t, "✓ Ana\n✓ Holy", List([]string{"Ana", "Holy"}, PresentMark))
	assert.Equal(t, "✗ Yvan", List([]string{"Yvan"}, AbsentMark))
}
