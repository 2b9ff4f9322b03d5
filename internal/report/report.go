// Package report renders a reconciliation result as the copyable French
// attendance report.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mayobojhosue-coder/app-bloom/internal/attendance"
	"github.com/mayobojhosue-coder/app-bloom/internal/models"
)

// DefaultTitle is used when Options.Title is empty.
const DefaultTitle = "Liste de présence de Bloom"

// DateLayout is the day format printed in the report (DD/MM/YYYY).
const DateLayout = "02/01/2006"

// List marks.
const (
	PresentMark = "✓"
	AbsentMark  = "✗"
)

const emptyList = "Aucun"

// Options controls the report header.
type Options struct {
	Title string
	Date  time.Time
}

// Format renders result. Present people from every roster are listed
// together; absentees are split between members and coaches.
func Format(result *attendance.Result, opts Options) string {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	var present, absent []string
	for _, p := range result.Partitions {
		present = append(present, p.Present...)
		if p.Category != models.CategoryCoaches {
			absent = append(absent, p.Absent...)
		}
	}
	sort.Strings(present)
	sort.Strings(absent)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", title)
	fmt.Fprintf(&b, "Date : %s\n", opts.Date.Format(DateLayout))

	writeList(&b, "Présents:", present, PresentMark)
	writeList(&b, "Absents:", absent, AbsentMark)
	writeList(&b, "Coachs absents:", result.Partition(models.CategoryCoaches).Absent, AbsentMark)

	b.WriteString("\nTotaux :\n")
	for _, c := range models.Categories {
		t := result.Partition(c).Totals()
		fmt.Fprintf(&b, "%s : %s\n", c.Label(), counts(c, t))
	}
	total := result.Total()
	fmt.Fprintf(&b, "Total général : %d présents / %d absents\n", total.Present, total.Absent)

	return b.String()
}

// List renders one list the way the report does, "Aucun" when empty.
func List(names []string, mark string) string {
	if len(names) == 0 {
		return emptyList
	}
	lines := make([]string, len(names))
	for i, n := range names {
		lines[i] = mark + " " + n
	}
	return strings.Join(lines, "\n")
}

func writeList(b *strings.Builder, heading string, names []string, mark string) {
	fmt.Fprintf(b, "\n%s\n%s\n", heading, List(names, mark))
}

// counts agrees the adjectives with the roster: the girls' roster is feminine.
func counts(c models.Category, t attendance.Totals) string {
	if c == models.CategoryGirls {
		return fmt.Sprintf("%d présentes / %d absentes", t.Present, t.Absent)
	}
	return fmt.Sprintf("%d présents / %d absents", t.Present, t.Absent)
}
