// Package report renders the comparison results for human consumption and
// hosts the flat-file side outputs: per-year debug dumps and the
// normalized-CSV export.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ahrav/go-tally/internal/domain"
)

// RendererConfig controls the comparison table layout.
type RendererConfig struct {
	// BucketLabels maps each geographic bucket to its block heading.
	BucketLabels map[domain.Bucket]string

	// OthersLabel is the row label for the summed other qualifiers.
	OthersLabel string

	// FirstColumnWidth and ColumnWidth are the padded cell widths in
	// runes for the label column and each year column.
	FirstColumnWidth int
	ColumnWidth      int
}

// DefaultRendererConfig returns the reference layout: capital block first,
// then other regions, then abroad, 38/33-rune columns.
func DefaultRendererConfig() RendererConfig {
	return RendererConfig{
		BucketLabels: map[domain.Bucket]string{
			domain.BucketCapital: "Tbilisi (all districts) averaged",
			domain.BucketOther:   "Other regions averaged",
			domain.BucketAbroad:  "Abroad",
		},
		OthersLabel:      "Sum of others pass electoral threshold",
		FirstColumnWidth: 38,
		ColumnWidth:      33,
	}
}

// Renderer writes the year-over-year comparison as text tables: one block
// per geographic bucket plus a participation-totals block. Vote counts
// are comma-grouped; deltas against the preceding year are appended in
// parentheses from the second year on.
type Renderer struct {
	config  RendererConfig
	printer *message.Printer
	w       io.Writer
}

// NewRenderer creates a renderer writing to w with the given layout.
func NewRenderer(w io.Writer, config RendererConfig) *Renderer {
	return &Renderer{
		config:  config,
		printer: message.NewPrinter(language.English),
		w:       w,
	}
}

// Render writes the full comparison.
func (r *Renderer) Render(comp *domain.Comparison) error {
	for i, bucket := range domain.Buckets {
		if i > 0 {
			if _, err := fmt.Fprintln(r.w); err != nil {
				return err
			}
		}
		if err := r.renderBucket(bucket, comp); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(r.w); err != nil {
		return err
	}
	return r.renderParticipation(comp.Participation)
}

func (r *Renderer) renderBucket(bucket domain.Bucket, comp *domain.Comparison) error {
	rows := comp.Rows[bucket]

	head := []string{r.config.BucketLabels[bucket]}
	for _, row := range rows {
		head = append(head, fmt.Sprintf("%d %s (%s%% threshold)",
			row.Year, row.Type, formatFloat(row.ThresholdPercent)))
	}
	if err := r.writeHeader(head); err != nil {
		return err
	}

	trackedCells := []string{comp.TrackedSubject + ": " + comp.TrackedName}
	othersCells := []string{r.config.OthersLabel}
	for _, row := range rows {
		trackedCells = append(trackedCells, r.formatFigures(row.Tracked))
		othersCells = append(othersCells, r.formatFigures(row.Others))
	}
	if _, err := fmt.Fprintln(r.w, r.formatRow(trackedCells)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.w, r.formatRow(othersCells))
	return err
}

func (r *Renderer) renderParticipation(rows []domain.ParticipationRow) error {
	head := []string{"Voter participation"}
	cells := []string{"Total valid"}
	for _, row := range rows {
		head = append(head, fmt.Sprintf("%d %s", row.Year, row.Type))
		cell := r.printer.Sprintf("%d", row.TotalValid)
		if row.HasDelta {
			cell += fmt.Sprintf(" (%s)", r.signedCount(row.Delta))
		}
		cells = append(cells, cell)
	}
	if err := r.writeHeader(head); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.w, r.formatRow(cells))
	return err
}

func (r *Renderer) writeHeader(cells []string) error {
	line := r.formatRow(cells)
	if _, err := fmt.Fprintln(r.w, line); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.w, strings.Repeat("-", utf8.RuneCountInString(line)))
	return err
}

// formatRow joins cells with " | " separators, padding each to its
// configured width in runes so multi-byte labels stay aligned.
func (r *Renderer) formatRow(cells []string) string {
	var b strings.Builder
	b.WriteString(pad(cells[0], r.config.FirstColumnWidth))
	for _, cell := range cells[1:] {
		b.WriteString(" | ")
		b.WriteString(pad(cell, r.config.ColumnWidth))
	}
	return b.String()
}

// formatFigures renders one comparison cell: "count pct%" with an
// optional "(+Δcount +Δpct%)" suffix.
func (r *Renderer) formatFigures(f domain.Figures) string {
	cell := r.printer.Sprintf("%d", f.Count) + " " + formatFloat(round2(f.Percent)) + "%"
	if f.HasDelta {
		cell += fmt.Sprintf(" (%s %s%%)", r.signedCount(f.CountDelta), signedFloat(round2(f.PercentDelta)))
	}
	return cell
}

// signedCount formats a comma-grouped count with an explicit sign.
func (r *Renderer) signedCount(d int) string {
	if d < 0 {
		return "-" + r.printer.Sprintf("%d", -d)
	}
	return "+" + r.printer.Sprintf("%d", d)
}

func signedFloat(v float64) string {
	s := formatFloat(v)
	if v < 0 {
		return s
	}
	return "+" + s
}

// formatFloat renders a float without trailing zeros (5 -> "5",
// 42.5 -> "42.5").
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
