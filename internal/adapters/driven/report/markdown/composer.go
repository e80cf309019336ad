// Package markdown renders a resolved candidate as a markdown report.
package markdown

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mpfoley73/landmarks/internal/core/domain"
	"github.com/mpfoley73/landmarks/internal/core/ports/driven"
)

// Ensure Composer implements the interface.
var _ driven.ReportComposer = (*Composer)(nil)

// unknownToken is what an absent field renders as. The report always
// shows every row; a missing value is stated, not hidden.
const unknownToken = "Unknown"

// Composer renders candidate reports as markdown.
type Composer struct{}

// NewComposer creates a markdown report composer.
func NewComposer() *Composer {
	return &Composer{}
}

// Compose renders the candidate. Absent optional fields render as the
// literal token "Unknown"; they are never invented or left blank.
func (c *Composer) Compose(_ context.Context, cand domain.Candidate) (string, error) {
	title := cand.DisplayTitle()
	if title == "" {
		title = unknownToken
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "- **Name**: %s\n", orUnknown(cand.Title))
	fmt.Fprintf(&b, "- **Address**: %s\n", orUnknown(cand.Address))
	fmt.Fprintf(&b, "- **Coordinates**: %s\n", coordinates(cand))
	fmt.Fprintf(&b, "- **Year built**: %s\n", yearString(cand.Year))
	fmt.Fprintf(&b, "- **Record ID**: %s\n", orUnknown(cand.ID))
	fmt.Fprintf(&b, "- **Source**: %s\n", sourceString(cand.Source))
	fmt.Fprintf(&b, "- **Score**: %s\n", scoreString(cand.Score))

	return b.String(), nil
}

func orUnknown(s *string) string {
	if s == nil || *s == "" {
		return unknownToken
	}
	return *s
}

func coordinates(cand domain.Candidate) string {
	if !cand.HasCoordinates() {
		return unknownToken
	}
	return fmt.Sprintf("%.6f, %.6f", *cand.Lat, *cand.Lon)
}

func yearString(year *int) string {
	if year == nil {
		return unknownToken
	}
	return strconv.Itoa(*year)
}

func sourceString(source string) string {
	if source == "" {
		return unknownToken
	}
	return source
}

func scoreString(score *float64) string {
	if score == nil {
		return unknownToken
	}
	return strconv.FormatFloat(*score, 'f', -1, 64)
}
