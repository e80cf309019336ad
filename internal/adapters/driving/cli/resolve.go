package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mpfoley73/landmarks/internal/core/domain"
)

var (
	resolveImagePath string
	resolveLat       float64
	resolveLon       float64
	resolveJSON      bool
)

// Styles for human-readable output.
var (
	matchStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))
	noMatchStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF"))
	sourceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [query]",
	Short: "Resolve a query to a single building record",
	Long: `Resolves a query to a single best-guess building record.

Exactly one input form must be given:
  - a free-text query (name or address) as the argument
  - a photograph via --image
  - a geographic point via --lat and --lon

Examples:
  landmarks resolve "Terminal Tower"
  landmarks resolve "230 W Huron Rd, Cleveland"
  landmarks resolve --image photo.jpg
  landmarks resolve --lat 41.4995 --lon -81.6940`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveImagePath, "image", "", "path to a query photograph")
	resolveCmd.Flags().Float64Var(&resolveLat, "lat", 0, "query point latitude")
	resolveCmd.Flags().Float64Var(&resolveLon, "lon", 0, "query point longitude")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "output the resolution as JSON")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	if resolverService == nil {
		return errors.New("resolver service not configured")
	}

	query, err := buildQuery(cmd, args)
	if err != nil {
		return err
	}

	resolution, err := resolverService.Resolve(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("resolve failed: %w", err)
	}

	if resolveJSON {
		return outputResolutionJSON(cmd, resolution)
	}
	return outputResolution(cmd, resolution)
}

// buildQuery maps the flags and argument to exactly one query modality.
func buildQuery(cmd *cobra.Command, args []string) (domain.Query, error) {
	hasText := len(args) == 1
	hasImage := resolveImagePath != ""
	hasPoint := cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon")

	given := 0
	for _, b := range []bool{hasText, hasImage, hasPoint} {
		if b {
			given++
		}
	}
	if given != 1 {
		return domain.Query{}, errors.New("provide exactly one of: a text query, --image, or --lat/--lon")
	}

	switch {
	case hasImage:
		return domain.ImageQuery(resolveImagePath), nil
	case hasPoint:
		if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lon") {
			return domain.Query{}, errors.New("--lat and --lon must be given together")
		}
		return domain.LocationQuery(resolveLat, resolveLon), nil
	default:
		return domain.TextQuery(args[0]), nil
	}
}

func outputResolutionJSON(cmd *cobra.Command, r *domain.Resolution) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal resolution: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputResolution(cmd *cobra.Command, r *domain.Resolution) error {
	if !r.Matched() {
		cmd.Println(noMatchStyle.Render("No match found."))
		outputSourceStatuses(cmd, r.Meta)
		return nil
	}

	cmd.Println(matchStyle.Render("Match: " + r.Candidate.DisplayTitle()))
	cmd.Println()
	if r.Report != "" {
		cmd.Println(r.Report)
	}
	outputSourceStatuses(cmd, r.Meta)
	return nil
}

// outputSourceStatuses prints the per-source outcome trail so users can
// see which lookups contributed and why losing sources lost.
func outputSourceStatuses(cmd *cobra.Command, meta map[string]string) {
	var lines []string
	for k, v := range meta {
		source, ok := strings.CutSuffix(k, ".status")
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %s: %s", source, v))
	}
	if len(lines) == 0 {
		return
	}
	sort.Strings(lines)

	cmd.Println(sourceStyle.Render("Sources:"))
	for _, line := range lines {
		cmd.Println(sourceStyle.Render(line))
	}
}
