// Package pipeline runs the full observer asset generation flow.
//
// The pipeline turns a division's content directory into a distributable
// overlay bundle in four stages:
//
//  1. Roster: load Slots.txt into an ordered team list.
//  2. Tags: resolve every team name to a unique short tag.
//  3. Assets: per team, extract the logo's accent color (parallel, cached)
//     and stamp the slot number onto the logo (sequential, so the color
//     uniqueness walk stays deterministic).
//  4. Package: write TeamInfo.csv and zip the Observer directory.
//
// The CLI is a thin wrapper around this package; everything that matters for
// reproducing a bundle lives here.
package pipeline

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cheets/pubg-observer-generator/pkg/cache"
	"github.com/cheets/pubg-observer-generator/pkg/manifest"
	"github.com/cheets/pubg-observer-generator/pkg/overlay"
	"github.com/cheets/pubg-observer-generator/pkg/palette"
	"github.com/cheets/pubg-observer-generator/pkg/roster"
)

// SlotsFileName is the roster file expected inside the division directory.
const SlotsFileName = "Slots.txt"

// ManifestFileName is the CSV written into the Observer directory.
const ManifestFileName = "TeamInfo.csv"

// Options configures a pipeline run.
type Options struct {
	// League, Season, and Division select the content subdirectory
	// <ContentRoot>/<League>/<Season>/<Division>.
	League   string
	Season   string
	Division string

	// ContentRoot is the root of the content tree. Defaults to "content".
	ContentRoot string

	// OutputRoot is where generated bundles land.
	// Defaults to <ContentRoot>/generated.
	OutputRoot string

	// Workers bounds concurrent logo analysis. Defaults to GOMAXPROCS.
	Workers int

	// FontPaths is the preferred overlay font list. Empty uses the builtin
	// preference order.
	FontPaths []string

	// FontSize is the overlay point size. Defaults to overlay.FontSize.
	FontSize float64

	// SkipArchive leaves the Observer directory unzipped.
	SkipArchive bool

	// Logger receives progress output. Defaults to a discarding logger.
	Logger *log.Logger

	validated bool
}

// ValidateAndSetDefaults checks required fields and fills in defaults.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.League == "" || o.Season == "" || o.Division == "" {
		return fmt.Errorf("league, season, and division are required")
	}
	if o.ContentRoot == "" {
		o.ContentRoot = "content"
	}
	if o.OutputRoot == "" {
		o.OutputRoot = filepath.Join(o.ContentRoot, "generated")
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.FontSize <= 0 {
		o.FontSize = overlay.FontSize
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// BaseName is the <league>-<season>-<division> bundle name used for the
// output directory and the zip file.
func (o *Options) BaseName() string {
	return fmt.Sprintf("%s-%s-%s", o.League, o.Season, o.Division)
}

// DivisionDir is the input directory holding Slots.txt and the logos.
func (o *Options) DivisionDir() string {
	return filepath.Join(o.ContentRoot, o.League, o.Season, o.Division)
}

// Team is one fully processed roster entry.
type Team struct {
	roster.Team

	// ShortName is the resolved unique tag.
	ShortName string

	// ImageFileName is the logo file name inside the bundle
	// (<TeamNumber>.png).
	ImageFileName string

	// Color is the team's accent color after uniqueness adjustment.
	Color palette.RGB

	// LogoPath is the source logo the assets were derived from.
	LogoPath string
}

// Row converts the team to its manifest representation.
func (t Team) Row() manifest.Row {
	return manifest.Row{
		TeamNumber:    t.Number,
		TeamName:      t.Name,
		TeamShortName: t.ShortName,
		ImageFileName: t.ImageFileName,
		TeamColor:     t.Color.Hex(),
	}
}

// Result holds the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in logs.
	RunID string

	// Teams are the processed entries in roster order, excluding teams whose
	// logo was missing.
	Teams []Team

	// SkippedTeams lists roster entries dropped for lack of a logo.
	SkippedTeams []string

	// OutputDir is the bundle directory (<OutputRoot>/<BaseName>).
	OutputDir string

	// ObserverDir is the Observer directory inside OutputDir.
	ObserverDir string

	// ManifestPath is the TeamInfo.csv location.
	ManifestPath string

	// ArchivePath is the zip location, empty when archiving was skipped.
	ArchivePath string

	// FontSource names the font file used for slot numbers ("builtin" when
	// no preferred font was found).
	FontSource string

	Stats Stats
}

// Rows returns the manifest rows in roster order.
func (r *Result) Rows() []manifest.Row {
	rows := make([]manifest.Row, len(r.Teams))
	for i, t := range r.Teams {
		rows[i] = t.Row()
	}
	return rows
}

// Stats contains timing and cache information for a run.
type Stats struct {
	TeamCount      int
	AnalyzeTime    time.Duration // parallel color extraction
	StampTime      time.Duration // overlay rendering
	ArchiveTime    time.Duration
	ColorCacheHits int
}

// noopCache is used when the runner is constructed without a cache.
func noopCache() cache.Cache { return cache.NewNullCache() }
