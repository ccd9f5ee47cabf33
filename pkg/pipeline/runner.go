package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cheets/pubg-observer-generator/pkg/archive"
	"github.com/cheets/pubg-observer-generator/pkg/cache"
	apperrors "github.com/cheets/pubg-observer-generator/pkg/errors"
	"github.com/cheets/pubg-observer-generator/pkg/fonts"
	"github.com/cheets/pubg-observer-generator/pkg/manifest"
	"github.com/cheets/pubg-observer-generator/pkg/overlay"
	"github.com/cheets/pubg-observer-generator/pkg/palette"
	"github.com/cheets/pubg-observer-generator/pkg/roster"
	"github.com/cheets/pubg-observer-generator/pkg/shortname"
)

// Runner executes the asset pipeline.
type Runner struct {
	cache cache.Cache
}

// NewRunner creates a pipeline runner. A nil cache disables color caching.
func NewRunner(c cache.Cache) *Runner {
	if c == nil {
		c = noopCache()
	}
	return &Runner{cache: c}
}

// Execute runs the full pipeline and returns the processed bundle.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid options")
	}

	runID := uuid.NewString()
	logger := opts.Logger.With("run", runID[:8])

	divisionDir := opts.DivisionDir()
	if info, err := os.Stat(divisionDir); err != nil || !info.IsDir() {
		return nil, apperrors.New(apperrors.ErrCodeDirNotFound,
			"directory not found: %s (expected content/<league>/<season>/<division>)", divisionDir)
	}

	slotsPath := filepath.Join(divisionDir, SlotsFileName)
	if _, err := os.Stat(slotsPath); err != nil {
		return nil, apperrors.New(apperrors.ErrCodeRosterNotFound, "file not found: %s", slotsPath)
	}

	teams, err := roster.Load(slotsPath, logger)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRoster, err, "load %s", slotsPath)
	}
	if len(teams.Teams) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRoster, "roster %s has no teams", slotsPath)
	}
	logger.Infof("Loaded %d teams from %s", len(teams.Teams), slotsPath)

	tags := shortname.ResolveConflicts(teams.Names())
	warnDuplicateTags(logger, tags)

	result := &Result{
		RunID:       runID,
		OutputDir:   filepath.Join(opts.OutputRoot, opts.BaseName()),
		ObserverDir: filepath.Join(opts.OutputRoot, opts.BaseName(), "Observer"),
	}
	teamIconDir := filepath.Join(result.ObserverDir, "TeamIcon")
	if err := os.MkdirAll(teamIconDir, 0755); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "create %s", teamIconDir)
	}

	face, fontSource := fonts.Find(opts.FontPaths, opts.FontSize)
	result.FontSource = fontSource
	logger.Debugf("Overlay font: %s", fontSource)

	analyses, skipped := r.analyzeLogos(ctx, logger, &opts, divisionDir, teams.Teams, &result.Stats)
	result.SkippedTeams = skipped
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Sequential pass: colors are claimed in roster order so duplicate
	// nudging is reproducible, then the slot number goes onto the icon.
	stampStart := time.Now()
	allocator := palette.NewAllocator()
	for _, a := range analyses {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		team := Team{
			Team:          a.team,
			ShortName:     tags[a.team.Name],
			ImageFileName: a.team.Number + ".png",
			Color:         allocator.Claim(a.color),
			LogoPath:      a.logoPath,
		}

		dst := filepath.Join(teamIconDir, team.ImageFileName)
		if err := overlay.StampFile(a.logoPath, dst, team.Number, face); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeImageEncode, err, "stamp slot %s", team.Number)
		}
		logger.Debugf("Team %s (%s): color %s, icon %s", team.Name, team.ShortName, team.Color.Hex(), dst)

		result.Teams = append(result.Teams, team)
	}
	result.Stats.StampTime = time.Since(stampStart)
	result.Stats.TeamCount = len(result.Teams)

	result.ManifestPath = filepath.Join(result.ObserverDir, ManifestFileName)
	if err := manifest.WriteFile(result.ManifestPath, result.Rows()); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "write manifest")
	}
	logger.Infof("Wrote %s (%d teams)", result.ManifestPath, len(result.Teams))

	if !opts.SkipArchive {
		archiveStart := time.Now()
		result.ArchivePath = filepath.Join(result.OutputDir, archive.DefaultName(opts.BaseName()))
		if err := archive.ZipDir(result.ObserverDir, result.ArchivePath); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeArchive, err, "archive %s", result.ObserverDir)
		}
		result.Stats.ArchiveTime = time.Since(archiveStart)
		logger.Infof("Created archive %s", result.ArchivePath)
	}

	return result, nil
}

// analysis is the per-team outcome of the parallel color extraction stage.
type analysis struct {
	team     roster.Team
	logoPath string
	color    palette.RGB
}

// analyzeLogos extracts the dominant color of every team logo, up to
// opts.Workers at a time. Teams without a logo are returned in skipped.
// The returned analyses preserve roster order.
func (r *Runner) analyzeLogos(ctx context.Context, logger *log.Logger, opts *Options, divisionDir string, teams []roster.Team, stats *Stats) ([]analysis, []string) {
	start := time.Now()

	results := make([]*analysis, len(teams))
	var skipped []string
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i, team := range teams {
		logoPath, ok := findLogo(divisionDir, team.Number+".png")
		if !ok {
			logger.Warnf("Could not find image %s.png in logos/ or TeamIcon/ for %q", team.Number, team.Name)
			mu.Lock()
			skipped = append(skipped, team.Name)
			mu.Unlock()
			continue
		}

		i, team, logoPath := i, team, logoPath
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			color, hit, err := r.dominantColor(gctx, logger, logoPath)
			if err != nil {
				logger.Warnf("Skipping %q: %s", team.Name, err)
				mu.Lock()
				skipped = append(skipped, team.Name)
				mu.Unlock()
				return nil
			}
			if hit {
				mu.Lock()
				stats.ColorCacheHits++
				mu.Unlock()
			}
			results[i] = &analysis{team: team, logoPath: logoPath, color: color}
			return nil
		})
	}
	_ = g.Wait()

	var out []analysis
	for _, a := range results {
		if a != nil {
			out = append(out, *a)
		}
	}
	stats.AnalyzeTime = time.Since(start)
	return out, skipped
}

// cachedColor is the JSON shape stored in the color cache.
type cachedColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// dominantColor returns the logo's accent color, consulting the cache first.
// The second result reports a cache hit.
func (r *Runner) dominantColor(ctx context.Context, logger *log.Logger, logoPath string) (palette.RGB, bool, error) {
	data, err := os.ReadFile(logoPath)
	if err != nil {
		return palette.RGB{}, false, apperrors.Wrap(apperrors.ErrCodeLogoNotFound, err, "read %s", logoPath)
	}

	key := cache.ColorKey(data)
	if cached, hit, err := r.cache.Get(ctx, key); err == nil && hit {
		var c cachedColor
		if json.Unmarshal(cached, &c) == nil {
			return palette.RGB{R: c.R, G: c.G, B: c.B}, true, nil
		}
	}

	img, err := palette.Open(logoPath)
	if err != nil {
		return palette.RGB{}, false, apperrors.Wrap(apperrors.ErrCodeImageDecode, err, "decode %s", logoPath)
	}

	color, acceptable := palette.Dominant(img)
	if !acceptable {
		// Monochrome logo: the pick fell back to the most saturated color
		// overall, which may be near black or white. Not cached, so a fixed
		// logo is re-analyzed immediately.
		logger.Warnf("No acceptable colors found in %s, using most saturated fallback", logoPath)
		return color, false, nil
	}

	if encoded, err := json.Marshal(cachedColor{R: color.R, G: color.G, B: color.B}); err == nil {
		_ = r.cache.Set(ctx, key, encoded, 0)
	}
	return color, false, nil
}

// findLogo locates a team's logo, preferring logos/ over TeamIcon/ inside the
// division directory.
func findLogo(divisionDir, fileName string) (string, bool) {
	for _, dir := range []string{"logos", "TeamIcon"} {
		path := filepath.Join(divisionDir, dir, fileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// warnDuplicateTags surfaces the resolver's documented worst case: the
// unconditional fallback can hand two teams the same tag on pathological
// rosters. That is a data problem to fix in Slots.txt, not a crash.
func warnDuplicateTags(logger *log.Logger, tags map[string]string) {
	owners := make(map[string]string, len(tags))
	for name, tag := range tags {
		if prev, dup := owners[tag]; dup {
			logger.Warnf("Short name %q is shared by %q and %q; rename one team", tag, prev, name)
			continue
		}
		owners[tag] = name
	}
}
