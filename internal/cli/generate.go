package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cheets/pubg-observer-generator/pkg/config"
	"github.com/cheets/pubg-observer-generator/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
// Flags override the corresponding observer.toml settings.
type generateOpts struct {
	configPath  string   // config file path
	contentRoot string   // root of the league/season/division tree
	outputRoot  string   // where generated bundles land
	fonts       []string // preferred overlay font files, tried in order
	fontSize    float64  // overlay point size
	workers     int      // concurrent logo analysis bound
	noCache     bool     // disable the color cache
	skipZip     bool     // leave the Observer directory unzipped
}

// generateCommand creates the generate command, the tool's main operation.
//
// With three arguments it processes <content>/<league>/<season>/<division>
// directly. With no arguments it scans the content tree and offers an
// interactive division picker.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate [league] [season] [division]",
		Short: "Generate the observer bundle for a division",
		Long: `Generate processes a division directory (Slots.txt plus team logos) into
an Observer bundle: numbered team icons with the slot stamped in the corner,
a TeamInfo.csv manifest with unique short names and accent colors, and a zip
ready to drop into the overlay.

Run without arguments to pick the division interactively.`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 3 {
				return fmt.Errorf("expected <league> <season> <division>, or no arguments for interactive selection")
			}
			return c.runGenerate(cmd.Context(), args, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", config.DefaultPath, "config file")
	cmd.Flags().StringVarP(&opts.contentRoot, "content", "c", "", "content root directory (default \"content\")")
	cmd.Flags().StringVarP(&opts.outputRoot, "output", "o", "", "output directory (default <content>/generated)")
	cmd.Flags().StringSliceVar(&opts.fonts, "font", nil, "preferred overlay font file(s), tried in order")
	cmd.Flags().Float64Var(&opts.fontSize, "font-size", 0, "overlay font size in points")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "concurrent logo analyses (default GOMAXPROCS)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the logo color cache")
	cmd.Flags().BoolVar(&opts.skipZip, "no-zip", false, "skip creating the zip archive")

	return cmd
}

// runGenerate merges config and flags, resolves the target division, and runs
// the pipeline.
func (c *CLI) runGenerate(ctx context.Context, args []string, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	popts := pipeline.Options{
		ContentRoot: firstNonEmpty(opts.contentRoot, cfg.ContentRoot),
		OutputRoot:  firstNonEmpty(opts.outputRoot, cfg.OutputRoot),
		Workers:     cfg.Workers,
		FontPaths:   cfg.Overlay.Fonts,
		FontSize:    cfg.Overlay.FontSize,
		SkipArchive: opts.skipZip,
		Logger:      logger,
	}
	if opts.workers > 0 {
		popts.Workers = opts.workers
	}
	if len(opts.fonts) > 0 {
		popts.FontPaths = opts.fonts
	}
	if opts.fontSize > 0 {
		popts.FontSize = opts.fontSize
	}

	if len(args) == 3 {
		popts.League, popts.Season, popts.Division = args[0], args[1], args[2]
	} else {
		sel, err := pickDivision(popts.ContentRoot)
		if err != nil {
			return err
		}
		popts.League, popts.Season, popts.Division = sel.League, sel.Season, sel.Division
	}

	prog := newProgress(logger)
	result, err := c.newRunner(opts.noCache).Execute(ctx, popts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Processed %s", popts.BaseName()))

	printTeamTable(result.Teams)
	printRunStats(result.Stats, len(result.SkippedTeams))
	for _, name := range result.SkippedTeams {
		printWarning("Skipped %s: no logo found", name)
	}

	printSuccess("Generated files in: %s", result.OutputDir)
	printFile(result.ManifestPath)
	if result.ArchivePath != "" {
		printSuccess("Zip archive created: %s", result.ArchivePath)
	}
	printDetail("Overlay font: %s", result.FontSource)

	return nil
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
