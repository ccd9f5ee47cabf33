// Package pkg provides the core libraries for observer overlay asset generation.
//
// # Overview
//
// Observergen turns a division's roster and team logos into the bundle a PUBG
// esports observer overlay consumes. The pkg directory is organized into:
//
//  1. [shortname] - Unique four-character team tag resolution
//  2. [roster] / [palette] / [overlay] - Input parsing and image work
//  3. [manifest] / [archive] - Bundle outputs (TeamInfo.csv, zip)
//  4. [pipeline] - Orchestration of the full run
//  5. [cache] / [config] / [fonts] / [errors] - Supporting infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	Slots.txt + logos/
//	         ↓
//	    [roster] package (ordered team list)
//	         ↓
//	    [shortname] package (unique tags)
//	         ↓
//	    [palette] + [overlay] packages (accent colors, numbered icons)
//	         ↓
//	    [manifest] + [archive] packages (TeamInfo.csv, Observer zip)
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    League:   "league",
//	    Season:   "s15",
//	    Division: "div4",
//	})
//
// Everything reproducible about a bundle lives under pkg; the CLI in
// internal/cli is presentation only.
package pkg
