// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --lines, --width, --marker, --locale, --markdown, --styled, --interactive

package main

import "flag"

type cliArgs struct {
	lines       int
	width       int
	marker      string
	locale      string
	markdown    bool
	styled      bool
	interactive bool
	configPath  string
	verbose     bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.IntVar(&args.lines, "lines", 0, "Maximum output lines (0 = as many as fit the terminal)")
	flag.IntVar(&args.width, "width", 0, "Output width in columns (0 = terminal width)")
	flag.StringVar(&args.marker, "marker", "", "Ellipsis marker (default resolved from locale)")
	flag.StringVar(&args.locale, "locale", "", "Locale tag used to resolve the marker (e.g. en, zh)")
	flag.BoolVar(&args.markdown, "markdown", false, "Render input as markdown before truncating")
	flag.BoolVar(&args.styled, "styled", false, "Apply terminal styling to the input")
	flag.BoolVar(&args.interactive, "interactive", false, "Interactive viewer that re-truncates on resize")
	flag.StringVar(&args.configPath, "config", "", "Path to a yaml config file")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")

	flag.Parse()
	return args
}

// remaining returns the non-flag command-line arguments.
func (a cliArgs) remaining() []string {
	return flag.Args()
}
