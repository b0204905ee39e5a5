// ABOUTME: CLI entry point: fits a file or stdin into a bounded number of lines
// ABOUTME: Optional markdown rendering, terminal styling, and interactive viewer

package main

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"golang.org/x/text/language"

	"github.com/mauromedda/ellipsize/internal/log"
	"github.com/mauromedda/ellipsize/pkg/ellipsize"
)

func main() {
	args := parseFlags()
	if args.verbose {
		log.SetLevel(log.LevelDebug)
	}

	cfg, err := loadConfig(args.configPath)
	if err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}

	if err := run(args, cfg); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}

func run(args cliArgs, cfg Config) error {
	text, err := readInput(args.remaining())
	if err != nil {
		return err
	}

	width, height := terminalSize()
	if args.width > 0 {
		width = args.width
	}
	lines := args.lines
	if lines == 0 {
		lines = cfg.Lines
	}

	if args.markdown {
		text, err = renderMarkdown(text, width)
		if err != nil {
			return err
		}
	}
	if args.styled {
		text = styleText(text)
	}

	view := ellipsize.NewView(ellipsize.NewMonospace())
	view.SetEllipsisMarker(resolveMarker(args, cfg))
	if cfg.EndPunctuation != "" {
		re, err := regexp.Compile(cfg.EndPunctuation)
		if err != nil {
			return fmt.Errorf("end_punctuation: %w", err)
		}
		view.SetEndPunctuationPattern(re)
	}
	if lines > 0 {
		view.SetMaxLines(lines)
	}
	view.Resize(width, height)
	view.SetText(text)

	if args.interactive {
		return runInteractive(view)
	}

	remove, err := view.AddEllipsizeListener(func(ellipsized bool) {
		if ellipsized {
			log.Info("output truncated")
		}
	})
	if err != nil {
		return err
	}
	defer remove()

	out, err := view.DisplayText()
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	fmt.Println(out)
	return nil
}

// readInput reads the first positional argument as a file, or stdin when no
// arguments are given.
func readInput(paths []string) (string, error) {
	if len(paths) > 0 {
		data, err := os.ReadFile(paths[0])
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// resolveMarker picks the marker: flag, then config, then locale convention.
func resolveMarker(args cliArgs, cfg Config) string {
	if args.marker != "" {
		return args.marker
	}
	if cfg.Marker != "" {
		return cfg.Marker
	}
	locale := args.locale
	if locale == "" {
		locale = cfg.Locale
	}
	if locale != "" {
		if tag, err := language.Parse(locale); err == nil {
			return ellipsize.MarkerForLocale(tag)
		}
		log.Warn("unrecognized locale %q, using default marker", locale)
	}
	return ellipsize.Ellipsis
}

// renderMarkdown converts markdown to ANSI-styled terminal text.
func renderMarkdown(src string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	rendered, err := renderer.Render(src)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.TrimRight(rendered, "\n "), nil
}

var inputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)

// styleText wraps the input in terminal styling so the escape-preserving
// truncation path is exercised.
func styleText(s string) string {
	return inputStyle.Render(s)
}

// terminalSize returns the stdout terminal dimensions, or 80x24 when stdout
// is not a terminal.
func terminalSize() (width, height int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}
