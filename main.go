package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"idseek/internal/binsym"
	"idseek/internal/config"
	"idseek/internal/content"
	"idseek/internal/domain"
	"idseek/internal/editor"
	"idseek/internal/index"
	"idseek/internal/refine"
	"idseek/internal/session"
	"idseek/internal/ui"
)

func main() {
	var (
		window     = flag.Int("e", -1, "extended search window: check N lines around each match for the remaining patterns")
		declMode   = flag.Bool("d", false, "keep only matches that look like declarations or definitions")
		defMode    = flag.Bool("D", false, "keep only matches that look like definitions (implies -d)")
		pathPrefix = flag.String("p", "", "restrict matches to paths under this prefix (globs allowed)")
		secondary  = flag.String("g", "", "keep only matches whose file also contains this symbol")
		plain      = flag.Bool("plain", false, "line-oriented interaction instead of the TUI")
		verbose    = flag.Bool("v", false, "verbose logging")
		editorProg = flag.String("editor", "", "editor program (overrides config)")
		initConfig = flag.Bool("init-config", false, "write a default config file and exit")
		build      = flag.Bool("build", false, "rebuild the identifier database in the current directory and exit")
		libSym     = flag.String("lib", "", "report which shared libraries define this symbol and exit")
	)
	flag.Usage = usage
	flag.Parse()

	setupLogging()

	// Load configuration and apply flag overrides
	configSvc := config.NewService()
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "idseek: %v\n", err)
		os.Exit(1)
	}
	if *verbose {
		cfg.Verbose = true
	}
	if *window >= 0 {
		cfg.Window = *window
	}
	if *editorProg != "" {
		cfg.Editor = *editorProg
	}

	// Handle interrupt signals
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	switch {
	case *initConfig:
		path, err := configSvc.WriteDefault()
		if err != nil {
			fmt.Fprintf(os.Stderr, "idseek: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("wrote", path)
		return
	case *build:
		dir, err := os.Getwd()
		if err == nil {
			err = index.BuildIndex(ctx, cfg.BuildTool, dir)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "idseek: %v\n", err)
			os.Exit(1)
		}
		return
	case *libSym != "":
		libs, err := binsym.Find(ctx, *libSym, cfg.LibraryPaths, cfg.Verbose)
		if err != nil {
			fmt.Fprintf(os.Stderr, "idseek: %v\n", err)
			os.Exit(1)
		}
		for _, lib := range libs {
			fmt.Println(lib)
		}
		if len(libs) == 0 {
			os.Exit(1)
		}
		return
	}

	patterns := domain.Patterns(flag.Args())
	if len(patterns) == 0 {
		usage()
		os.Exit(2)
	}

	// Wire the collaborators
	reader := content.NewReader(256)
	queries := index.NewQueryService(cfg.IndexTool, cfg.IndexArgs, cfg.Verbose)
	correlator := refine.NewCorrelator(reader, cfg.Window, cfg.Verbose)
	classifier := refine.NewClassifier(queries, reader)

	matches, err := initialMatches(ctx, patterns, *pathPrefix, *declMode, *defMode, queries, classifier)
	if err != nil {
		fmt.Fprintf(os.Stderr, "idseek: %v\n", err)
		os.Exit(1)
	}
	matches = correlator.Correlate(matches, patterns)
	if *secondary != "" {
		matches = refine.FilterByContent(reader, matches, *secondary)
	}
	if len(matches) == 0 {
		fmt.Fprintf(os.Stderr, "idseek: no matches for %s\n", strings.Join(patterns, " "))
		os.Exit(1)
	}

	selection, selected := runSession(session.New(matches, patterns), *plain)
	if !selected {
		return
	}

	builder := editor.NewBuilder(cfg.Editor, editor.VariantFor(cfg.EditorVariant, cfg.Editor))
	if err := editor.Launch(builder.Build(selection)); err != nil {
		fmt.Fprintf(os.Stderr, "idseek: %v\n", err)
		os.Exit(1)
	}
}

// initialMatches runs the anchor query, optionally through the
// declaration/definition classifier.
func initialMatches(ctx context.Context, patterns domain.Patterns, pathPrefix string, declMode, defMode bool, queries index.QueryService, classifier *refine.Classifier) (domain.MatchSet, error) {
	switch {
	case defMode:
		return classifier.FindDefinition(ctx, patterns.Anchor())
	case declMode:
		return classifier.FindDeclaration(ctx, patterns.Anchor(), pathPrefix)
	default:
		return queries.Query(ctx, patterns.Anchor(), pathPrefix)
	}
}

// runSession drives the refinement loop through the chosen front end.
func runSession(sess *session.Session, plain bool) (domain.Selection, bool) {
	if plain {
		return ui.RunPlain(sess, os.Stdin, os.Stdout, ui.PageFile)
	}

	model := ui.NewModel(sess, ui.PageFile)
	p := tea.NewProgram(model)
	model.SetProgram(p)
	final, err := p.Run()
	if err != nil {
		log.Printf("error running program: %v", err)
		fmt.Fprintf(os.Stderr, "idseek: %v\n", err)
		os.Exit(1)
	}
	return final.(*ui.Model).Outcome()
}

// setupLogging sends the log to the user cache dir; the terminal belongs
// to the match browser.
func setupLogging() {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		log.SetOutput(os.Stderr)
		return
	}
	dir := filepath.Join(cacheDir, "idseek")
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(os.Stderr)
		return
	}
	logFile, err := os.OpenFile(filepath.Join(dir, "idseek.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("could not open log file: %v", err)
		return
	}
	log.SetOutput(logFile)
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: idseek [options] PATTERN [PATTERN...]

Look up PATTERN in the identifier database and refine the matches
interactively. With several patterns all must appear on the same line,
or within -e N lines of the first one.

options:
`)
	flag.PrintDefaults()
}
