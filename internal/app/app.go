package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/suitectl/internal/config"
	"github.com/specialistvlad/suitectl/internal/controller"
	"github.com/specialistvlad/suitectl/internal/ctxlog"
	"github.com/specialistvlad/suitectl/internal/model"
	"github.com/specialistvlad/suitectl/internal/setting"
)

// ErrEntityNotFound is returned when no test or keyword matches a Selector.
var ErrEntityNotFound = errors.New("entity not found")

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	loader config.Loader
	config *Config
}

// NewApp is the constructor for the main application. Command output goes to
// outW and log records to logW, so the two never interleave on one stream.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := NewLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		loader: loader,
		config: cfg,
	}
}

// Open loads the configured path and wraps it in a document controller.
func (a *App) Open(ctx context.Context) (controller.Document, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	df, err := a.loader.Load(ctx, a.config.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", a.config.Path, err)
	}
	a.logger.Debug("Document loaded.", "path", a.config.Path, "kind", df.Kind)

	if df.Kind == model.KindResourceFile {
		return controller.NewResourceFile(df, controller.WithLogger(a.logger)), nil
	}
	return controller.New(df, controller.WithLogger(a.logger)), nil
}

// Selector names exactly one test case or one user keyword.
type Selector struct {
	Test    string
	Keyword string
}

// Validate reports whether exactly one of Test and Keyword is set.
func (s Selector) Validate() error {
	switch {
	case s.Test != "" && s.Keyword != "":
		return errors.New("select either a test or a keyword, not both")
	case s.Test == "" && s.Keyword == "":
		return errors.New("select a test or a keyword")
	}
	return nil
}

func (s Selector) String() string {
	if s.Test != "" {
		return fmt.Sprintf("test %q", s.Test)
	}
	return fmt.Sprintf("keyword %q", s.Keyword)
}

// entity is what TestCaseController and UserKeywordController have in common.
type entity interface {
	Name() string
	Steps() []*model.Step
	Settings() []setting.Controller
	ParseStepsFromRows(rows [][]string) error
}

// find walks doc depth first and returns the first entity matching sel,
// together with the document that owns it.
func find(doc controller.Document, sel Selector) (entity, controller.Document, bool) {
	if sel.Test != "" {
		if tests, err := doc.Tests(); err == nil {
			if tc, ok := tests.Find(sel.Test); ok {
				return tc, doc, true
			}
		}
	} else if kw, ok := doc.Keywords().Find(sel.Keyword); ok {
		return kw, doc, true
	}

	for _, child := range doc.Children() {
		if e, owner, ok := find(child, sel); ok {
			return e, owner, true
		}
	}
	return nil, nil, false
}

func (a *App) selectEntity(ctx context.Context, sel Selector) (controller.Document, entity, controller.Document, error) {
	if err := sel.Validate(); err != nil {
		return nil, nil, nil, err
	}
	root, err := a.Open(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	e, owner, ok := find(root, sel)
	if !ok {
		return nil, nil, nil, fmt.Errorf("%s: %w", sel, ErrEntityNotFound)
	}
	return root, e, owner, nil
}

// Outline prints the whole document tree.
func (a *App) Outline(ctx context.Context) error {
	root, err := a.Open(ctx)
	if err != nil {
		return err
	}
	renderOutline(a.outW, root, 0)
	return nil
}

// Show prints the settings and steps of the selected entity.
func (a *App) Show(ctx context.Context, sel Selector) error {
	_, e, owner, err := a.selectEntity(ctx, sel)
	if err != nil {
		return err
	}
	renderEntity(a.outW, sel, e, owner)
	return nil
}

// ReplaceSteps replaces the steps of the selected entity with rows and
// prints the result along with the documents left with unsaved changes.
// Nothing is written to disk.
func (a *App) ReplaceSteps(ctx context.Context, sel Selector, rows [][]string) error {
	root, e, owner, err := a.selectEntity(ctx, sel)
	if err != nil {
		return err
	}

	a.logger.Debug("Replacing steps.", "entity", sel.String(), "rows", len(rows))
	if err := e.ParseStepsFromRows(rows); err != nil {
		return fmt.Errorf("failed to replace steps of %s: %w", sel, err)
	}
	a.logger.Info("Steps replaced.", "entity", sel.String(), "steps", len(e.Steps()))

	renderEntity(a.outW, sel, e, owner)
	renderDirty(a.outW, controller.DirtyDocuments(root))
	return nil
}
