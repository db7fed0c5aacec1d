package theme

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/npillmayer/slidetheme/deck"
	"github.com/npillmayer/slidetheme/style/stylesheet/douceuradapter"
	"github.com/prometheus/client_golang/prometheus"
)

// Theme is a named bundle of styling rules. Apply is called with a fresh
// scope whenever the theme is applied to or included into a document.
type Theme struct {
	Name  string
	Apply func(*Scope) error
}

// Engine holds a set of named themes and applies them to documents.
// An engine is not safe for concurrent use while themes are registered.
type Engine struct {
	themes  map[string]Theme
	metrics *metrics
}

// Option configures an engine.
type Option func(*Engine)

// WithMetrics will count rules, matches and deletions with counters
// registered at reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(e *Engine) {
		if reg != nil {
			e.metrics = setupMetrics(reg)
		}
	}
}

// WithoutBuiltins creates an engine with no themes registered.
func WithoutBuiltins() Option {
	return func(e *Engine) {
		e.themes = make(map[string]Theme)
	}
}

// NewEngine creates an engine with the built-in themes "default" and
// "slide-center" registered.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{themes: make(map[string]Theme)}
	e.themes[Default.Name] = Default
	e.themes[SlideCenter.Name] = SlideCenter
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Register adds a theme to the engine. A theme registered under an
// existing name replaces the former one.
func (e *Engine) Register(th Theme) error {
	if th.Name == "" || th.Apply == nil {
		return fmt.Errorf("%w: theme needs a name and rules", ErrInvalidTheme)
	}
	if _, exists := e.themes[th.Name]; exists {
		tracer().Infof("theme %s replaces a theme of the same name", th.Name)
	}
	e.themes[th.Name] = th
	return nil
}

// Lookup returns the theme registered under name.
func (e *Engine) Lookup(name string) (Theme, bool) {
	th, ok := e.themes[name]
	return th, ok
}

// Names returns the names of all registered themes, sorted.
func (e *Engine) Names() []string {
	names := make([]string, 0, len(e.themes))
	for name := range e.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply applies the theme registered under name to a document. Rules
// are applied in order; an error stops the pass, leaving properties set
// by earlier rules in place.
func (e *Engine) Apply(doc *deck.Document, name string) error {
	if doc == nil {
		return fmt.Errorf("cannot apply theme %q to nil document", name)
	}
	if err := newScope(e, doc).IncludeTheme(name); err != nil {
		return fmt.Errorf("applying theme %q: %w", name, err)
	}
	return nil
}

// LoadDir registers all themes found in a directory. Files with suffix
// .yaml or .yml are read as theme definitions (see LoadYAML), files with
// suffix .css are read as stylesheets and files with suffix .html have
// their <style> elements read as stylesheets (see FromStyleSheet).
// Stylesheet themes are named after their file name without suffix.
// Other files are ignored. LoadDir returns the names of the themes loaded.
func (e *Engine) LoadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		th, ok, err := loadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return names, err
		}
		if !ok {
			continue
		}
		if err := e.Register(th); err != nil {
			return names, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		tracer().Infof("loaded theme %s from %s", th.Name, entry.Name())
		names = append(names, th.Name)
	}
	return names, nil
}

func loadFile(path string) (Theme, bool, error) {
	def, ok, err := readDefinitionFile(path)
	if err != nil || !ok {
		return Theme{}, ok, err
	}
	th, err := def.Compile()
	if err != nil {
		return Theme{}, false, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return th, true, nil
}

// ReadDefinitionFile reads a theme definition from a YAML, CSS or HTML
// file, as LoadDir does, without compiling it.
func ReadDefinitionFile(path string) (Definition, error) {
	def, ok, err := readDefinitionFile(path)
	if err == nil && !ok {
		err = fmt.Errorf("%w: %s is neither YAML, CSS nor HTML", ErrInvalidTheme, filepath.Base(path))
	}
	return def, err
}

func readDefinitionFile(path string) (Definition, bool, error) {
	ext := strings.ToLower(filepath.Ext(path))
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml", ".css", ".html":
	default:
		return Definition{}, false, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Definition{}, false, err
	}
	defer f.Close()
	var def Definition
	switch ext {
	case ".yaml", ".yml":
		if def, err = ReadDefinition(f); err == nil && def.Name == "" {
			def.Name = base
		}
	case ".css":
		var src []byte
		if src, err = io.ReadAll(f); err == nil {
			var sheet *douceuradapter.CSSStyles
			if sheet, err = douceuradapter.Parse(string(src)); err == nil {
				def, err = DefinitionFromStyleSheet(base, sheet)
			}
		}
	case ".html":
		var sheet *douceuradapter.CSSStyles
		if sheet, err = douceuradapter.ParseHTML(f); err == nil {
			def, err = DefinitionFromStyleSheet(base, sheet)
		}
	}
	if err != nil {
		return Definition{}, false, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return def, true, nil
}
