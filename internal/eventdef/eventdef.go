// Package eventdef loads event definitions from CUE files.
//
// An events directory holds one .cue file per event, named <event-id>.cue,
// each declaring an `event` value. Every file is validated against the
// embedded #Event schema before it is decoded, so a typo in a venue list or
// a missing entrant name fails loudly at load time instead of surfacing as a
// broken bracket later.
//
// The Loader implements the engine's EntrantSource: it is the team-directory
// and event-management collaborator boundary for the CLI.
package eventdef

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/mjdesu1/intramurals-engine/internal/tournament"
)

//go:embed schema.cue
var schemaCUE string

// Event is a decoded event definition.
type Event struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	StartDate string    `json:"startDate"`
	Venues    []string  `json:"venues"`
	Entrants  []Entrant `json:"entrants"`
}

// Entrant is one registered team in an event definition.
type Entrant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LoadError describes a failure to load or validate an event definition.
type LoadError struct {
	Code    string
	Path    string
	Message string
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Load error codes.
const (
	ErrCodeNotFound      = "E_NOT_FOUND"
	ErrCodeParseFailed   = "E_PARSE_FAILED"
	ErrCodeInvalidSchema = "E_INVALID_SCHEMA"
)

// Loader reads event definitions from a directory of CUE files.
type Loader struct {
	dir string
	ctx *cue.Context
}

// NewLoader creates a Loader over the given events directory.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir, ctx: cuecontext.New()}
}

// Load reads, validates, and decodes the definition for one event.
func (l *Loader) Load(eventID string) (*Event, error) {
	path := filepath.Join(l.dir, eventID+".cue")
	return l.loadFile(path)
}

// LoadAll reads every event definition in the directory, sorted by file
// name. Used by validation; a single bad file fails the whole load.
func (l *Loader) LoadAll() ([]*Event, error) {
	paths, err := l.listFiles()
	if err != nil {
		return nil, err
	}

	events := make([]*Event, 0, len(paths))
	for _, path := range paths {
		ev, err := l.loadFile(path)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

// Validate checks every definition in the directory and collects all errors
// instead of stopping at the first.
func (l *Loader) Validate() []error {
	paths, err := l.listFiles()
	if err != nil {
		return []error{err}
	}

	var errs []error
	for _, path := range paths {
		if _, err := l.loadFile(path); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func (l *Loader) listFiles() ([]string, error) {
	info, err := os.Stat(l.dir)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("events directory not found: %s", l.dir)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing events directory: %v", err)}
	}
	if !info.IsDir() {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", l.dir)}
	}

	dirEntries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("reading events directory: %v", err)}
	}

	var paths []string
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".cue") {
			continue
		}
		paths = append(paths, filepath.Join(l.dir, de.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// loadFile compiles one definition file, unifies it with the #Event schema,
// and decodes it.
func (l *Loader) loadFile(path string) (*Event, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Path: path, Message: "event definition not found"}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Path: path, Message: err.Error()}
	}

	schema := l.ctx.CompileString(schemaCUE)
	if schema.Err() != nil {
		return nil, fmt.Errorf("compile embedded schema: %w", schema.Err())
	}

	v := l.ctx.CompileBytes(data, cue.Filename(path))
	if v.Err() != nil {
		return nil, &LoadError{Code: ErrCodeParseFailed, Path: path, Message: v.Err().Error()}
	}

	eventVal := v.LookupPath(cue.ParsePath("event"))
	if !eventVal.Exists() {
		return nil, &LoadError{Code: ErrCodeInvalidSchema, Path: path, Message: "missing top-level event value"}
	}

	unified := eventVal.Unify(schema.LookupPath(cue.ParsePath("#Event")))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, &LoadError{Code: ErrCodeInvalidSchema, Path: path, Message: err.Error()}
	}

	var ev Event
	if err := unified.Decode(&ev); err != nil {
		return nil, &LoadError{Code: ErrCodeInvalidSchema, Path: path, Message: err.Error()}
	}

	return &ev, nil
}

// Tournament returns the definition's entrants as domain entrants, in
// declaration order. Declaration order is the pairing order, so it must be
// preserved.
func (ev *Event) Tournament() []tournament.Entrant {
	entrants := make([]tournament.Entrant, 0, len(ev.Entrants))
	for _, te := range ev.Entrants {
		entrants = append(entrants, tournament.Entrant{
			ID:          te.ID,
			DisplayName: te.Name,
		})
	}
	return entrants
}
