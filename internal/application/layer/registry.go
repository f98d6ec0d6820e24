package layer

import (
	"image"
	"strings"

	"github.com/younwookim/retromenu/internal/infrastructure/config"
)

// Category groups registered layers by where scenes use them
type Category string

const (
	// CategoryEffect layers are added to every scene by the universal factory
	CategoryEffect Category = "effect"

	// CategoryMenuOnly layers decorate a selection list and need Context.Selection
	CategoryMenuOnly Category = "menu_only"
)

// Selection is a list with one highlighted entry, such as a menu
type Selection interface {
	// Selected returns the highlighted index.
	Selected() int

	// SelectedRect returns the bounds of the highlighted entry; false when
	// the list is empty.
	SelectedRect() (image.Rectangle, bool)
}

// Context is what a Constructor gets to build a layer
type Context struct {
	Config    *config.Config
	Selection Selection // nil for effect layers
}

// Constructor builds a layer
type Constructor func(ctx Context) Layer

// Entry is a registered layer constructor
type Entry struct {
	Key      string
	Category Category
	New      Constructor
}

// Registry maps lowercase keys to layer constructors, keeping registration order
type Registry struct {
	keys    []string
	entries map[string]Entry
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds or replaces a constructor
func (r *Registry) Register(key string, cat Category, ctor Constructor) {
	key = strings.ToLower(key)
	if _, ok := r.entries[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.entries[key] = Entry{Key: key, Category: cat, New: ctor}
}

// Get looks up a constructor by key (case-insensitive)
func (r *Registry) Get(key string) (Entry, bool) {
	e, ok := r.entries[strings.ToLower(key)]
	return e, ok
}

// ByCategory returns the entries of cat in registration order
func (r *Registry) ByCategory(cat Category) []Entry {
	var out []Entry
	for _, k := range r.keys {
		if e := r.entries[k]; e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

// Build instantiates every entry of cat with ctx. A nil registry builds nothing.
func (r *Registry) Build(cat Category, ctx Context) []Layer {
	if r == nil {
		return nil
	}
	var out []Layer
	for _, e := range r.ByCategory(cat) {
		out = append(out, e.New(ctx))
	}
	return out
}
