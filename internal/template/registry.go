package template

import (
	"fmt"
	"sync"

	"github.com/dmitrijs2005/fort/internal/common"
)

// Registry is an ordered, immutable template catalog.
type Registry struct {
	templates []Template
	index     map[string]int
}

// NewRegistry builds a catalog; the argument order is the listing order.
func NewRegistry(templates ...Template) (*Registry, error) {
	r := &Registry{
		templates: make([]Template, 0, len(templates)),
		index:     make(map[string]int, len(templates)),
	}
	for _, t := range templates {
		if t.Len() == 0 {
			return nil, fmt.Errorf("%w: template %q has no positions", common.ErrInvalidPattern, t.Name())
		}
		if _, ok := r.index[t.Name()]; ok {
			return nil, fmt.Errorf("%w: %q", common.ErrDuplicateTemplate, t.Name())
		}
		r.index[t.Name()] = len(r.templates)
		r.templates = append(r.templates, t)
	}
	return r, nil
}

// With returns a new registry holding r's templates followed by ts.
func (r *Registry) With(ts ...Template) (*Registry, error) {
	all := make([]Template, 0, len(r.templates)+len(ts))
	all = append(all, r.templates...)
	all = append(all, ts...)
	return NewRegistry(all...)
}

// Names lists template names in catalog order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.templates))
	for i, t := range r.templates {
		out[i] = t.Name()
	}
	return out
}

// Lookup returns the template registered under name.
func (r *Registry) Lookup(name string) (Template, error) {
	i, ok := r.index[name]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", common.ErrUnknownTemplate, name)
	}
	return r.templates[i], nil
}

func (r *Registry) Len() int { return len(r.templates) }

// Default returns the built-in catalog. It is built once and never mutated.
var Default = sync.OnceValue(func() *Registry {
	all, _ := Repeat("All", All, 64)
	alnum, _ := Repeat("Alphanumeric", Alphanumeric, 64)

	r, err := NewRegistry(
		all,
		alnum,
		mustPattern("Memorable", "Cvcvcvcvcvcvcvnn"),
		mustPattern("Long", "CvcvnoCvcvCvcv"),
		mustPattern("PIN", "nnnn"),
	)
	if err != nil {
		panic(err)
	}
	return r
})
