package template

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/fort/internal/common"
)

// Template is an immutable, named sequence of per-position classes. Its
// length is the exact length of every password derived from it.
type Template struct {
	name    string
	classes []Class
}

// New builds a template. The class slice is copied.
func New(name string, classes ...Class) (Template, error) {
	if strings.TrimSpace(name) == "" {
		return Template{}, fmt.Errorf("%w: template name is empty", common.ErrInvalidPattern)
	}
	if len(classes) == 0 {
		return Template{}, fmt.Errorf("%w: template %q has no positions", common.ErrInvalidPattern, name)
	}
	for i, c := range classes {
		if c.Len() == 0 {
			return Template{}, fmt.Errorf("%w: template %q position %d has an empty class", common.ErrInvalidPattern, name, i)
		}
	}
	cs := make([]Class, len(classes))
	copy(cs, classes)
	return Template{name: name, classes: cs}, nil
}

// Repeat builds a template of n positions drawn from the same class.
func Repeat(name string, c Class, n int) (Template, error) {
	if n <= 0 {
		return Template{}, fmt.Errorf("%w: template %q length %d", common.ErrInvalidPattern, name, n)
	}
	cs := make([]Class, n)
	for i := range cs {
		cs[i] = c
	}
	return New(name, cs...)
}

func (t Template) Name() string { return t.name }

// Len is the number of constraints, i.e. the output length.
func (t Template) Len() int { return len(t.classes) }

// At returns the class constraining position i.
func (t Template) At(i int) Class { return t.classes[i] }

// Accepts reports whether pw has the template's length and every character
// satisfies its positional class.
func (t Template) Accepts(pw string) bool {
	rs := []rune(pw)
	if len(rs) != len(t.classes) {
		return false
	}
	for i, r := range rs {
		if !t.classes[i].Contains(r) {
			return false
		}
	}
	return true
}
