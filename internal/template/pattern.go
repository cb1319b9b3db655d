package template

import (
	"fmt"

	"github.com/dmitrijs2005/fort/internal/common"
)

// patternClasses maps pattern characters to classes:
//
//	A upper       a lower       n digit        o symbol
//	V upper vowel v vowel       C upper conson c consonant
//	l letter      x alnum       * any
//
// A backslash makes the following character a literal position.
var patternClasses = map[rune]Class{
	'A': Upper,
	'a': Lower,
	'n': Digits,
	'o': Symbols,
	'V': UpperVowels,
	'v': Vowels,
	'C': UpperConsonants,
	'c': Consonants,
	'l': Letters,
	'x': Alphanumeric,
	'*': All,
}

// ParsePattern builds a template from a compact pattern string such as
// "Cvcvno" (one character per output position).
func ParsePattern(name, pattern string) (Template, error) {
	var classes []Class
	escaped := false
	for i, r := range pattern {
		if escaped {
			lit, err := NewClass(string(r), string(r))
			if err != nil {
				return Template{}, err
			}
			classes = append(classes, lit)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		c, ok := patternClasses[r]
		if !ok {
			return Template{}, fmt.Errorf("%w: %q at offset %d in %q", common.ErrInvalidPattern, r, i, pattern)
		}
		classes = append(classes, c)
	}
	if escaped {
		return Template{}, fmt.Errorf("%w: dangling escape in %q", common.ErrInvalidPattern, pattern)
	}
	return New(name, classes...)
}

func mustPattern(name, pattern string) Template {
	t, err := ParsePattern(name, pattern)
	if err != nil {
		panic(err)
	}
	return t
}
