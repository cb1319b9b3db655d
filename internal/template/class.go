// Package template describes password shapes: ordered sequences of character
// classes, one class per output position, and the catalog they live in.
package template

import (
	"fmt"

	"github.com/dmitrijs2005/fort/internal/common"
)

// Class is an ordered, finite set of allowed characters. The order is part of
// the derivation: byte b selects the character at index b mod Len().
type Class struct {
	name  string
	chars []rune
}

const (
	upperVowels     = "AEIOU"
	lowerVowels     = "aeiou"
	upperConsonants = "BCDFGHJKLMNPQRSTVWXYZ"
	lowerConsonants = "bcdfghjklmnpqrstvwxyz"
	digits          = "0123456789"
	symbols         = "!@#$%^&*()[]{}<>"
)

// Built-in classes. Mixed classes list vowels before consonants; the order
// is fixed because it decides which character a byte selects.
var (
	Upper           = mustClass("upper", upperVowels+upperConsonants)
	Lower           = mustClass("lower", lowerVowels+lowerConsonants)
	Digits          = mustClass("digits", digits)
	Symbols         = mustClass("symbols", symbols)
	UpperVowels     = mustClass("upper-vowels", upperVowels)
	Vowels          = mustClass("vowels", lowerVowels)
	UpperConsonants = mustClass("upper-consonants", upperConsonants)
	Consonants      = mustClass("consonants", lowerConsonants)
	Letters         = mustClass("letters", upperVowels+lowerVowels+upperConsonants+lowerConsonants)
	Alphanumeric    = mustClass("alphanumeric", upperVowels+lowerVowels+upperConsonants+lowerConsonants+digits)
	All             = mustClass("all", upperVowels+lowerVowels+upperConsonants+lowerConsonants+digits+symbols)
)

// NewClass builds a class from chars. Empty classes and repeated characters
// are rejected.
func NewClass(name, chars string) (Class, error) {
	rs := []rune(chars)
	if len(rs) == 0 {
		return Class{}, fmt.Errorf("%w: class %q is empty", common.ErrInvalidPattern, name)
	}
	seen := make(map[rune]struct{}, len(rs))
	for _, r := range rs {
		if _, ok := seen[r]; ok {
			return Class{}, fmt.Errorf("%w: class %q repeats %q", common.ErrInvalidPattern, name, r)
		}
		seen[r] = struct{}{}
	}
	return Class{name: name, chars: rs}, nil
}

func mustClass(name, chars string) Class {
	c, err := NewClass(name, chars)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Class) Name() string { return c.name }

func (c Class) Len() int { return len(c.chars) }

// At returns the i-th character of the class.
func (c Class) At(i int) rune { return c.chars[i] }

// Pick maps b onto the class by reduction modulo Len().
func (c Class) Pick(b byte) rune {
	return c.chars[int(b)%len(c.chars)]
}

// Contains reports whether r is a member of the class.
func (c Class) Contains(r rune) bool {
	for _, x := range c.chars {
		if x == r {
			return true
		}
	}
	return false
}

func (c Class) String() string { return string(c.chars) }
