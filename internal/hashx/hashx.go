// Package hashx selects the digest primitive used for key stretching
// output sizing and for the HMAC keystream.
package hashx

import (
	"crypto/sha512"
	"fmt"
	"hash"

	"github.com/dmitrijs2005/fort/internal/common"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Algorithm identifies a 512-bit digest construction.
type Algorithm int

const (
	Sha512 Algorithm = iota + 1
	Sha3
	Blake2b
)

var names = map[Algorithm]string{
	Sha512:  "Sha512",
	Sha3:    "Sha3",
	Blake2b: "Blake2b",
}

// order is the fixed listing order returned by Algorithms.
var order = []Algorithm{Sha512, Sha3, Blake2b}

// ParseAlgorithm maps a wrapper-facing name ("Sha512", "Sha3", "Blake2b")
// to an Algorithm. Matching is case-sensitive.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range order {
		if names[a] == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", common.ErrUnsupportedAlgorithm, name)
}

// Algorithms returns the supported algorithm names in a fixed order.
func Algorithms() []string {
	out := make([]string, 0, len(order))
	for _, a := range order {
		out = append(out, names[a])
	}
	return out
}

func (a Algorithm) String() string {
	if n, ok := names[a]; ok {
		return n
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	_, ok := names[a]
	return ok
}

// Size is the native digest length in bytes. It is also the master key length.
func (a Algorithm) Size() int {
	switch a {
	case Sha512:
		return sha512.Size
	case Sha3:
		return 64
	case Blake2b:
		return blake2b.Size
	}
	return 0
}

// New returns a fresh, unkeyed hash. It panics on an invalid Algorithm,
// which can only be obtained by bypassing ParseAlgorithm.
func (a Algorithm) New() hash.Hash {
	switch a {
	case Sha512:
		return sha512.New()
	case Sha3:
		return sha3.New512()
	case Blake2b:
		// unkeyed blake2b never fails
		h, _ := blake2b.New512(nil)
		return h
	}
	panic(fmt.Sprintf("hashx: invalid algorithm %d", int(a)))
}

// Func returns a.New as a constructor suitable for hmac.New.
func (a Algorithm) Func() func() hash.Hash {
	return a.New
}
