// Package mapper turns keystream bytes into a password shaped by a template.
//
// Each position consumes exactly one byte b and selects class[b mod |class|].
// The reduction is biased when |class| does not divide 256; the bias is
// accepted in exchange for a fixed byte budget and guaranteed termination.
package mapper

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/fort/internal/template"
)

// Map consumes t.Len() bytes from src and returns the password. On a read
// error no partial password is returned.
func Map(src io.ByteReader, t template.Template) (string, error) {
	var sb strings.Builder
	sb.Grow(t.Len())

	for i := 0; i < t.Len(); i++ {
		b, err := src.ReadByte()
		if err != nil {
			return "", fmt.Errorf("keystream read at position %d: %w", i, err)
		}
		sb.WriteRune(t.At(i).Pick(b))
	}

	return sb.String(), nil
}
