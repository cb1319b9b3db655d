// Package cryptox stretches a master password into the fixed-length master
// key that every site derivation is keyed with.
package cryptox

import (
	"fmt"

	"github.com/dmitrijs2005/fort/internal/common"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/scrypt"
)

// Salt is the fixed domain-separation constant mixed into every KDF.
// Changing it changes every derived password.
var Salt = []byte(common.AppName + "/master-key/v1")

// KDF derives key material from a password. The same inputs must always
// produce the same output.
type KDF interface {
	DeriveKey(password []byte, keyLen int) ([]byte, error)
	Name() string
}

const (
	KDFScrypt   = "scrypt"
	KDFArgon2id = "argon2id"
)

// NewKDF returns the KDF registered under name with its default parameters.
func NewKDF(name string) (KDF, error) {
	switch name {
	case KDFScrypt:
		return NewScryptKDF(), nil
	case KDFArgon2id:
		return NewArgon2idKDF(), nil
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedKDF, name)
	}
}

// ScryptKDF is the default stretching function.
type ScryptKDF struct {
	N    int // CPU/memory cost, power of two
	R    int // block size
	P    int // parallelization
	Salt []byte
}

// NewScryptKDF uses N=2^15, r=8, p=2.
func NewScryptKDF() *ScryptKDF {
	return &ScryptKDF{N: 1 << 15, R: 8, P: 2, Salt: Salt}
}

func (s *ScryptKDF) DeriveKey(password []byte, keyLen int) ([]byte, error) {
	key, err := scrypt.Key(password, s.Salt, s.N, s.R, s.P, keyLen)
	if err != nil {
		return nil, fmt.Errorf("scrypt: %w", err)
	}
	return key, nil
}

func (s *ScryptKDF) Name() string {
	return KDFScrypt
}

// Argon2idKDF is the memory-hard alternative.
type Argon2idKDF struct {
	Time    uint32 // iterations
	Memory  uint32 // KiB
	Threads uint8
	Salt    []byte
}

// NewArgon2idKDF uses t=1, m=64 MiB, p=4.
func NewArgon2idKDF() *Argon2idKDF {
	return &Argon2idKDF{Time: 1, Memory: 64 * 1024, Threads: 4, Salt: Salt}
}

func (a *Argon2idKDF) DeriveKey(password []byte, keyLen int) ([]byte, error) {
	if keyLen <= 0 {
		return nil, fmt.Errorf("argon2id: invalid key length %d", keyLen)
	}
	return argon2.IDKey(password, a.Salt, a.Time, a.Memory, a.Threads, uint32(keyLen)), nil
}

func (a *Argon2idKDF) Name() string {
	return KDFArgon2id
}
