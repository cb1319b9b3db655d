package cryptox

import (
	"fmt"

	"github.com/dmitrijs2005/fort/internal/common"
	"github.com/dmitrijs2005/fort/internal/hashx"
)

// MasterKey is the stretched master secret. It is owned by exactly one
// generator and must be wiped when that generator is discarded.
type MasterKey struct {
	b []byte
}

// DeriveMasterKey stretches password with kdf into a key of alg.Size() bytes.
// An empty password is rejected. The caller keeps ownership of password.
func DeriveMasterKey(kdf KDF, password []byte, alg hashx.Algorithm) (*MasterKey, error) {
	if len(password) == 0 {
		return nil, fmt.Errorf("%w: empty master password", common.ErrInvalidInput)
	}
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedAlgorithm, alg)
	}

	key, err := kdf.DeriveKey(password, alg.Size())
	if err != nil {
		return nil, fmt.Errorf("derive master key: %w", err)
	}
	if len(key) != alg.Size() {
		common.WipeByteArray(key)
		return nil, fmt.Errorf("derive master key: got %d bytes, want %d", len(key), alg.Size())
	}

	return &MasterKey{b: key}, nil
}

// Bytes returns the key material. The slice must not be modified or retained.
func (k *MasterKey) Bytes() []byte {
	return k.b
}

func (k *MasterKey) Len() int {
	return len(k.b)
}

// Wiped reports whether Wipe has been called.
func (k *MasterKey) Wiped() bool {
	return k.b == nil
}

// Wipe zeroes the key and drops the reference. Safe to call more than once.
func (k *MasterKey) Wipe() {
	common.WipeByteArray(k.b)
	k.b = nil
}
