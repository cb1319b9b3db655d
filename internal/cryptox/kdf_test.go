package cryptox

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/dmitrijs2005/fort/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheap parameters keep the suite fast; production values are covered by
// TestNewScryptKDF_Defaults.
func fastScrypt() *ScryptKDF {
	return &ScryptKDF{N: 16, R: 1, P: 1, Salt: Salt}
}

func fastArgon() *Argon2idKDF {
	return &Argon2idKDF{Time: 1, Memory: 64, Threads: 1, Salt: Salt}
}

func TestScryptKDF_RFC7914Vector(t *testing.T) {
	kdf := &ScryptKDF{N: 1024, R: 8, P: 16, Salt: []byte("NaCl")}
	key, err := kdf.DeriveKey([]byte("password"), 64)
	require.NoError(t, err)

	expectedHex := "fdbabe1c9d3472007856e7190d01e9fe7c6ad7cbc8237830e77376634b373162" +
		"2eaf30d92e22a3886ff109279d9830dac727afb94a83ee6d8360cbdfa2cc0640"
	assert.Equal(t, expectedHex, hex.EncodeToString(key))
}

func TestNewScryptKDF_Defaults(t *testing.T) {
	kdf := NewScryptKDF()
	assert.Equal(t, 1<<15, kdf.N)
	assert.Equal(t, 8, kdf.R)
	assert.Equal(t, 2, kdf.P)
	assert.Equal(t, "fort/master-key/v1", string(kdf.Salt))
	assert.Equal(t, KDFScrypt, kdf.Name())
}

func TestScryptKDF_InvalidParams(t *testing.T) {
	kdf := &ScryptKDF{N: 15, R: 1, P: 1, Salt: Salt} // N not a power of two
	_, err := kdf.DeriveKey([]byte("pw"), 64)
	require.Error(t, err)
}

func TestKDF_Deterministic(t *testing.T) {
	for _, kdf := range []KDF{fastScrypt(), fastArgon()} {
		t.Run(kdf.Name(), func(t *testing.T) {
			key1, err := kdf.DeriveKey([]byte("secret-password"), 64)
			require.NoError(t, err)
			key2, err := kdf.DeriveKey([]byte("secret-password"), 64)
			require.NoError(t, err)

			if !bytes.Equal(key1, key2) {
				t.Errorf("expected same result for same inputs, got different")
			}
			assert.Len(t, key1, 64)

			other, err := kdf.DeriveKey([]byte("secret-passwore"), 64)
			require.NoError(t, err)
			assert.NotEqual(t, key1, other)
		})
	}
}

func TestKDF_SaltSeparatesDomains(t *testing.T) {
	a := fastArgon()
	b := fastArgon()
	b.Salt = []byte("another-app/v1")

	k1, err := a.DeriveKey([]byte("pw"), 32)
	require.NoError(t, err)
	k2, err := b.DeriveKey([]byte("pw"), 32)
	require.NoError(t, err)

	if bytes.Equal(k1, k2) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestArgon2idKDF_InvalidLength(t *testing.T) {
	_, err := fastArgon().DeriveKey([]byte("pw"), 0)
	require.Error(t, err)
}

func TestNewKDF(t *testing.T) {
	k, err := NewKDF("scrypt")
	require.NoError(t, err)
	assert.IsType(t, &ScryptKDF{}, k)

	k, err = NewKDF("argon2id")
	require.NoError(t, err)
	assert.IsType(t, &Argon2idKDF{}, k)

	_, err = NewKDF("bcrypt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnsupportedKDF))
}
