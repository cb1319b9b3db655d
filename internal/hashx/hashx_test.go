package hashx

import (
	"crypto/hmac"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/dmitrijs2005/fort/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		name    string
		want    Algorithm
		wantErr error
	}{
		{name: "Sha512", want: Sha512},
		{name: "Sha3", want: Sha3},
		{name: "Blake2b", want: Blake2b},
		{name: "sha512", wantErr: common.ErrUnsupportedAlgorithm},
		{name: "UnknownAlgo", wantErr: common.ErrUnsupportedAlgorithm},
		{name: "", wantErr: common.ErrUnsupportedAlgorithm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.name)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.name, got.String())
		})
	}
}

func TestAlgorithms_StableOrder(t *testing.T) {
	assert.Equal(t, []string{"Sha512", "Sha3", "Blake2b"}, Algorithms())
	assert.Equal(t, Algorithms(), Algorithms())
}

func TestSize_MatchesDigest(t *testing.T) {
	for _, a := range []Algorithm{Sha512, Sha3, Blake2b} {
		h := a.New()
		h.Write([]byte("abc"))
		assert.Len(t, h.Sum(nil), a.Size(), a.String())
		assert.Equal(t, 64, a.Size())
	}
}

func TestNew_KnownVectors(t *testing.T) {
	tests := []struct {
		alg  Algorithm
		want string
	}{
		{Sha512, "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
		{Sha3, "b751850b1a57168a5693cd924b6b096e08f621827444f70d884f5d0240d2712e10e116e9192af3c91a7ec57647e3934057340b4cf408d5a56592f8274eec53f0"},
	}
	for _, tt := range tests {
		t.Run(tt.alg.String(), func(t *testing.T) {
			h := tt.alg.New()
			h.Write([]byte("abc"))
			assert.Equal(t, tt.want, hex.EncodeToString(h.Sum(nil)))
		})
	}
}

func TestFunc_UsableWithHMAC(t *testing.T) {
	for _, a := range []Algorithm{Sha512, Sha3, Blake2b} {
		m1 := hmac.New(a.Func(), []byte("key"))
		m1.Write([]byte("msg"))
		m2 := hmac.New(a.Func(), []byte("key"))
		m2.Write([]byte("msg"))
		assert.Equal(t, m1.Sum(nil), m2.Sum(nil), a.String())
	}
}

func TestInvalidAlgorithm(t *testing.T) {
	var a Algorithm
	assert.False(t, a.Valid())
	assert.Equal(t, 0, a.Size())
	assert.Equal(t, "Algorithm(0)", a.String())
	assert.Panics(t, func() { a.New() })
}
