package sites

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/fort/internal/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSite(t *testing.T) {
	assert.Equal(t, Site{Counter: 0, TemplateName: "All", Length: 64}, DefaultSite())
}

func TestParse(t *testing.T) {
	data := []byte(`{
		"example.com": {"counter": 2, "template_name": "Alphanumeric", "length": 20},
		"bank.example": {"template_name": "PIN"},
		"shop.example": {"counter": 1}
	}`)

	p, err := Parse(data)
	require.NoError(t, err)

	tests := []struct {
		site string
		want Site
	}{
		{"example.com", Site{Counter: 2, TemplateName: "Alphanumeric", Length: 20}},
		{"bank.example", Site{Counter: 0, TemplateName: "PIN", Length: 64}},
		{"shop.example", Site{Counter: 1, TemplateName: "All", Length: 64}},
		{"unknown.example", DefaultSite()},
	}
	for _, tt := range tests {
		t.Run(tt.site, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, p.Get(tt.site)); diff != "" {
				t.Fatalf("Get(%q) mismatch (-want +got):\n%s", tt.site, diff)
			}
		})
	}

	assert.Equal(t, []string{"bank.example", "example.com", "shop.example"}, p.Names())
	assert.Equal(t, 3, p.Len())
	assert.True(t, p.Has("example.com"))
	assert.False(t, p.Has("unknown.example"))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "invalid json", data: `{ this is not valid json`},
		{name: "negative counter", data: `{"a": {"counter": -1}}`},
		{name: "negative length", data: `{"a": {"length": -1}}`, wantErr: common.ErrInvalidInput},
		{name: "empty site", data: `{"": {"length": 5}}`, wantErr: common.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sites.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"example.com": {"length": 12}}`), 0o600))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, p.Get("example.com").Length)

	_, err = Load(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}

func TestEmpty(t *testing.T) {
	p := Empty()
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, DefaultSite(), p.Get("anything"))
	assert.Empty(t, p.Names())
}
