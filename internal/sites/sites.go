// Package sites holds per-site derivation parameters: which template to use,
// the rotation counter and the display length. Profiles never contain
// passwords, so they can be stored and shared freely.
//
// The on-disk format is a JSON object keyed by site:
//
//	{
//	  "example.com": {"counter": 1, "template_name": "Alphanumeric", "length": 20}
//	}
package sites

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/dmitrijs2005/fort/internal/common"
)

// DefaultLength is the display length applied when a profile omits one.
const DefaultLength = 64

// Site is the derivation profile of one site.
type Site struct {
	Counter      uint32 `json:"counter"`
	TemplateName string `json:"template_name"`
	Length       int    `json:"length"`
}

// DefaultSite is used for sites without a profile.
func DefaultSite() Site {
	return Site{Counter: 0, TemplateName: common.DefaultTemplate, Length: DefaultLength}
}

// siteJSON uses pointers so omitted fields can fall back to defaults.
type siteJSON struct {
	Counter      *uint32 `json:"counter"`
	TemplateName *string `json:"template_name"`
	Length       *int    `json:"length"`
}

// Profiles is an immutable set of site profiles.
type Profiles struct {
	sites map[string]Site
}

// Empty returns profiles with no entries; every lookup yields DefaultSite.
func Empty() *Profiles {
	return &Profiles{sites: map[string]Site{}}
}

// Load reads profiles from a JSON file.
func Load(path string) (*Profiles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site profiles: %w", err)
	}
	return Parse(data)
}

// Parse decodes profiles from JSON.
func Parse(data []byte) (*Profiles, error) {
	var raw map[string]siteJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse site profiles: %w", err)
	}

	p := &Profiles{sites: make(map[string]Site, len(raw))}
	for name, r := range raw {
		if name == "" {
			return nil, fmt.Errorf("%w: site profile with empty name", common.ErrInvalidInput)
		}
		s := DefaultSite()
		if r.Counter != nil {
			s.Counter = *r.Counter
		}
		if r.TemplateName != nil {
			s.TemplateName = *r.TemplateName
		}
		if r.Length != nil {
			if *r.Length < 0 {
				return nil, fmt.Errorf("%w: site %q has negative length", common.ErrInvalidInput, name)
			}
			s.Length = *r.Length
		}
		p.sites[name] = s
	}
	return p, nil
}

// Get returns the profile for site, or DefaultSite if there is none.
func (p *Profiles) Get(site string) Site {
	if s, ok := p.sites[site]; ok {
		return s
	}
	return DefaultSite()
}

// Has reports whether site has an explicit profile.
func (p *Profiles) Has(site string) bool {
	_, ok := p.sites[site]
	return ok
}

// Names lists the configured sites in lexical order.
func (p *Profiles) Names() []string {
	out := make([]string, 0, len(p.sites))
	for name := range p.sites {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (p *Profiles) Len() int { return len(p.sites) }
