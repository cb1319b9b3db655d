// Package generator is the entry point of the derivation engine. A
// PasswordGenerator stretches the master password once and then derives any
// number of site passwords from the resulting key:
//
//	g, err := generator.New("Sha512", masterPassword)
//	if err != nil {
//	    return err
//	}
//	defer g.Close()
//
//	names := g.TemplateNames()
//	pw, err := g.CreateSitePassword("example.com", names[0])
//
// Derivation is a pure function of (master key, site, counter, template).
// A generator is safe for concurrent use.
package generator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/fort/internal/common"
	"github.com/dmitrijs2005/fort/internal/cryptox"
	"github.com/dmitrijs2005/fort/internal/hashx"
	"github.com/dmitrijs2005/fort/internal/keystream"
	"github.com/dmitrijs2005/fort/internal/logging"
	"github.com/dmitrijs2005/fort/internal/mapper"
	"github.com/dmitrijs2005/fort/internal/sites"
	"github.com/dmitrijs2005/fort/internal/template"
)

type options struct {
	registry *template.Registry
	kdf      cryptox.KDF
	logger   logging.Logger
}

// Option customizes a PasswordGenerator.
type Option func(*options)

// WithRegistry replaces the built-in template catalog.
func WithRegistry(r *template.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithKDF replaces the default scrypt stretching function.
func WithKDF(k cryptox.KDF) Option {
	return func(o *options) { o.kdf = k }
}

// WithLogger sets the logger; the default discards output.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// PasswordGenerator owns one master key for its lifetime.
type PasswordGenerator struct {
	mu       sync.RWMutex // guards key against Close during derivation
	alg      hashx.Algorithm
	key      *cryptox.MasterKey
	registry *template.Registry
	logger   logging.Logger
}

// New parses algorithmName, then stretches masterPassword into the master key.
func New(algorithmName, masterPassword string, opts ...Option) (*PasswordGenerator, error) {
	pw := []byte(masterPassword)
	defer common.WipeByteArray(pw)
	return NewWithPassword(algorithmName, pw, opts...)
}

// NewWithPassword is New for callers that hold the master password as bytes,
// e.g. from a terminal prompt. The caller keeps ownership of masterPassword.
func NewWithPassword(algorithmName string, masterPassword []byte, opts ...Option) (*PasswordGenerator, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = template.Default()
	}
	if o.kdf == nil {
		o.kdf = cryptox.NewScryptKDF()
	}
	if o.logger == nil {
		o.logger = logging.Nop()
	}

	alg, err := hashx.ParseAlgorithm(algorithmName)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	key, err := cryptox.DeriveMasterKey(o.kdf, masterPassword, alg)
	if err != nil {
		return nil, err
	}

	logger := o.logger.With("algorithm", alg.String(), "kdf", o.kdf.Name())
	logger.Debug(context.Background(), "master key derived", "elapsed", time.Since(start))

	return &PasswordGenerator{
		alg:      alg,
		key:      key,
		registry: o.registry,
		logger:   logger,
	}, nil
}

// Algorithm returns the hash algorithm chosen at construction.
func (g *PasswordGenerator) Algorithm() hashx.Algorithm {
	return g.alg
}

// TemplateNames lists the available templates in catalog order.
func (g *PasswordGenerator) TemplateNames() []string {
	return g.registry.Names()
}

// Template looks up a template by name.
func (g *PasswordGenerator) Template(name string) (template.Template, error) {
	return g.registry.Lookup(name)
}

// CreateSitePassword derives the password for site with rotation counter 0.
func (g *PasswordGenerator) CreateSitePassword(site, templateName string) (string, error) {
	return g.CreateSitePasswordCounter(site, templateName, 0)
}

// CreateSitePasswordCounter derives the password for (site, counter) shaped
// by the named template. Bumping counter rotates a site's password.
func (g *PasswordGenerator) CreateSitePasswordCounter(site, templateName string, counter uint32) (string, error) {
	if site == "" {
		return "", fmt.Errorf("%w: empty site", common.ErrInvalidInput)
	}
	tpl, err := g.registry.Lookup(templateName)
	if err != nil {
		g.logger.Debug(context.Background(), "template lookup failed", "template", templateName)
		return "", err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.key == nil {
		return "", common.ErrClosed
	}

	ks, err := keystream.New(g.alg, g.key, site, counter)
	if err != nil {
		return "", err
	}
	defer ks.Close()

	pw, err := mapper.Map(ks, tpl)
	if err != nil {
		g.logger.Warn(context.Background(), "derivation failed", "template", templateName, "error", err)
		return "", fmt.Errorf("derive %q: %w", templateName, err)
	}
	return pw, nil
}

// SitePassword derives using a site profile and cuts the result to the
// profile's display length.
func (g *PasswordGenerator) SitePassword(site string, s sites.Site) (string, error) {
	pw, err := g.CreateSitePasswordCounter(site, s.TemplateName, s.Counter)
	if err != nil {
		return "", err
	}
	return Truncate(pw, s.Length), nil
}

// Close wipes the master key. Later derivations fail with ErrClosed.
func (g *PasswordGenerator) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.key != nil {
		g.key.Wipe()
		g.key = nil
		g.logger.Debug(context.Background(), "master key wiped")
	}
	return nil
}

// Truncate returns the first n characters of pw. A non-positive n, or one
// at least as long as pw, returns pw unchanged. Because derivation is
// prefix-stable this equals a derivation restricted to n characters.
func Truncate(pw string, n int) string {
	if n <= 0 {
		return pw
	}
	i := 0
	for pos := range pw {
		if i == n {
			return pw[:pos]
		}
		i++
	}
	return pw
}
