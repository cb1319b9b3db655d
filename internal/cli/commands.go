package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/fort/internal/common"
	"github.com/dmitrijs2005/fort/internal/hashx"
	"github.com/dmitrijs2005/fort/internal/sites"
)

var errUsage = errors.New("usage")

// report prints err for the user and logs it without any secret material.
func (a *App) report(ctx context.Context, cmd string, err error) error {
	printlnFn("error:", err)
	a.logger.Warn(ctx, "command failed", "command", cmd, "error", err)
	return err
}

// Templates prints the template catalog with each template's length.
func (a *App) Templates(ctx context.Context) error {
	for i, name := range a.registry.Names() {
		t, err := a.registry.Lookup(name)
		if err != nil {
			return a.report(ctx, "templates", err)
		}
		printlnFn(fmt.Sprintf("%d. %s (%d)", i, name, t.Len()))
	}
	return nil
}

// Algorithms prints the supported hash algorithms, marking the active one.
func (a *App) Algorithms(ctx context.Context) error {
	for _, name := range hashx.Algorithms() {
		if name == a.config.Algorithm {
			printlnFn(name, "(active)")
			continue
		}
		printlnFn(name)
	}
	return nil
}

// Sites prints every site that has a stored profile.
func (a *App) Sites(ctx context.Context) error {
	names := a.profiles.Names()
	if len(names) == 0 {
		printlnFn("No site profiles loaded")
		return nil
	}
	for _, name := range names {
		s := a.profiles.Get(name)
		printlnFn(fmt.Sprintf("%s template=%s counter=%d length=%d", name, s.TemplateName, s.Counter, s.Length))
	}
	return nil
}

// Site derives the password of a site using its stored profile, or the
// default profile if there is none. Without arguments the site name is
// prompted for.
func (a *App) Site(ctx context.Context, args []string) error {
	var site string
	switch len(args) {
	case 0:
		name, err := GetSimpleText(a.reader, "Enter site name", a.out)
		if err != nil {
			return a.report(ctx, "site", err)
		}
		if name == "" {
			return a.report(ctx, "site", fmt.Errorf("%w: empty site", common.ErrInvalidInput))
		}
		site = name
	case 1:
		site = args[0]
	default:
		printlnFn("Usage: site [name]")
		return errUsage
	}

	if !a.profiles.Has(site) {
		printlnFn("(default profile)")
	}
	return a.derive(ctx, "site", site, a.profiles.Get(site))
}

// Gen derives with explicit parameters: gen <site> [template] [counter] [length].
// Omitted parameters come from the default profile.
func (a *App) Gen(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 4 {
		printlnFn("Usage: gen <site> [template] [counter] [length]")
		return errUsage
	}

	s := sites.DefaultSite()
	if len(args) > 1 {
		s.TemplateName = args[1]
	}
	if len(args) > 2 {
		c, err := strconv.ParseUint(args[2], 10, 32)
		if err != nil {
			return a.report(ctx, "gen", fmt.Errorf("%w: counter %q", common.ErrInvalidInput, args[2]))
		}
		s.Counter = uint32(c)
	}
	if len(args) > 3 {
		l, err := strconv.Atoi(args[3])
		if err != nil || l < 0 {
			return a.report(ctx, "gen", fmt.Errorf("%w: length %q", common.ErrInvalidInput, args[3]))
		}
		s.Length = l
	}

	return a.derive(ctx, "gen", args[0], s)
}

func (a *App) derive(ctx context.Context, cmd, site string, s sites.Site) error {
	if !a.isLoggedIn() {
		return a.report(ctx, cmd, common.ErrClosed)
	}
	pw, err := a.gen.SitePassword(site, s)
	if err != nil {
		return a.report(ctx, cmd, err)
	}
	a.logger.Debug(ctx, "password derived", "template", s.TemplateName, "counter", s.Counter)
	printlnFn(pw)
	return nil
}
