package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/fort/internal/common"
	"github.com/dmitrijs2005/fort/internal/config"
	"github.com/dmitrijs2005/fort/internal/cryptox"
	"github.com/dmitrijs2005/fort/internal/generator"
	"github.com/dmitrijs2005/fort/internal/logging"
	"github.com/dmitrijs2005/fort/internal/sites"
	"github.com/dmitrijs2005/fort/internal/template"
	"github.com/google/uuid"
)

// maxLoginAttempts bounds master password prompts per session.
const maxLoginAttempts = 3

// getPassword is an indirection used to facilitate testing.
var getPassword = GetPassword

type App struct {
	config   *config.Config
	kdf      cryptox.KDF
	registry *template.Registry
	profiles *sites.Profiles
	logger   logging.Logger
	gen      *generator.PasswordGenerator
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp validates cfg and prepares everything that does not need the
// master password: logger, template catalog, KDF and site profiles.
func NewApp(c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	base, err := logging.New(os.Stderr, level, c.LogFormat)
	if err != nil {
		return nil, err
	}
	logger := base.With("session", uuid.NewString())

	kdf, err := cryptox.NewKDF(c.KDF)
	if err != nil {
		return nil, err
	}

	registry, err := c.Registry()
	if err != nil {
		return nil, err
	}

	profiles := sites.Empty()
	if c.SitesFile != "" {
		profiles, err = sites.Load(c.SitesFile)
		if err != nil {
			return nil, err
		}
		logger.Info(context.Background(), "site profiles loaded", "file", c.SitesFile, "count", profiles.Len())
	}

	return &App{
		config:   c,
		kdf:      kdf,
		registry: registry,
		profiles: profiles,
		logger:   logger,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Login prompts for the master password and builds the generator. The
// password bytes are wiped before returning.
func (a *App) Login(ctx context.Context) error {
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	g, err := generator.NewWithPassword(a.config.Algorithm, password,
		generator.WithKDF(a.kdf),
		generator.WithRegistry(a.registry),
		generator.WithLogger(a.logger),
	)
	if err != nil {
		a.logger.Warn(ctx, "generator not created", "error", err)
		return err
	}

	if a.gen != nil {
		_ = a.gen.Close()
	}
	a.gen = g
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.gen != nil
}

// Close wipes the master key.
func (a *App) Close() error {
	if a.gen == nil {
		return nil
	}
	err := a.gen.Close()
	a.gen = nil
	return err
}

// Run logs in and serves the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	printlnFn("Welcome to fort (type 'help' for commands)")

	for attempt := 1; !a.isLoggedIn(); attempt++ {
		err := a.Login(ctx)
		if err == nil {
			break
		}
		if errors.Is(err, io.EOF) || attempt == maxLoginAttempts {
			return err
		}
		printlnFn("error:", err)
	}

	runREPL(ctx, a, a.reader)
	return nil
}
