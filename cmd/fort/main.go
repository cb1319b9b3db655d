package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/fort/internal/buildinfo"
	"github.com/dmitrijs2005/fort/internal/cli"
	"github.com/dmitrijs2005/fort/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, io.EOF) {
		log.Fatalf("%v", err)
	}

}
