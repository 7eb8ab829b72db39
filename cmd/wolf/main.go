package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ludwigkubler/WOLF-APP/internal/application/auth"
	"github.com/ludwigkubler/WOLF-APP/internal/application/catalog"
	"github.com/ludwigkubler/WOLF-APP/internal/application/closeout"
	"github.com/ludwigkubler/WOLF-APP/internal/application/inventory"
	"github.com/ludwigkubler/WOLF-APP/internal/application/lots"
	"github.com/ludwigkubler/WOLF-APP/internal/infrastructure/exportpdf"
	"github.com/ludwigkubler/WOLF-APP/internal/infrastructure/restapi"
	"github.com/ludwigkubler/WOLF-APP/internal/interfaces/cli"
	"github.com/ludwigkubler/WOLF-APP/pkg/config"
	"github.com/ludwigkubler/WOLF-APP/pkg/logger"
	"github.com/ludwigkubler/WOLF-APP/pkg/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("error cargando configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, cfg.Log.Level)
	log.Debug().Str("api", cfg.API.BaseURL).Msg("configuración cargada")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := session.NewStore(cfg.App.TokenPath)
	client := restapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout(), store, log)

	authUC := auth.New(restapi.NewAuthGateway(client), store)
	catalogUC := catalog.New(restapi.NewProductGateway(client), authUC, cfg.App.Locale)
	ledgerUC := lots.New(restapi.NewLotGateway(client), authUC)
	inventoryUC := inventory.New(restapi.NewProductGateway(client), authUC, catalogUC.Reload)
	closeoutUC := closeout.New(restapi.NewCloseoutGateway(client), authUC)

	deps := cli.Deps{
		Auth:      authUC,
		Catalog:   catalogUC,
		Ledger:    ledgerUC,
		Inventory: inventoryUC,
		Closeouts: closeoutUC,
		PDF:       exportpdf.NewGenerator(),
	}

	os.Exit(cli.Run(ctx, deps, os.Args[1:]))
}
