// seed prepara el directorio: crea (o promueve) el superadmin y opcionalmente importa
// empresas desde un CSV con columnas name,location.
//
// Uso: go run ./cmd/seed [-email admin@x.com -password secreto] [-csv empresas.csv [-latin1]]
// Sin flags toma SUPERADMIN_NAME, SUPERADMIN_EMAIL y SUPERADMIN_PASSWORD de la configuración.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/jhoicas/directorio-api/internal/application/auth"
	"github.com/jhoicas/directorio-api/internal/application/usecase"
	"github.com/jhoicas/directorio-api/internal/infrastructure/storage"
	"github.com/jhoicas/directorio-api/pkg/config"
	"github.com/jhoicas/directorio-api/pkg/logger"
	"github.com/jhoicas/directorio-api/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	name := flag.String("name", cfg.Superadmin.Name, "nombre del superadmin")
	email := flag.String("email", cfg.Superadmin.Email, "email del superadmin")
	plain := flag.String("password", cfg.Superadmin.Password, "contraseña del superadmin")
	csvPath := flag.String("csv", "", "CSV de empresas a importar (name,location)")
	latin1 := flag.Bool("latin1", false, "el CSV está en ISO-8859-1")
	flag.Parse()

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("conexión al almacenamiento")
	}
	defer store.Close()

	authUC := auth.NewAuthUseCase(store.Users, password.NewBcrypt(cfg.Security.BcryptCost))
	superadmin, err := authUC.EnsureSuperadmin(ctx, *name, *email, *plain)
	if err != nil {
		log.Error().Err(err).Msg("crear superadmin")
		os.Exit(1)
	}
	log.Info().Str("user_id", superadmin.ID).Str("email", superadmin.Email).Msg("superadmin listo")

	if *csvPath == "" {
		return
	}
	f, err := os.Open(*csvPath)
	if err != nil {
		log.Error().Err(err).Str("file", *csvPath).Msg("abrir CSV")
		os.Exit(1)
	}
	defer f.Close()

	rows, err := readCompanies(f, *latin1)
	if err != nil {
		log.Error().Err(err).Str("file", *csvPath).Msg("leer CSV")
		os.Exit(1)
	}
	res, err := importCompanies(ctx, usecase.NewCompanyUseCase(store.Companies), superadmin, rows, log)
	if err != nil {
		log.Error().Err(err).Msg("importar empresas")
		os.Exit(1)
	}
	log.Info().Int("created", res.Created).Int("skipped", res.Skipped).Msg("importación terminada")
}
