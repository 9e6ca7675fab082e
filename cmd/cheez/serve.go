package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/cheez/internal/httpserver"
	"github.com/robalobadob/cheez/internal/store"
	"github.com/robalobadob/cheez/internal/verdict"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the verdict service",
	Long: `Run the verdict service.

Attempts are kept in memory unless DB_PATH (or db_path) names a SQLite
file. The browser page is served at /; set STATIC_DIR to a directory holding
cheez.wasm and wasm_exec.js to serve the client under /app/.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cfg.DBPath)
		if err != nil {
			return err
		}
		defer st.Close()

		svc, err := verdict.New(st, cfg.Target, cfg.MaxAttempts)
		if err != nil {
			return err
		}
		srv := httpserver.New(svc, httpserver.Options{
			ClientOrigin: cfg.ClientOrigin,
			StaticDir:    cfg.StaticDir,
		})

		log.Info().
			Str("port", cfg.Port).
			Int("maxAttempts", cfg.MaxAttempts).
			Str("db", cfg.DBPath).
			Msg("starting cheez verdict service")
		if err := srv.Start(":" + cfg.Port); err != nil {
			return fmt.Errorf("server exited: %w", err)
		}
		return nil
	},
}

func openStore(path string) (store.Store, error) {
	if path == "" {
		return store.NewMemoryStore(), nil
	}
	st, err := store.OpenSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	return st, nil
}
