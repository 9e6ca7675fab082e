// cmd/cheez/main.go
//
// cheez command line.
//
//	cheez serve        run the verdict service and the browser page
//	cheez play         play in the terminal
//
// Configuration comes from --config (TOML), .env and the environment; see
// internal/config.

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/robalobadob/cheez/internal/config"
)

var (
	configPath string
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:           "cheez <command>",
	Short:         "A five-letter guessing game with a remote verdict service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = c
		zerolog.SetGlobalLevel(cfg.Level())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
	rootCmd.AddCommand(serveCmd, playCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cheez:", err)
		os.Exit(1)
	}
}
