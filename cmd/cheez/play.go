package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/robalobadob/cheez/internal/checker"
	"github.com/robalobadob/cheez/internal/game"
	"github.com/robalobadob/cheez/internal/idgen"
	"github.com/robalobadob/cheez/internal/tui"
)

var (
	playRemote  string
	playSession string
	playLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play in the terminal.

Without --remote, guesses are checked locally against the configured target.
With --remote, guesses are sent to a verdict service (cheez serve) and count
against --session, which defaults to a fresh random id.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lg, closeLog, err := playLogger(playLogFile)
		if err != nil {
			return err
		}
		defer closeLog()

		session := playSession
		if session == "" {
			if session, err = idgen.Session(); err != nil {
				return err
			}
		}

		var chk game.Checker
		remote := playRemote
		if remote == "" {
			remote = cfg.Remote
		}
		if remote != "" {
			chk = checker.NewRemote(strings.TrimSuffix(remote, "/")+"/guess", session)
		} else {
			local, err := checker.NewLocal(cfg.Target, cfg.MaxAttempts)
			if err != nil {
				return err
			}
			chk = local
		}

		model := tui.New(cfg.MaxAttempts, session)
		prog := tea.NewProgram(model, tea.WithAltScreen())

		var effect game.Effect
		if cfg.Penalty > 0 {
			effect = &game.TimedPenalty{Surface: model, Duration: cfg.Penalty}
		}
		g, err := game.New(game.Options{
			Surface:     model,
			Checker:     chk,
			Dispatch:    tui.Dispatcher(prog),
			MaxAttempts: cfg.MaxAttempts,
			Effect:      effect,
			Logger:      &lg,
		})
		if err != nil {
			return err
		}
		defer g.Close()
		model.Attach(g)

		lg.Info().Str("session", session).Str("remote", remote).Msg("play")
		if _, err := prog.Run(); err != nil {
			return fmt.Errorf("terminal ui: %w", err)
		}
		return nil
	},
}

func init() {
	playCmd.Flags().StringVar(&playRemote, "remote", "", "verdict service base URL (default: check locally)")
	playCmd.Flags().StringVar(&playSession, "session", "", "session id for the remote checker (default: random)")
	playCmd.Flags().StringVar(&playLogFile, "log-file", "", "write JSON logs to this file")
}

// playLogger returns a logger for the game. The terminal belongs to the UI,
// so logs go to path or nowhere.
func playLogger(path string) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	lg := zerolog.New(f).With().Timestamp().Logger()
	return lg, func() { _ = f.Close() }, nil
}
