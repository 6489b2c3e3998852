package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/inovacc/rostr/internal/application"
	"github.com/inovacc/rostr/internal/cli"
	"github.com/inovacc/rostr/internal/config"
	"github.com/inovacc/rostr/internal/core"
	"github.com/inovacc/rostr/internal/logger"
	"github.com/inovacc/rostr/internal/store"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	initOnce sync.Once
	initErr  error

	cfg      *config.Config
	log      zerolog.Logger
	logClose io.Closer
)

var rootCmd = &cobra.Command{
	Use:     application.AppName,
	Version: application.AppVersion,
	Short:   "A student records manager",
	Long: `Rostr is a command-line tool for managing student records.
Run it without arguments for an interactive menu, or use the subcommands
to script individual operations against the same roster file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Resolve config and logging once for the whole command tree
		initOnce.Do(func() {
			cfg, initErr = config.Load()
			if initErr != nil {
				return
			}

			var err error

			log, logClose, err = logger.Open(cfg.Log.Level)
			if err != nil {
				// A session without a log file is still a session.
				log = logger.Discard()
			}

			installInterruptHandler()
		})

		return initErr
	},
	RunE: runSession,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// runSession starts the interactive menu loop against the configured
// roster file. A corrupt data file is reported and the session continues
// with an empty roster.
func runSession(cmd *cobra.Command, args []string) error {
	st := store.NewFileStore(cfg.DataFile).WithLogger(log)

	roster, skipped, err := core.LoadRoster(st)

	s := cli.NewSession(roster, cfg, os.Stdin, os.Stdout).
		WithLogger(log).
		WithTerminal(term.IsTerminal(int(os.Stdin.Fd())))

	if err != nil || skipped > 0 {
		s.WarnLoad(err, skipped)
	}

	if err := s.Run(); err != nil {
		if errors.Is(err, cli.ErrInterrupted) {
			return nil
		}

		return err
	}

	return nil
}

// installInterruptHandler covers the line-based prompts, where ctrl+c
// raises a signal instead of reaching a terminal program.
func installInterruptHandler() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-ch

		_, _ = fmt.Fprintln(os.Stdout, "\nInterrupted - goodbye!")

		if logClose != nil {
			_ = logClose.Close()
		}

		os.Exit(0)
	}()
}
