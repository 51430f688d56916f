package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"devkit/internal/catalog"
	"devkit/internal/engine"
	"devkit/internal/logger"
	"devkit/internal/prefs"
	"devkit/internal/runner"
	"devkit/internal/settings"
	"devkit/tui"
)

const version = "0.3.0"

// prefsFile is the optional preferences file looked up in the working
// directory.
const prefsFile = "devkit.toml"

var (
	debug        bool
	assumeYes    bool
	configPath   string
	templatesDir string
)

var rootCmd = &cobra.Command{
	Use:     "devkit",
	Short:   "Provision a developer machine: IDE, extensions, web apps, settings",
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := prefs.Load(prefsFile)
		if err != nil {
			return err
		}
		applyPrefs(cmd, p)

		logger.Init(debug)
		logger.Debug("[DEBUG] catalog=%s templates=%s yes=%v\n", configPath, templatesDir, assumeYes)

		cat, err := catalog.Load(configPath)
		if err != nil {
			return err
		}

		eng := engine.Engine{Runner: runner.ExecRunner{}}

		if assumeYes {
			runHeadless(cmd.Context(), cat, eng)
			return nil
		}

		model := tui.New(cmd.Context(), tui.Options{
			Catalog:      cat,
			Engine:       eng,
			GOOS:         runtime.GOOS,
			TemplatesDir: templatesDir,
			Env:          settings.EnvFromOS(),
		})
		_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
		return err
	},
}

// applyPrefs fills in flag values from devkit.toml where the user did
// not pass the flag explicitly.
func applyPrefs(cmd *cobra.Command, p prefs.Prefs) {
	if !cmd.Flags().Changed("debug") && p.Debug {
		debug = true
	}
	if !cmd.Flags().Changed("yes") && p.AssumeYes {
		assumeYes = true
	}
	if !cmd.Flags().Changed("config") && p.Catalog != "" {
		configPath = p.Catalog
	}
	if !cmd.Flags().Changed("templates") && p.Templates != "" {
		templatesDir = p.Templates
	}
}

// Execute parses flags and runs the root command. An interrupt cancels
// in-flight installs; no rollback is attempted.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip prompts and install catalog defaults")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "catalog.json", "Path to the catalog file")
	rootCmd.Flags().StringVarP(&templatesDir, "templates", "t", "configs", "Directory holding settings templates")
}
