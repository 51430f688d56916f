package cmd

import (
	"context"
	"runtime"

	"devkit/internal/catalog"
	"devkit/internal/engine"
	"devkit/internal/logger"
	"devkit/internal/settings"
)

// runHeadless is the non-interactive path: catalog-declared defaults
// are installed with no prompts and progress goes to the color logger.
// The run always ends with a setup-complete summary, whatever happened
// to individual steps.
func runHeadless(ctx context.Context, cat *catalog.Catalog, eng engine.Engine) {
	ide, haveIDE := cat.DefaultIDE()
	plan := engine.Plan{
		IDE:           ide,
		InstallIDE:    haveIDE,
		Extensions:    cat.DefaultExtensions(),
		Apps:          cat.DefaultApps(),
		ApplySettings: haveIDE,
		GOOS:          runtime.GOOS,
		TemplatesDir:  templatesDir,
		Env:           settings.EnvFromOS(),
	}

	var sum engine.Summary
	for msg := range eng.Run(ctx, plan) {
		sum.Apply(msg)
		switch msg.State {
		case engine.StateRunning:
			logger.Info("[INFO] %s...\n", msg.Item)
		case engine.StateDone:
			if msg.Detail != "" {
				logger.Info("[INFO] %s: %s\n", msg.Item, msg.Detail)
			} else {
				logger.Info("[INFO] %s: done\n", msg.Item)
			}
		case engine.StateWarning, engine.StateUnknown, engine.StateSkipped:
			logger.Warn("[WARN] %s: %s\n", msg.Item, msg.Detail)
		case engine.StateError:
			logger.Error("[ERROR] %s: %s\n", msg.Item, msg.Detail)
		}
	}

	done, attention, failed := sum.Counts()
	logger.Info("[INFO] Setup complete: %d done, %d need attention, %d failed\n", done, attention, failed)
}
