package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSetupLogger(t *testing.T) {
	originalLogger := slog.Default()
	defer slog.SetDefault(originalLogger)

	newContext := func(level string) *cli.Context {
		app := &cli.App{
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "log-level", Value: "info"},
			},
		}
		var captured *cli.Context
		app.Action = func(c *cli.Context) error {
			captured = c
			return nil
		}
		args := []string{"zoometf"}
		if level != "" {
			args = append(args, "--log-level", level)
		}
		require.NoError(t, app.Run(args))
		return captured
	}

	t.Run("accepts known levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "DEBUG"} {
			assert.NoError(t, setupLogger(newContext(level)), level)
		}
	})

	t.Run("rejects unknown levels", func(t *testing.T) {
		err := setupLogger(newContext("verbose"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestValidateCommandRequiresFile(t *testing.T) {
	app := &cli.App{
		Commands: []*cli.Command{
			{
				Name:   "validate",
				Action: validateCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Required: true},
				},
			},
		},
	}

	err := app.Run([]string{"zoometf", "validate"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file")
}
