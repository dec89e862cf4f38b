package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/app"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/config"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournamentimport"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/interfaces/importfile"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/platform/logging"
	"github.com/urfave/cli/v2"
)

func main() {
	cliApp := &cli.App{
		Name:  "importer",
		Usage: "import a complete tournament from a JSON file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "path to the tournament JSON file",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "validate-only",
				Usage: "check the file without writing anything",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "dotenv file loaded before reading configuration",
				Value: ".env",
			},
		},
		Action: run,
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	payload, err := loadPayload(c.Context, c.String("file"))
	if err != nil {
		return err
	}

	if c.Bool("validate-only") {
		fmt.Fprintf(c.App.Writer, "%s is valid: %d player(s), %d deck(s), %d match(es), %d game(s)\n",
			c.String("file"), len(payload.PlayerNames()), len(payload.DeckNames()), len(payload.Matches), payload.GameCount())
		return nil
	}

	if err := config.LoadDotEnv(c.String("env-file")); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.NewJSON(cfg.LogLevel).Named("importer")
	defer func() { _ = logger.Sync() }()

	container, err := app.Build(c.Context, cfg, logger)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			logger.Warn("close storage failed", "error", err)
		}
	}()

	result, err := container.Services.Import.ImportTournament(c.Context, payload)
	if err != nil {
		return fmt.Errorf("import %s: %w", c.String("file"), err)
	}

	return writeResult(c.App.Writer, importfile.FromResult(result))
}

// loadPayload reads path and runs every check the import would run before
// touching storage.
func loadPayload(ctx context.Context, path string) (tournamentimport.Payload, error) {
	doc, err := importfile.ReadFile(path)
	if err != nil {
		return tournamentimport.Payload{}, err
	}
	if err := doc.Validate(ctx); err != nil {
		return tournamentimport.Payload{}, err
	}

	payload, err := doc.ToPayload()
	if err != nil {
		return tournamentimport.Payload{}, err
	}

	if violations := tournamentimport.Validate(payload); len(violations) > 0 {
		lines := make([]string, 0, len(violations))
		for _, v := range violations {
			lines = append(lines, "  "+v.String())
		}
		return tournamentimport.Payload{}, fmt.Errorf("%s failed validation:\n%s", path, strings.Join(lines, "\n"))
	}

	return payload, nil
}

func writeResult(w io.Writer, result importfile.Result) error {
	out, err := sonic.ConfigStd.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
