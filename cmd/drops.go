package main

import (
	"context"
	"fmt"
	"os"

	"github.com/feldhop/the-album-club-app/internal/formatter"
	"github.com/feldhop/the-album-club-app/internal/repositories"
	"github.com/feldhop/the-album-club-app/internal/shared"
	"github.com/urfave/cli/v3"
)

// DropsList prints the flattened drop feed, newest first.
func (r *Runner) DropsList(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewDropRepository(db)

	if cmd.Bool("latest") {
		drop, ok, err := repo.LatestDrop(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return r.writePlain("No drops available\n")
		}
		return r.writeJSON(drop, true)
	}

	drops, err := repo.ListDrops(ctx)
	if err != nil {
		return err
	}

	return r.writeJSON(drops, cmd.Bool("pretty"))
}

// DropsExport writes the drop feed to a file in csv, markdown or text format.
func (r *Runner) DropsExport(ctx context.Context, cmd *cli.Command) error {
	format := cmd.String("format")
	outputPath := cmd.String("output")

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	drops, err := repositories.NewDropRepository(db).ListDrops(ctx)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case "csv":
		if data, err = formatter.ExportToCSV(drops); err != nil {
			return fmt.Errorf("failed to export drops: %w", err)
		}
	case "markdown", "md":
		data = formatter.ExportToMarkdown(drops)
	case "text", "txt":
		data = formatter.ExportToText(drops)
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}

	if outputPath == "" {
		return r.writePlain("%s", string(data))
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	r.logger.Info("drops exported", "file", outputPath, "format", format, "count", len(drops))
	return nil
}

func dropsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "drops",
		Usage: "Inspect and export the drop feed",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List drops, newest first",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "latest", Usage: "Show only the newest drop"},
					&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output", Value: true},
				},
				Action: r.DropsList,
			},
			{
				Name:  "export",
				Usage: "Export the feed to csv, markdown or text",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "Export format", Value: "csv"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file (stdout when empty)"},
				},
				Action: r.DropsExport,
			},
		},
	}
}
