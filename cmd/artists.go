package main

import (
	"context"
	"fmt"

	"github.com/feldhop/the-album-club-app/internal/shared"
	"github.com/urfave/cli/v3"
)

// ArtistsSearch probes the catalog's artist search directly.
func (r *Runner) ArtistsSearch(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: a search query is required", shared.ErrMissingArgument)
	}

	r.logger.Info("searching catalog", "query", query, "catalog", r.catalog.Name())

	artists, err := r.catalog.SearchArtists(ctx, query)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	return r.writeJSON(artists, cmd.Bool("pretty"))
}

// ArtistsAlbums probes the catalog's album listing directly.
func (r *Runner) ArtistsAlbums(ctx context.Context, cmd *cli.Command) error {
	artistID := cmd.Int64Arg("id")
	if artistID <= 0 {
		return fmt.Errorf("%w: a positive artist id is required", shared.ErrInvalidArgument)
	}

	r.logger.Info("listing albums", "artist_id", artistID, "catalog", r.catalog.Name())

	albums, err := r.catalog.ListAlbums(ctx, artistID)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	return r.writeJSON(albums, cmd.Bool("pretty"))
}

func artistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "artists",
		Usage: "Query the music catalog directly",
		Commands: []*cli.Command{
			{
				Name:  "search",
				Usage: "Search artists by name",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "query"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output", Value: true},
				},
				Action: r.ArtistsSearch,
			},
			{
				Name:  "albums",
				Usage: "List an artist's albums by catalog id",
				Arguments: []cli.Argument{
					&cli.Int64Arg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output", Value: true},
				},
				Action: r.ArtistsAlbums,
			},
		},
	}
}
