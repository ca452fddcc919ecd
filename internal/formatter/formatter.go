// package formatter provides functions to export the drop feed to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/feldhop/the-album-club-app/internal/models"
)

// ExportToCSV converts a drop feed to CSV format with columns: ID, Album, Artist, Date, Dropper, Email
func ExportToCSV(drops []models.DropView) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Album", "Artist", "Date", "Dropper", "Email"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, drop := range drops {
		record := []string{
			strconv.FormatInt(drop.DropID, 10),
			drop.AlbumName,
			drop.ArtistName,
			drop.DropDate,
			dropperName(drop),
			drop.UserEmail,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a drop feed to Markdown format with cover links
func ExportToMarkdown(drops []models.DropView) []byte {
	var buf bytes.Buffer

	buf.WriteString("# Album Drops\n\n")
	buf.WriteString(fmt.Sprintf("**Drops**: %d\n\n", len(drops)))

	for i, drop := range drops {
		buf.WriteString(fmt.Sprintf("%d. [%s](%s) - %s, dropped by %s on %s\n",
			i+1, drop.AlbumName, drop.CoverURL, drop.ArtistName, dropperName(drop), drop.DropDate))
	}

	return buf.Bytes()
}

// ExportToText converts a drop feed to plain text format
func ExportToText(drops []models.DropView) []byte {
	var buf bytes.Buffer

	for _, drop := range drops {
		buf.WriteString(fmt.Sprintf("%s - %s (%s) dropped by %s\n",
			drop.ArtistName, drop.AlbumName, drop.DropDate, dropperName(drop)))
	}

	return buf.Bytes()
}

func dropperName(drop models.DropView) string {
	if drop.UserLastName == "" {
		return drop.UserFirstName
	}
	return drop.UserFirstName + " " + drop.UserLastName
}
