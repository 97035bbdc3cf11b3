package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	apiclient "github.com/manoslocales/marketwatch/internal/api/client"
	domain "github.com/manoslocales/marketwatch/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printFavoritesTable(favs *apiclient.Favorites) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("KIND\tENTITY ID\n")
	for _, id := range favs.Products {
		tw.writef("product\t%s\n", id)
	}
	for _, id := range favs.Providers {
		tw.writef("provider\t%s\n", id)
	}
	return tw.finish()
}

func printNotificationsTable(items []domain.NotificationItem) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("CREATED\tREAD\tTITLE\tMESSAGE\n")
	for i := range items {
		read := " "
		if items[i].Read {
			read = "✓"
		}
		tw.writef("%s\t%s\t%s\t%s\n",
			items[i].CreatedAt.Format("2006-01-02 15:04"),
			read,
			items[i].Title,
			truncate(items[i].Message, 60),
		)
	}
	return tw.finish()
}

func printProductsTable(products []domain.Product) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tPRICE\tCATEGORY\tAVAILABLE\n")
	for i := range products {
		tw.writef("%s\t%s\t%s\t%s\t%v\n",
			products[i].ID,
			truncate(products[i].Name, 40),
			products[i].DisplayPrice(),
			products[i].Category,
			products[i].Available,
		)
	}
	return tw.finish()
}

func printProductDetail(p *domain.Product) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", p.ID)
	tw.writef("Name:\t%s\n", p.Name)
	tw.writef("Provider:\t%s\n", p.ProviderID)
	tw.writef("Price:\t%s %s\n", p.DisplayPrice(), p.Currency)
	tw.writef("Category:\t%s\n", p.Category)
	tw.writef("Available:\t%v\n", p.Available)
	tw.writef("Updated:\t%s\n", p.UpdatedAt.Format("2006-01-02 15:04:05"))
	return tw.finish()
}

func printProviderDetail(p *domain.Provider) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", p.ID)
	tw.writef("Name:\t%s\n", p.Name)
	tw.writef("City:\t%s\n", p.City)
	tw.writef("Email:\t%s\n", p.Email)
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
