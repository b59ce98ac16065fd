// Browse renders one page of the catalog from a running API server,
// applying the same search, genre and status filters the dashboard uses.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"github.com/calebrosario/bookhaven-backend/internal/catalog"
	"github.com/calebrosario/bookhaven-backend/pkg/client"
	"github.com/calebrosario/bookhaven-backend/pkg/enums"
	"github.com/calebrosario/bookhaven-backend/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "browse"})
	ctx := context.Background()

	_ = godotenv.Load()

	baseURL := flag.String("url", "http://localhost:5000", "API base URL")
	search := flag.String("search", "", "match against title and author")
	genre := flag.String("genre", "", "exact genre filter")
	status := flag.String("status", "", "status filter: Available|Issued")
	page := flag.Int("page", 1, "page number")
	listGenres := flag.Bool("genres", false, "print the distinct genres and exit")
	flag.Parse()

	if *status != "" {
		if _, err := enums.ParseBookStatus(*status); err != nil {
			fmt.Fprintln(os.Stderr, "invalid -status value:", *status)
			os.Exit(1)
		}
	}

	apiClient, err := client.New(*baseURL)
	if err != nil {
		logg.Error(ctx, "invalid API base URL", err)
		os.Exit(1)
	}

	viewer := catalog.NewViewer(apiClient)
	viewer.SetSearch(*search)
	viewer.SetGenre(*genre)
	viewer.SetStatus(*status)
	viewer.SetPage(*page)

	view, err := viewer.View(ctx)
	if err != nil {
		logg.Error(ctx, "failed to load catalog", err)
		os.Exit(1)
	}

	if *listGenres {
		for _, g := range viewer.Genres() {
			fmt.Println(g)
		}
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tAUTHOR\tGENRE\tYEAR\tSTATUS")
	for _, record := range view.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", record.Title, record.Author, record.Genre, record.Year, record.Status)
	}
	w.Flush()

	fmt.Printf("\npage %d of %d (%d books)\n", view.Index, view.TotalPages, view.TotalItems)
}
