// Seed wipes the catalog and loads a demo book collection. Intended for
// local development only.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/calebrosario/bookhaven-backend/internal/books"
	"github.com/calebrosario/bookhaven-backend/pkg/config"
	"github.com/calebrosario/bookhaven-backend/pkg/db"
	"github.com/calebrosario/bookhaven-backend/pkg/db/models"
	"github.com/calebrosario/bookhaven-backend/pkg/enums"
	"github.com/calebrosario/bookhaven-backend/pkg/logger"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if cfg.App.IsProd() {
		logg.Error(ctx, "refusing to seed a production database", fmt.Errorf("app env is %q", cfg.App.Env))
		os.Exit(1)
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	records := demoBooks()
	err = dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		repo := books.NewRepository(tx)
		if err := repo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("wipe collection: %w", err)
		}
		for i := range records {
			if _, err := repo.Create(ctx, &records[i]); err != nil {
				return fmt.Errorf("insert %q: %w", records[i].Title, err)
			}
		}
		return nil
	})
	if err != nil {
		logg.Error(ctx, "seeding failed", err)
		os.Exit(1)
	}

	logg.Info(logg.WithField(ctx, "count", len(records)), "demo books inserted")
}

func demoBooks() []models.Book {
	available := enums.BookStatusAvailable
	issued := enums.BookStatusIssued

	entries := []struct {
		title  string
		author string
		genre  string
		year   int
		status enums.BookStatus
	}{
		{"To Kill a Mockingbird", "Harper Lee", "Fiction", 1960, available},
		{"1984", "George Orwell", "Dystopian", 1949, issued},
		{"Pride and Prejudice", "Jane Austen", "Romance", 1813, available},
		{"The Great Gatsby", "F. Scott Fitzgerald", "Fiction", 1925, available},
		{"Moby-Dick", "Herman Melville", "Adventure", 1851, available},
		{"Brave New World", "Aldous Huxley", "Dystopian", 1932, issued},
		{"Jane Eyre", "Charlotte Bronte", "Romance", 1847, available},
		{"Wuthering Heights", "Emily Bronte", "Romance", 1847, available},
		{"Crime and Punishment", "Fyodor Dostoevsky", "Fiction", 1866, issued},
		{"The Brothers Karamazov", "Fyodor Dostoevsky", "Fiction", 1880, available},
		{"Frankenstein", "Mary Shelley", "Horror", 1818, available},
		{"Dracula", "Bram Stoker", "Horror", 1897, issued},
		{"The Hobbit", "J.R.R. Tolkien", "Fantasy", 1937, available},
		{"The Fellowship of the Ring", "J.R.R. Tolkien", "Fantasy", 1954, issued},
		{"Dune", "Frank Herbert", "Sci-Fi", 1965, available},
		{"Foundation", "Isaac Asimov", "Sci-Fi", 1951, available},
		{"Neuromancer", "William Gibson", "Sci-Fi", 1984, issued},
		{"Fahrenheit 451", "Ray Bradbury", "Dystopian", 1953, available},
		{"The Catcher in the Rye", "J.D. Salinger", "Fiction", 1951, available},
		{"Of Mice and Men", "John Steinbeck", "Fiction", 1937, available},
		{"The Grapes of Wrath", "John Steinbeck", "Fiction", 1939, issued},
		{"One Hundred Years of Solitude", "Gabriel Garcia Marquez", "Magical Realism", 1967, available},
		{"Beloved", "Toni Morrison", "Fiction", 1987, available},
		{"Things Fall Apart", "Chinua Achebe", "Fiction", 1958, available},
		{"The Handmaid's Tale", "Margaret Atwood", "Dystopian", 1985, issued},
		{"Slaughterhouse-Five", "Kurt Vonnegut", "Sci-Fi", 1969, available},
		{"Catch-22", "Joseph Heller", "Satire", 1961, available},
		{"Lord of the Flies", "William Golding", "Fiction", 1954, issued},
		{"Animal Farm", "George Orwell", "Satire", 1945, available},
		{"The Picture of Dorian Gray", "Oscar Wilde", "Fiction", 1890, available},
		{"Great Expectations", "Charles Dickens", "Fiction", 1861, available},
		{"A Tale of Two Cities", "Charles Dickens", "Historical", 1859, issued},
		{"Les Miserables", "Victor Hugo", "Historical", 1862, available},
		{"Don Quixote", "Miguel de Cervantes", "Adventure", 1605, available},
		{"War and Peace", "Leo Tolstoy", "Historical", 1869, available},
		{"Anna Karenina", "Leo Tolstoy", "Romance", 1878, issued},
		{"The Count of Monte Cristo", "Alexandre Dumas", "Adventure", 1844, available},
		{"The Three Musketeers", "Alexandre Dumas", "Adventure", 1844, available},
		{"Treasure Island", "Robert Louis Stevenson", "Adventure", 1883, available},
		{"The Strange Case of Dr Jekyll and Mr Hyde", "Robert Louis Stevenson", "Horror", 1886, issued},
		{"The Adventures of Huckleberry Finn", "Mark Twain", "Adventure", 1884, available},
		{"The Adventures of Tom Sawyer", "Mark Twain", "Adventure", 1876, available},
		{"Little Women", "Louisa May Alcott", "Fiction", 1868, available},
		{"Emma", "Jane Austen", "Romance", 1815, available},
		{"Persuasion", "Jane Austen", "Romance", 1817, issued},
		{"The Old Man and the Sea", "Ernest Hemingway", "Fiction", 1952, available},
		{"For Whom the Bell Tolls", "Ernest Hemingway", "Fiction", 1940, available},
		{"A Farewell to Arms", "Ernest Hemingway", "Fiction", 1929, issued},
		{"The Sun Also Rises", "Ernest Hemingway", "Fiction", 1926, available},
		{"Invisible Man", "Ralph Ellison", "Fiction", 1952, available},
		{"Mrs Dalloway", "Virginia Woolf", "Fiction", 1925, available},
		{"To the Lighthouse", "Virginia Woolf", "Fiction", 1927, issued},
	}

	records := make([]models.Book, 0, len(entries))
	for _, entry := range entries {
		records = append(records, models.Book{
			Title:  entry.title,
			Author: entry.author,
			Genre:  entry.genre,
			Year:   entry.year,
			Status: entry.status,
		})
	}
	return records
}
