package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rootsapp/roots-server/internal/domain"
	"github.com/rootsapp/roots-server/internal/store/sqlite"
)

func main() {
	basePath := os.Getenv("DATA_PATH")
	if basePath == "" {
		basePath = os.ExpandEnv("$HOME/Roots/data")
	}
	dbPath := filepath.Join(basePath, "roots.db")

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	s, err := sqlite.Open(dbPath, logger)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	fmt.Println("=== Database Inspection ===")
	fmt.Println()

	books, err := s.ListBooks(ctx)
	if err != nil {
		log.Fatalf("Failed to list books: %v", err)
	}

	byStatus := map[domain.Status]int{}
	rated := 0
	missingPageCount := 0

	for i, book := range books {
		byStatus[book.Status]++
		if book.Rating != nil {
			rated++
		}
		if book.PageCount <= 0 {
			missingPageCount++
		}

		// Show the first few entries in full.
		if i < 3 {
			fmt.Printf("Book: %s\n", book.Title)
			fmt.Printf("  ID: %s\n", book.ID)
			fmt.Printf("  Authors: %s\n", book.Authors)
			fmt.Printf("  Status: %s\n", book.Status)
			if book.PageCount > 0 {
				fmt.Printf("  Progress: page %d of %d (%d%%)\n", book.CurrentPage, book.PageCount, book.Percent())
			} else {
				fmt.Printf("  Progress: page count unknown\n")
			}
			if book.Rating != nil {
				fmt.Printf("  Rating: %d/5\n", *book.Rating)
			}
			fmt.Println()
		}
	}

	sessions, err := s.ListReadingSessions(ctx, 0)
	if err != nil {
		log.Fatalf("Failed to list sessions: %v", err)
	}

	totalSeconds := 0
	linked := 0
	for _, session := range sessions {
		totalSeconds += session.DurationSeconds
		if session.BookID != nil {
			linked++
		}
	}

	notes, err := s.ListNotes(ctx, nil)
	if err != nil {
		log.Fatalf("Failed to list notes: %v", err)
	}

	genres, err := s.ListGenres(ctx)
	if err != nil {
		log.Fatalf("Failed to list genres: %v", err)
	}

	fmt.Println("=== Summary ===")
	fmt.Printf("Total books: %d\n", len(books))
	fmt.Printf("  want-to-read: %d\n", byStatus[domain.StatusWantToRead])
	fmt.Printf("  reading: %d\n", byStatus[domain.StatusReading])
	fmt.Printf("  finished: %d\n", byStatus[domain.StatusFinished])
	fmt.Printf("  rated: %d\n", rated)
	fmt.Printf("  missing page count: %d\n", missingPageCount)
	fmt.Printf("Reading sessions: %d (%d linked to a book)\n", len(sessions), linked)
	fmt.Printf("Total reading time: %dh %dm\n", totalSeconds/3600, totalSeconds%3600/60)
	fmt.Printf("Notes: %d\n", len(notes))
	fmt.Printf("Genres: %d\n", len(genres))
}
