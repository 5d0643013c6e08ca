// Package main provides a tool to seed the database with sample reading data.
//
// This saves a handful of well-known books and generates realistic progress,
// daily pages, and reading sessions over the past two weeks to exercise the
// stats endpoints during development.
//
// Usage:
//
//	DATA_PATH=~/Roots/data go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/rootsapp/roots-server/internal/domain"
	"github.com/rootsapp/roots-server/internal/id"
	"github.com/rootsapp/roots-server/internal/store/sqlite"
)

// seedBooks are the sample library entries. IDs follow the external catalog
// volume-identifier shape so seeded data behaves like saved search results.
var seedBooks = []*domain.Book{
	{ID: "nsRDEAAAQBAJ", Title: "Piranesi", Authors: "Susanna Clarke", PageCount: 272},
	{ID: "zFheDwAAQBAJ", Title: "The Fifth Season", Authors: "N. K. Jemisin", PageCount: 512},
	{ID: "yxv1LK5gyV4C", Title: "The Road", Authors: "Cormac McCarthy", PageCount: 287},
	{ID: "Cg9cXHjRWpwC", Title: "Gilead", Authors: "Marilynne Robinson", PageCount: 256},
	{ID: "8166DwAAQBAJ", Title: "Circe", Authors: "Madeline Miller", PageCount: 400},
}

func main() {
	basePath := os.Getenv("DATA_PATH")
	if basePath == "" {
		basePath = os.ExpandEnv("$HOME/Roots/data")
	}
	dbPath := filepath.Join(basePath, "roots.db")

	fmt.Printf("Opening database at: %s\n", dbPath)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	s, err := sqlite.Open(dbPath, logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	for _, book := range seedBooks {
		book.Status = domain.StatusWantToRead
		book.CreatedAt = now
		book.UpdatedAt = now

		created, err := s.UpsertBook(ctx, book)
		if err != nil {
			log.Printf("Failed to save book %s: %v", book.Title, err)
			continue
		}
		if !created {
			fmt.Printf("Book already saved, keeping progress: %s\n", book.Title)
			continue
		}
		fmt.Printf("Saved book: %s (%d pages)\n", book.Title, book.PageCount)
	}

	// Walk the past 14 days, moving a couple of books forward and logging
	// pages and sessions for each active day.
	progress := make(map[string]int)
	eventsCreated := 0

	for day := 13; day >= 0; day-- {
		// Today and yesterday always get activity so the charts have a
		// current edge; earlier days skip sometimes for realism.
		if day > 1 && rng.Float32() > 0.8 {
			continue
		}

		date := now.AddDate(0, 0, -day)
		dayKey := date.Format(domain.DayFormat)

		readsPerDay := 1 + rng.Intn(3)
		for range readsPerDay {
			book := seedBooks[rng.Intn(len(seedBooks))]

			pages := 10 + rng.Intn(40)
			newPage := domain.ClampPages(book.PageCount, progress[book.ID]+pages)
			delta := domain.Delta(progress[book.ID], newPage)
			if delta == 0 {
				continue
			}
			progress[book.ID] = newPage

			status := domain.DeriveStatus(book.PageCount, newPage)
			if err := s.UpdateBookProgress(ctx, book.ID, newPage, status, date); err != nil {
				log.Printf("Failed to update progress for %s: %v", book.Title, err)
				continue
			}
			if err := s.RecordDailyProgress(ctx, book.ID, dayKey, delta); err != nil {
				log.Printf("Failed to record daily pages for %s: %v", book.Title, err)
				continue
			}

			// Roughly a minute and a half per page on the stopwatch.
			durationSeconds := delta * (80 + rng.Intn(40))
			started := time.Date(date.Year(), date.Month(), date.Day(), 6+rng.Intn(16), rng.Intn(60), 0, 0, time.Local)
			ended := started.Add(time.Duration(durationSeconds) * time.Second)

			session := &domain.ReadingSession{
				ID:              id.MustGenerate("rs"),
				BookID:          &book.ID,
				StartedAt:       &started,
				EndedAt:         &ended,
				DurationSeconds: durationSeconds,
				Day:             dayKey,
				CreatedAt:       ended,
			}
			if err := s.CreateReadingSession(ctx, session); err != nil {
				log.Printf("Failed to create session: %v", err)
				continue
			}

			eventsCreated++
		}
	}

	fmt.Printf("\nCreated %d reading sessions across %d days of activity\n", eventsCreated, 14)
	for _, book := range seedBooks {
		if page := progress[book.ID]; page > 0 {
			fmt.Printf("  %s: page %d of %d (%d%%)\n", book.Title, page, book.PageCount, domain.Percent(book.PageCount, page))
		}
	}

	fmt.Println("\nSeeding complete!")
}
