package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/Freeeeeet/meetpoll/internal/config"
	"github.com/Freeeeeet/meetpoll/internal/heatmap"
	"github.com/Freeeeeet/meetpoll/internal/repository"
	"github.com/Freeeeeet/meetpoll/internal/schedule"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Утилита: рендерит тепловую карту встречи в PNG-файл
func main() {
	slug := flag.String("slug", "", "meeting slug")
	out := flag.String("out", "heatmap.png", "output file")
	flag.Parse()

	if *slug == "" {
		log.Fatal("-slug is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	store := repository.NewStore(pool)

	meeting, err := store.GetMeeting(ctx, *slug)
	if err != nil {
		log.Fatalf("Failed to load meeting: %v", err)
	}
	if meeting == nil {
		log.Fatalf("Meeting %q not found", *slug)
	}

	responses, err := store.ListResponses(ctx, *slug)
	if err != nil {
		log.Fatalf("Failed to load responses: %v", err)
	}

	slots := schedule.BuildSlots(meeting)
	agg := schedule.Aggregate(slots, responses)

	png, err := heatmap.Render(meeting, slots, agg)
	if err != nil {
		log.Fatalf("Failed to render heatmap: %v", err)
	}

	if err := os.WriteFile(*out, png, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}

	log.Printf("Heatmap written to %s (%d responses)", *out, len(responses))
}
