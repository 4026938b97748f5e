// Command seed clears the events table and loads a fixed set of sample
// events. One-shot utility, not part of runtime behavior.
package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"

	"eventhub/config"
	"eventhub/internal/domain"
	"eventhub/internal/repository/postgres"
)

var sampleEvents = []*domain.Event{
	domain.NewEvent(
		"Tech Conference 2025",
		"Join us for the biggest tech conference of the year featuring AI, blockchain, and cloud computing experts. Network with industry leaders and discover the latest innovations.",
		time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		domain.DomainTech,
	),
	domain.NewEvent(
		"Cultural Festival",
		"Experience the rich diversity of cultures through music, dance, art, and cuisine. A celebration of unity and heritage.",
		time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC),
		domain.DomainCultural,
	),
	domain.NewEvent(
		"Sports Championship",
		"Witness the ultimate showdown of athletic excellence. Multiple sports categories with top athletes competing for glory.",
		time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
		domain.DomainSports,
	),
	domain.NewEvent(
		"Business Networking Event",
		"Connect with entrepreneurs, investors, and business professionals. Share ideas and build meaningful partnerships.",
		time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		domain.DomainNonTech,
	),
	domain.NewEvent(
		"AI Workshop Series",
		"Hands-on workshops on machine learning, neural networks, and practical AI applications. Perfect for beginners and experts alike.",
		time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC),
		domain.DomainTech,
	),
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	log.Println("Connected to database")

	if _, err := db.ExecContext(ctx, "DELETE FROM events"); err != nil {
		log.Fatalf("clear events: %v", err)
	}
	log.Println("Cleared existing events")

	repo := postgres.NewEventRepository(db)
	for _, e := range sampleEvents {
		now := time.Now()
		e.CreatedAt = now
		e.UpdatedAt = now
		if err := repo.Create(ctx, e); err != nil {
			log.Fatalf("insert %q: %v", e.Name, err)
		}
		log.Printf("- %s (%s) on %s", e.Name, e.Domain, e.Date.Format("2006-01-02"))
	}

	log.Printf("Inserted %d sample events", len(sampleEvents))
}
