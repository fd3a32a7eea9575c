package main

import (
	"fmt"
	"os"

	aggregator "repair-auctions/internal/aggregatorService"
	bidding "repair-auctions/internal/bidService"
	"repair-auctions/internal/config"
	lifecycle "repair-auctions/internal/lifecycleService"
	model "repair-auctions/internal/models"
	"repair-auctions/internal/repository"
	"repair-auctions/internal/repository/db"
	"repair-auctions/internal/server"
	"repair-auctions/utils"
)

func main() {

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	utils.SetLevel(cfg.LogLevel)

	store, err := newStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up storage: %v\n", err)
		os.Exit(1)
	}

	directory := repository.NewMemoryDirectory()
	prepopulateContacts(directory)

	lifecycleSvc := lifecycle.NewLifecycleService(store, cfg.AuctionWindow)
	bidSvc := bidding.NewBidService(store)
	aggregatorSvc := aggregator.NewAggregatorService(store, directory)

	router := server.SetupRouter(lifecycleSvc, bidSvc, aggregatorSvc)

	fmt.Printf("Starting repair-auction server on %s...\n", cfg.ServerAddress)
	if err := router.Run(cfg.ServerAddress); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// newStore picks the storage backend configured in the environment.
func newStore(cfg *config.Config) (repository.AuctionStore, error) {
	switch cfg.Storage {
	case "postgres":
		database, err := db.NewPostgresDB(cfg.Conn)
		if err != nil {
			return nil, err
		}
		if cfg.AutoMigrateUp {
			if err := db.MigrateUp(database, cfg.MigrationsURL); err != nil {
				return nil, err
			}
		}
		return repository.NewPostgresStore(database), nil
	case "memory":
		return repository.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}

// prepopulateContacts seeds sample poster contacts so dashboard projections
// have names to show out of the box
func prepopulateContacts(directory *repository.MemoryDirectory) {
	contacts := map[string]model.Contact{
		"driver1": {Name: "Dana Driver", Phone: "+1-555-0101"},
		"driver2": {Name: "Devon Wheeler", Phone: "+1-555-0102"},
	}

	for id, contact := range contacts {
		directory.PutContact(id, contact)
	}
}
