package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/vncsmyrnk/projectvote/internal/app"
	"github.com/vncsmyrnk/projectvote/internal/config"
)

const usage = "usage: migrations [flags] up|down|status|reset"

func main() {
	cfg, err := config.Load("migrations", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if len(cfg.Args) != 1 {
		log.Fatal(usage)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store, err := app.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	switch cfg.Args[0] {
	case "up":
		applied, err := store.Migrate(ctx)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Applied %d migration(s): %v\n", len(applied), applied)
	case "down":
		version, err := store.MigrateDown(ctx)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Rolled back migration %d.\n", version)
	case "reset":
		if err := store.MigrateReset(ctx); err != nil {
			log.Fatal(err)
		}
		fmt.Println("All migrations rolled back.")
	case "status":
		statuses, err := store.MigrationStatus(ctx)
		if err != nil {
			log.Fatal(err)
		}
		for _, st := range statuses {
			state := "pending"
			if st.Applied {
				state = "applied"
			}
			fmt.Printf("%05d  %-8s %s\n", st.Version, state, st.Name)
		}
	default:
		log.Fatal(usage)
	}
}
