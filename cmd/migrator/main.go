package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	var migrationPath, databaseURL string
	var down bool
	flag.StringVar(&databaseURL, "database_url", os.Getenv("DATABASE_URL"), "postgres connection URL")
	flag.StringVar(&migrationPath, "migration-path", "./migrations", "directory holding the migrations")
	flag.BoolVar(&down, "down", false, "roll every migration back")
	flag.Parse()

	if databaseURL == "" {
		panic("database URL is required")
	}

	m, err := migrate.New("file://"+migrationPath, databaseURL)
	if err != nil {
		panic(err)
	}

	if down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("no migrations to apply")
			return
		}
		panic(err)
	}

	fmt.Println("Migrations applied")
}
