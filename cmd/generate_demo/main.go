// Command generate_demo creates a demo catalog database with public domain
// authors and books.
// Usage: go run cmd/generate_demo/main.go [-db path/to/library.sqlite]
package main

import (
	"flag"
	"log"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/demo"
)

func main() {
	dbPath := flag.String("db", config.DefaultDatabasePath, "path to the catalog database file")
	flag.Parse()

	if err := demo.Generate(*dbPath); err != nil {
		log.Fatalf("Failed to generate demo catalog: %v", err)
	}
}
