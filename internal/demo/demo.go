// Package demo seeds a catalog database with public domain authors and
// books, for the `seed` command and cmd/generate_demo.
package demo

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/database"
)

// AuthorEntry holds an author and their books for seeding.
type AuthorEntry struct {
	Author catalog.AddAuthorInput
	Books  []catalog.AddBookInput
}

// Catalog returns the demo data set.
func Catalog() []AuthorEntry {
	return []AuthorEntry{
		{
			Author: catalog.AddAuthorInput{Name: "Jane Austen", BirthDate: "1775-12-16", DateOfDeath: "1817-07-18"},
			Books: []catalog.AddBookInput{
				{Title: "Pride and Prejudice", PublicationYear: "1813", ISBN: "9780141439518"},
				{Title: "Sense and Sensibility", PublicationYear: "1811", ISBN: "9780141439662"},
				{Title: "Emma", PublicationYear: "1815", ISBN: "9780141439587"},
			},
		},
		{
			Author: catalog.AddAuthorInput{Name: "Herman Melville", BirthDate: "1819-08-01", DateOfDeath: "1891-09-28"},
			Books: []catalog.AddBookInput{
				{Title: "Moby-Dick", PublicationYear: "1851", ISBN: "9780142437247"},
				{Title: "Bartleby, the Scrivener", PublicationYear: "1853", ISBN: "9781612191232"},
			},
		},
		{
			Author: catalog.AddAuthorInput{Name: "Mary Shelley", BirthDate: "1797-08-30", DateOfDeath: "1851-02-01"},
			Books: []catalog.AddBookInput{
				{Title: "Frankenstein", PublicationYear: "1818", ISBN: "9780141439471"},
			},
		},
		{
			Author: catalog.AddAuthorInput{Name: "Fyodor Dostoevsky", BirthDate: "1821-11-11", DateOfDeath: "1881-02-09"},
			Books: []catalog.AddBookInput{
				{Title: "Crime and Punishment", PublicationYear: "1866", ISBN: "9780140449136"},
				{Title: "The Brothers Karamazov", PublicationYear: "1880", ISBN: "9780374528379"},
			},
		},
		{
			Author: catalog.AddAuthorInput{Name: "Marcus Aurelius", BirthDate: "0121-04-26", DateOfDeath: "0180-03-17"},
			Books: []catalog.AddBookInput{
				{Title: "Meditations", ISBN: "9780140449334"},
			},
		},
	}
}

// Generate replaces the database at dbPath with a freshly seeded demo
// catalog.
func Generate(dbPath string) error {
	log.Printf("Generating demo catalog at %s...", dbPath)

	// Delete existing database to start fresh
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove existing database: %w", err)
	}

	db, err := database.NewDatabase(dbPath)
	if err != nil {
		return fmt.Errorf("create database: %w", err)
	}
	defer db.Close()

	mutations := catalog.NewMutationService(db.DB)

	for _, entry := range Catalog() {
		author, err := mutations.AddAuthor(entry.Author)
		if err != nil {
			return fmt.Errorf("add author %s: %w", entry.Author.Name, err)
		}
		for _, book := range entry.Books {
			book.AuthorID = strconv.FormatUint(uint64(author.ID), 10)
			if _, err := mutations.AddBook(book); err != nil {
				return fmt.Errorf("add book %s: %w", book.Title, err)
			}
			log.Printf("Added: %s by %s", book.Title, author.Name)
		}
	}

	log.Println("Demo catalog generated successfully!")
	return nil
}
