// Package catalog implements the library catalog's read and write operations
// on top of the author and book repositories.
package catalog

import (
	"fmt"

	"github.com/mrlokans/library/internal/entities"
)

// BookLister is the read surface the query service needs.
type BookLister interface {
	List(searchQuery, sortBy string) ([]entities.Book, error)
}

// Listing is the result of a catalog query. NoResults is true exactly when a
// non-empty search matched nothing; an empty catalog browsed without a search
// term keeps it false.
type Listing struct {
	Books     []entities.Book
	NoResults bool
}

// QueryService produces the ordered book list for display. It has no side
// effects.
type QueryService struct {
	books BookLister
}

func NewQueryService(books BookLister) *QueryService {
	return &QueryService{books: books}
}

// ListBooks returns the books matching searchQuery (case-insensitive title
// substring; empty means no filtering) ordered by sortBy ("title" or
// "author"; anything else sorts by title).
func (s *QueryService) ListBooks(searchQuery, sortBy string) (Listing, error) {
	books, err := s.books.List(searchQuery, sortBy)
	if err != nil {
		return Listing{}, fmt.Errorf("list books: %w", err)
	}

	return Listing{
		Books:     books,
		NoResults: searchQuery != "" && len(books) == 0,
	}, nil
}
