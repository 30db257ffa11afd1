// Package books provides database operations for book records, including the
// filtered and sorted catalog listing.
package books

import (
	"gorm.io/gorm"

	"github.com/mrlokans/library/internal/entities"
)

// Recognized sort keys for List. Any other value falls back to title order.
const (
	SortByTitle  = "title"
	SortByAuthor = "author"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new book.
func (r *Repository) Create(book *entities.Book) error {
	return r.db.Omit("Author").Create(book).Error
}

// GetByID retrieves a book with its author.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Author").First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// List returns the catalog, optionally filtered by a case-insensitive title
// substring and ordered by the given sort key. Title order is
// case-insensitive; author order uses the store's default collation on the
// author name.
func (r *Repository) List(searchQuery, sortBy string) ([]entities.Book, error) {
	query := r.db.Model(&entities.Book{}).Preload("Author")

	if searchQuery != "" {
		query = query.Where("LOWER(books.title) LIKE LOWER(?)", "%"+searchQuery+"%")
	}

	if sortBy == SortByAuthor {
		query = query.
			Joins("JOIN authors ON authors.id = books.author_id").
			Order("authors.name ASC")
	} else {
		query = query.Order("LOWER(books.title) ASC")
	}

	var books []entities.Book
	err := query.Find(&books).Error
	return books, err
}

// FindByISBN retrieves a book by its ISBN.
func (r *Repository) FindByISBN(isbn string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Where("isbn = ?", isbn).First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// CountByAuthor returns how many books reference the given author.
func (r *Repository) CountByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// Delete removes a book.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.Book{}, id).Error
}
