package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/library/internal/database/authors"
	"github.com/mrlokans/library/internal/database/books"
	"github.com/mrlokans/library/internal/entities"
)

// DateLayout is the only accepted format for author date fields.
const DateLayout = "2006-01-02"

// MutationService creates authors and books and deletes books, cascading the
// delete to an author left without books. It holds the *gorm.DB directly so
// that the delete path can run both repositories inside one transaction.
type MutationService struct {
	db      *gorm.DB
	authors *authors.Repository
	books   *books.Repository
}

func NewMutationService(db *gorm.DB) *MutationService {
	return &MutationService{
		db:      db,
		authors: authors.NewRepository(db),
		books:   books.NewRepository(db),
	}
}

// AddAuthorInput carries the raw form values of the add-author operation.
// Dates stay as submitted text; parsing happens here.
type AddAuthorInput struct {
	Name        string
	BirthDate   string
	DateOfDeath string
}

// AddAuthor validates and persists a new author. Date fields must be empty or
// YYYY-MM-DD; the name must be non-empty and is stored as submitted, without
// trimming.
func (s *MutationService) AddAuthor(in AddAuthorInput) (*entities.Author, error) {
	birthDate, err := parseOptionalDate("birthdate", in.BirthDate)
	if err != nil {
		return nil, err
	}
	dateOfDeath, err := parseOptionalDate("date_of_death", in.DateOfDeath)
	if err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, &ValidationError{Field: "name"}
	}

	author := &entities.Author{
		Name:        in.Name,
		BirthDate:   birthDate,
		DateOfDeath: dateOfDeath,
	}
	if err := s.authors.Create(author); err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}
	return author, nil
}

// AddBookInput carries the raw form values of the add-book operation.
type AddBookInput struct {
	Title           string
	AuthorID        string
	PublicationYear string
	ISBN            string
}

// AddBook validates and persists a new book. Title, author id and ISBN are
// required; the author must exist; the ISBN must be unique. The publication
// year is stored as supplied and not otherwise validated.
func (s *MutationService) AddBook(in AddBookInput) (*entities.Book, error) {
	if in.Title == "" {
		return nil, &ValidationError{Field: "title"}
	}
	if in.AuthorID == "" {
		return nil, &ValidationError{Field: "author_id"}
	}
	if in.ISBN == "" {
		return nil, &ValidationError{Field: "isbn"}
	}

	authorID, err := strconv.ParseUint(in.AuthorID, 10, 32)
	if err != nil {
		return nil, &ValidationError{Field: "author_id"}
	}
	author, err := s.authors.GetByID(uint(authorID))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &ValidationError{Field: "author_id"}
	}
	if err != nil {
		return nil, fmt.Errorf("load author: %w", err)
	}

	if _, err := s.books.FindByISBN(in.ISBN); err == nil {
		return nil, &UniquenessError{Field: "isbn", Value: in.ISBN}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check isbn: %w", err)
	}

	year, _ := strconv.Atoi(in.PublicationYear)

	book := &entities.Book{
		Title:           in.Title,
		ISBN:            in.ISBN,
		PublicationYear: year,
		AuthorID:        author.ID,
	}
	if err := s.books.Create(book); err != nil {
		// The pre-check above races with concurrent inserts, so the
		// store's unique index is still the source of truth.
		if isUniqueConstraintError(err) {
			return nil, &UniquenessError{Field: "isbn", Value: in.ISBN}
		}
		return nil, fmt.Errorf("create book: %w", err)
	}
	book.Author = *author
	return book, nil
}

// DeleteResult describes what a DeleteBook call removed.
type DeleteResult struct {
	BookTitle     string
	AuthorName    string
	AuthorDeleted bool
}

// DeleteBook removes the book and, when it was the author's last one, the
// author as well. Both deletions run in a single transaction: either the pair
// is removed together or, on book-not-found, nothing changes.
//
// Two concurrent deletes of an author's last two books can each observe one
// remaining book and leave the author behind. The app is single-user, so this
// hazard is documented rather than locked against.
func (s *MutationService) DeleteBook(id uint) (DeleteResult, error) {
	var result DeleteResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		bookRepo := books.NewRepository(tx)

		book, err := bookRepo.GetByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		if err != nil {
			return fmt.Errorf("load book: %w", err)
		}
		result.BookTitle = book.Title
		result.AuthorName = book.Author.Name

		if err := bookRepo.Delete(book.ID); err != nil {
			return fmt.Errorf("delete book: %w", err)
		}

		remaining, err := bookRepo.CountByAuthor(book.AuthorID)
		if err != nil {
			return fmt.Errorf("count author books: %w", err)
		}
		if remaining == 0 {
			if err := authors.NewRepository(tx).Delete(book.AuthorID); err != nil {
				return fmt.Errorf("delete orphaned author: %w", err)
			}
			result.AuthorDeleted = true
		}
		return nil
	})
	if err != nil {
		return DeleteResult{}, err
	}
	return result, nil
}

func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, &FormatError{Field: field, Value: value}
	}
	return &parsed, nil
}

func isUniqueConstraintError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
