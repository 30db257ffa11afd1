package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/session"
)

// BookAdder is the mutation surface the book form needs.
type BookAdder interface {
	AddBook(in catalog.AddBookInput) (*entities.Book, error)
}

// AuthorLister provides the author list for the book form's picker.
type AuthorLister interface {
	GetAll() ([]entities.Author, error)
}

type BooksController struct {
	mutations BookAdder
	authors   AuthorLister
	flashes   *session.Manager
}

func NewBooksController(mutations BookAdder, authors AuthorLister, flashes *session.Manager) *BooksController {
	return &BooksController{mutations: mutations, authors: authors, flashes: flashes}
}

// AddBookPage renders the blank book form with the current author list.
// GET /add_book
func (bc *BooksController) AddBookPage(c *gin.Context) {
	authors, err := bc.authors.GetAll()
	if err != nil {
		respondInternalError(c, err, "list authors")
		return
	}

	renderHTML(c, "add_book", gin.H{
		"Authors":  authors,
		"Messages": pageMessages(c, bc.flashes),
	})
}

// AddBook handles the book form submission and redirects back to the form
// with a status message.
// POST /add_book
func (bc *BooksController) AddBook(c *gin.Context) {
	book, err := bc.mutations.AddBook(catalog.AddBookInput{
		Title:           c.PostForm("title"),
		AuthorID:        c.PostForm("author_id"),
		PublicationYear: c.PostForm("publication_year"),
		ISBN:            c.PostForm("isbn"),
	})

	if bc.flashes != nil {
		if err != nil {
			bc.flashes.Error(c.Request, statusText(err))
		} else {
			bc.flashes.Success(c.Request, fmt.Sprintf("Book %q added successfully.", book.Title))
		}
	}

	c.Redirect(http.StatusSeeOther, "/add_book")
}
