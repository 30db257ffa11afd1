package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/session"
)

// BookDeleter is the mutation surface of the delete endpoint.
type BookDeleter interface {
	DeleteBook(id uint) (catalog.DeleteResult, error)
}

type DeleteController struct {
	mutations BookDeleter
	flashes   *session.Manager
}

func NewDeleteController(mutations BookDeleter, flashes *session.Manager) *DeleteController {
	return &DeleteController{mutations: mutations, flashes: flashes}
}

// DeleteBook removes a book and, when it was the author's last one, the
// author as well, then redirects to the catalog.
// POST /delete/:id
func (dc *DeleteController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := dc.mutations.DeleteBook(id)
	if errors.Is(err, catalog.ErrBookNotFound) {
		c.String(http.StatusNotFound, "Book not found")
		return
	}
	if err != nil {
		respondInternalError(c, err, "delete book")
		return
	}

	if dc.flashes != nil {
		message := fmt.Sprintf("Book %q deleted successfully.", result.BookTitle)
		if result.AuthorDeleted {
			message += fmt.Sprintf(" Author %q had no remaining books and was removed.", result.AuthorName)
		}
		dc.flashes.Success(c.Request, message)
	}

	c.Redirect(http.StatusSeeOther, "/")
}
