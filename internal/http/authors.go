package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/session"
)

// AuthorAdder is the mutation surface the author form needs.
type AuthorAdder interface {
	AddAuthor(in catalog.AddAuthorInput) (*entities.Author, error)
}

type AuthorsController struct {
	mutations AuthorAdder
	flashes   *session.Manager
}

func NewAuthorsController(mutations AuthorAdder, flashes *session.Manager) *AuthorsController {
	return &AuthorsController{mutations: mutations, flashes: flashes}
}

// AddAuthorPage renders the blank author form.
// GET /add_author
func (ac *AuthorsController) AddAuthorPage(c *gin.Context) {
	renderHTML(c, "add_author", gin.H{"Messages": pageMessages(c, ac.flashes)})
}

// AddAuthor handles the author form submission and redirects back to the
// form with a status message.
// POST /add_author
func (ac *AuthorsController) AddAuthor(c *gin.Context) {
	author, err := ac.mutations.AddAuthor(catalog.AddAuthorInput{
		Name:        c.PostForm("name"),
		BirthDate:   c.PostForm("birthdate"),
		DateOfDeath: c.PostForm("date_of_death"),
	})

	if ac.flashes != nil {
		if err != nil {
			ac.flashes.Error(c.Request, statusText(err))
		} else {
			ac.flashes.Success(c.Request, fmt.Sprintf("Author %q added successfully.", author.Name))
		}
	}

	c.Redirect(http.StatusSeeOther, "/add_author")
}
