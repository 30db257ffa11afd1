package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/database/books"
	"github.com/mrlokans/library/internal/session"
)

// CatalogQuerier is the read surface of the catalog shown on the home page.
type CatalogQuerier interface {
	ListBooks(searchQuery, sortBy string) (catalog.Listing, error)
}

type CatalogController struct {
	querier CatalogQuerier
	flashes *session.Manager
}

func NewCatalogController(querier CatalogQuerier, flashes *session.Manager) *CatalogController {
	return &CatalogController{querier: querier, flashes: flashes}
}

// Index renders the catalog listing with optional search and sort.
// GET /?sort_by=title|author&search=text
func (cc *CatalogController) Index(c *gin.Context) {
	searchQuery := c.Query("search")
	sortBy := c.DefaultQuery("sort_by", books.SortByTitle)

	listing, err := cc.querier.ListBooks(searchQuery, sortBy)
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}

	renderHTML(c, "index", gin.H{
		"Books":       listing.Books,
		"SearchQuery": searchQuery,
		"SortBy":      sortBy,
		"NoResults":   listing.NoResults,
		"Messages":    pageMessages(c, cc.flashes),
	})
}
