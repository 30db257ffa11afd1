package http

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/database/books"
	"github.com/mrlokans/library/internal/entities"
)

func setupWebTestDB(t *testing.T, prefix string) (*database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_" + prefix + "_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

// Minimal templates exposing just enough of the page data to assert on.
func createTestTemplates() *template.Template {
	return template.Must(template.New("").Parse(`
{{define "index"}}{{range .Books}}[{{.Title}} by {{.Author.Name}}]{{end}}{{if .NoResults}}NO_RESULTS{{end}}{{end}}
{{define "add_author"}}ADD_AUTHOR_FORM{{range .Messages}}<{{.Severity}}: {{.Text}}>{{end}}{{end}}
{{define "add_book"}}{{range .Authors}}({{.Name}}){{end}}{{end}}
`))
}

func seedAuthor(t *testing.T, db *database.Database, name string) *entities.Author {
	t.Helper()
	author := &entities.Author{Name: name}
	require.NoError(t, db.DB.Create(author).Error)
	return author
}

func seedBook(t *testing.T, db *database.Database, author *entities.Author, title, isbn string) {
	t.Helper()
	require.NoError(t, db.DB.Create(&entities.Book{
		Title:    title,
		ISBN:     isbn,
		AuthorID: author.ID,
	}).Error)
}

func setupCatalogRouter(db *database.Database) *gin.Engine {
	querier := catalog.NewQueryService(books.NewRepository(db.DB))
	controller := NewCatalogController(querier, nil)

	router := gin.New()
	router.SetHTMLTemplate(createTestTemplates())
	router.GET("/", controller.Index)
	return router
}

func TestCatalogController_Index(t *testing.T) {
	t.Run("lists all books sorted by title", func(t *testing.T) {
		db, cleanup := setupWebTestDB(t, "catalog")
		defer cleanup()

		austen := seedAuthor(t, db, "Jane Austen")
		melville := seedAuthor(t, db, "Herman Melville")
		seedBook(t, db, melville, "Moby Dick", "9781503280786")
		seedBook(t, db, austen, "Emma", "9780141439587")

		router := setupCatalogRouter(db)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "[Emma by Jane Austen][Moby Dick by Herman Melville]")
		assert.NotContains(t, body, "NO_RESULTS")
	})

	t.Run("filters by case-insensitive title substring", func(t *testing.T) {
		db, cleanup := setupWebTestDB(t, "catalog")
		defer cleanup()

		austen := seedAuthor(t, db, "Jane Austen")
		seedBook(t, db, austen, "Pride and Prejudice", "9780141439518")
		seedBook(t, db, austen, "Emma", "9780141439587")

		router := setupCatalogRouter(db)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/?search=PRIDE", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Pride and Prejudice")
		assert.NotContains(t, body, "Emma")
	})

	t.Run("shows the empty marker when a search matches nothing", func(t *testing.T) {
		db, cleanup := setupWebTestDB(t, "catalog")
		defer cleanup()

		austen := seedAuthor(t, db, "Jane Austen")
		seedBook(t, db, austen, "Emma", "9780141439587")

		router := setupCatalogRouter(db)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/?search=zzzz", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "NO_RESULTS")
	})

	t.Run("empty catalog without a search shows no empty marker", func(t *testing.T) {
		db, cleanup := setupWebTestDB(t, "catalog")
		defer cleanup()

		router := setupCatalogRouter(db)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "NO_RESULTS")
	})

	t.Run("sorts by author name when requested", func(t *testing.T) {
		db, cleanup := setupWebTestDB(t, "catalog")
		defer cleanup()

		melville := seedAuthor(t, db, "Herman Melville")
		austen := seedAuthor(t, db, "Jane Austen")
		seedBook(t, db, austen, "Emma", "9780141439587")
		seedBook(t, db, melville, "Moby Dick", "9781503280786")

		router := setupCatalogRouter(db)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/?sort_by=author", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "[Moby Dick by Herman Melville][Emma by Jane Austen]")
	})
}
