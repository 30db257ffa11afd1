package http

import (
	"html/template"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/database/authors"
	"github.com/mrlokans/library/internal/session"
)

// RouterConfig carries all router dependencies, improving testability and
// reducing parameter count.
type RouterConfig struct {
	Database      *database.Database
	QueryService  *catalog.QueryService
	Mutations     *catalog.MutationService
	Authors       *authors.Repository
	Sessions      *session.Manager
	CSRFSecret    []byte
	SecureCookies bool
	TemplatesPath string
	StaticPath    string
	Version       string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(SecurityHeadersMiddleware())

	// CSRF must run before the session middleware so the session context is
	// layered on top of CSRF's request replacement.
	if len(cfg.CSRFSecret) > 0 {
		router.Use(CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}
	if cfg.Sessions != nil {
		router.Use(cfg.Sessions.LoadSave())
	}

	funcMap := template.FuncMap{
		"formatDate": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return t.Format(catalog.DateLayout)
		},
	}

	tmpl := template.Must(template.New("").Funcs(funcMap).ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	router.Static("/static", cfg.StaticPath)

	health := NewHealthController(cfg.Database, cfg.Version)
	catalogController := NewCatalogController(cfg.QueryService, cfg.Sessions)
	authorsController := NewAuthorsController(cfg.Mutations, cfg.Sessions)
	booksController := NewBooksController(cfg.Mutations, cfg.Authors, cfg.Sessions)
	deleteController := NewDeleteController(cfg.Mutations, cfg.Sessions)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Catalog UI routes
	router.GET("/", catalogController.Index)
	router.GET("/add_author", authorsController.AddAuthorPage)
	router.POST("/add_author", authorsController.AddAuthor)
	router.GET("/add_book", booksController.AddBookPage)
	router.POST("/add_book", booksController.AddBook)
	router.POST("/delete/:id", deleteController.DeleteBook)

	return router
}
