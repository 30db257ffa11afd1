package http

import (
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/session"
)

// parseIDParam extracts and validates an unsigned integer ID from URL
// parameters. Returns the parsed ID or responds with a 400 error and returns
// 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid book ID")
		return 0, false
	}
	return uint(id), true
}

// respondInternalError logs the error and sends a plain 500 response. The
// actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.String(http.StatusInternalServerError, "Something went wrong")
}

// statusText converts a catalog operation error into the user-facing status
// message shown on the next page.
func statusText(err error) string {
	var validationErr *catalog.ValidationError
	var formatErr *catalog.FormatError
	var uniquenessErr *catalog.UniquenessError

	switch {
	case errors.As(err, &validationErr):
		return fmt.Sprintf("The %s field is required.", fieldLabel(validationErr.Field))
	case errors.As(err, &formatErr):
		return fmt.Sprintf("Invalid date %q for %s. Use the YYYY-MM-DD format.", formatErr.Value, fieldLabel(formatErr.Field))
	case errors.As(err, &uniquenessErr):
		return fmt.Sprintf("A book with ISBN %q already exists.", uniquenessErr.Value)
	default:
		return "Something went wrong. Please try again."
	}
}

// fieldLabel maps form field names to the wording used in status messages.
func fieldLabel(field string) string {
	switch field {
	case "birthdate":
		return "birth date"
	case "date_of_death":
		return "date of death"
	case "author_id":
		return "author"
	default:
		return field
	}
}

// pageMessages collects the status messages to show on a page: the pending
// flashes plus an `error` passed through the query string, which is how the
// CSRF failure redirect reports back.
func pageMessages(c *gin.Context, flashes *session.Manager) []session.Message {
	var messages []session.Message
	if flashes != nil {
		messages = flashes.PopMessages(c.Request)
	}
	if errText := c.Query("error"); errText != "" {
		messages = append(messages, session.Message{Severity: session.SeverityError, Text: errText})
	}
	return messages
}

// renderHTML renders a template, injecting the CSRF hidden field so every
// form template can embed it.
func renderHTML(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["CSRFField"] = template.HTML(CSRFTokenField(c))
	c.HTML(http.StatusOK, name, data)
}
