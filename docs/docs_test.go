package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Keeps the generated doc in step with the registered routes: every
// versioned endpoint the router mounts must have a path entry here.
func TestDocTemplateCoversAllRoutes(t *testing.T) {
	routes := []string{
		"/auth/me",
		"/auth/users/{id}/role",
		"/credentials",
		"/credentials/{id}/document",
		"/cv",
		"/cv/import",
		"/cv/revamp",
		"/cv/scrape",
		"/cv/tailor",
		"/interviews/answers",
		"/interviews/questions",
		"/interviews/{id}",
		"/profiles/me",
		"/profiles/me/cv-text",
		"/profiles/me/experiences",
		"/profiles/me/full",
		"/profiles/me/matric",
		"/talent/export",
		"/talent/filter-options",
		"/talent/search",
	}

	for _, route := range routes {
		assert.Contains(t, docTemplate, `"`+route+`"`, "missing doc entry for %s", route)
	}
}
