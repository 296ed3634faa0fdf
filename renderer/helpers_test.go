package renderer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sat8bit/cheatsheet/catalog"
	"github.com/sat8bit/cheatsheet/topic"
)

func testPage() Page {
	return Page{
		Title:     "C++/Java Collections Comparison Guide",
		HTMLTitle: "C++ STL vs Java Collections CheatSheet For DSA",
		Author:    "Vikrant",
		AuthorURL: "https://www.linkedin.com/in/programming-vikrant/",
		BaseURL:   "https://example.com/cheatsheet",
		Date:      time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.NewEmbedded()
	require.NoError(t, err)
	return c
}

func titles(topics []*topic.Topic) []string {
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		out = append(out, t.Title)
	}
	return out
}
