package renderer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedRenderer(t *testing.T) {
	r := NewFeedRenderer(t.TempDir(), testPage())
	require.NoError(t, Run(context.Background(), testCatalog(t), r))

	f, err := os.Open(r.FilePath())
	require.NoError(t, err)
	defer f.Close()

	feed, err := gofeed.NewParser().Parse(f)
	require.NoError(t, err)

	assert.Equal(t, "rss", feed.FeedType)
	assert.Equal(t, "C++ STL vs Java Collections CheatSheet For DSA", feed.Title)
	assert.Equal(t, "https://example.com/cheatsheet/", feed.Link)

	topics := testCatalog(t).GetAll()
	require.Len(t, feed.Items, len(topics))
	for i, item := range feed.Items {
		assert.Equal(t, topics[i].Title, item.Title)
		assert.Equal(t, "https://example.com/cheatsheet/#"+Slug(topics[i].Title), item.Link)
		assert.Equal(t, item.Link, item.GUID)
		assert.Contains(t, item.Description, `<code class="language-cpp">`)
		assert.Contains(t, item.Description, `<code class="language-java">`)
		require.NotNil(t, item.PublishedParsed)
	}
	assert.Contains(t, feed.Items[1].Description, "vector&lt;bool&gt;")
}

func TestAtomRenderer(t *testing.T) {
	dir := t.TempDir()
	r := NewAtomRenderer(dir, testPage())
	require.NoError(t, Run(context.Background(), testCatalog(t), r))
	assert.Equal(t, filepath.Join(dir, "index.atom"), r.FilePath())

	f, err := os.Open(r.FilePath())
	require.NoError(t, err)
	defer f.Close()

	feed, err := gofeed.NewParser().Parse(f)
	require.NoError(t, err)

	assert.Equal(t, "atom", feed.FeedType)
	assert.Equal(t, "C++ STL vs Java Collections CheatSheet For DSA", feed.Title)
	require.NotNil(t, feed.Author)
	assert.Equal(t, "Vikrant", feed.Author.Name)

	topics := testCatalog(t).GetAll()
	require.Len(t, feed.Items, len(topics))
	for i, item := range feed.Items {
		assert.Equal(t, topics[i].Title, item.Title)
		assert.Equal(t, "https://example.com/cheatsheet/#"+Slug(topics[i].Title), item.Link)
		assert.Equal(t, item.Link, item.GUID)
		assert.Contains(t, item.Description, `<code class="language-cpp">`)
	}
}

func TestWriteFeed_SkipsRSSAuthor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFeed(&buf, testPage(), testCatalog(t).GetAll()[:1]))
	assert.NotContains(t, buf.String(), "managingEditor")
}
