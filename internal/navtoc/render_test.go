package navtoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tocerrors "github.com/pwwang/gentoc/internal/errors"
)

func TestPageURL(t *testing.T) {
	tests := []struct {
		name     string
		pagePath string
		want     string
		wantErr  bool
	}{
		{"nested page", "foo/bar.md", "https://pwwang.github.io/datar-blog/foo/bar.html", false},
		{"top-level page", "index.md", "https://pwwang.github.io/datar-blog/index.html", false},
		{"any three-character suffix", "page.js", "https://pwwang.github.io/datar-blog/page.html", false},
		{"longer extension keeps its dot", "notes.txt", "https://pwwang.github.io/datar-blog/notes..html", false},
		{"multibyte name", "文章.md", "https://pwwang.github.io/datar-blog/文章.html", false},
		{"single character stem", "a.md", "https://pwwang.github.io/datar-blog/a.html", false},
		{"extension only", ".md", "https://pwwang.github.io/datar-blog/.html", false},
		{"shorter than extension", "md", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PageURL(DefaultSiteURL, tt.pagePath)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender(t *testing.T) {
	t.Run("header only", func(t *testing.T) {
		assert.Equal(t, "## Table of Contents\n\n\n", Render([]string{DefaultHeader, ""}))
	})

	t.Run("with bullets", func(t *testing.T) {
		lines := []string{DefaultHeader, "", FormatEntry("A", "https://x/a.html"), FormatEntry("B", "https://x/b.html")}
		want := "## Table of Contents\n\n- [A](https://x/a.html)\n- [B](https://x/b.html)\n\n"
		assert.Equal(t, want, Render(lines))
	})
}

func TestRenderHTML(t *testing.T) {
	md := Render([]string{DefaultHeader, "", FormatEntry("Guide", "https://x/guide.html")})

	html, err := RenderHTML(md)
	require.NoError(t, err)
	assert.Contains(t, html, "<h2>Table of Contents</h2>")
	assert.Contains(t, html, `<li><a href="https://x/guide.html">Guide</a></li>`)
}

func TestLinks(t *testing.T) {
	md := Render([]string{
		DefaultHeader, "",
		FormatEntry("Plain", "https://x/plain.html"),
		FormatEntry("With *emphasis*", "https://x/em.html"),
		FormatEntry("Spaced", "https://x/has space.html"),
	})

	links := Links(md)
	assert.Equal(t, []Link{
		{Text: "Plain", Destination: "https://x/plain.html"},
		{Text: "With emphasis", Destination: "https://x/em.html"},
	}, links)
}

func TestTOC_Check(t *testing.T) {
	t.Run("well formed entries pass", func(t *testing.T) {
		toc, err := Parse(strings.NewReader("nav:\n  - A: a.md\n  - B: sub/b.md\n"), DefaultOptions())
		require.NoError(t, err)
		assert.NoError(t, toc.Check())
	})

	t.Run("first-colon split produces a broken link", func(t *testing.T) {
		input := "nav:\n  - Fine: fine.md\n  - 'Guide: Intro': guide/intro.md\n"
		toc, err := Parse(strings.NewReader(input), DefaultOptions())
		require.NoError(t, err)

		err = toc.Check()
		require.Error(t, err)
		assert.True(t, tocerrors.IsMalformedEntry(err))

		var te *tocerrors.TocError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, 3, te.Context["line"])
		assert.Equal(t, "Guide", te.Context["title"])
	})

	t.Run("empty toc passes", func(t *testing.T) {
		toc, err := Parse(strings.NewReader("site_name: x\n"), DefaultOptions())
		require.NoError(t, err)
		assert.NoError(t, toc.Check())
	})
}
