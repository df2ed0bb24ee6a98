// ABOUTME: Sequential prev/next navigation across published articles
// ABOUTME: Flattens section order (section index, then sectionIndex) and skips drafts

package nav

import "github.com/nainya/docnav/pkg/content"

// Adjacent holds an article's neighbors in the flattened reading
// order. Prev is nil for the first article, Next for the last.
type Adjacent struct {
	Prev *content.ArticleLink `json:"prev"`
	Next *content.ArticleLink `json:"next"`
}

// LinkerOptions is the visibility policy for the prev/next chain.
// Drafts never participate.
type LinkerOptions struct {
	// IncludeUnlisted lets unlisted articles appear as neighbors of
	// other articles. Regardless of this setting, an unlisted article
	// that is itself queried takes part in the chain, so direct
	// visitors still get neighbors.
	IncludeUnlisted bool
}

// ArticleLinker computes prev/next links over one snapshot.
//
// The chain spans a whole section, not just a category: the order is
// the article's sectionIndex ascending across all of the section's
// categories. It stops at section boundaries, so the first article of
// a section has no prev and the last no next. This intentionally
// differs from the sidebar's category-nested view over the same data.
type ArticleLinker struct {
	store content.Store
	opts  LinkerOptions
}

// NewArticleLinker creates a linker over one snapshot.
func NewArticleLinker(store content.Store, opts LinkerOptions) *ArticleLinker {
	return &ArticleLinker{store: store, opts: opts}
}

// Adjacent returns the given article's immediate predecessor and
// successor among participating articles. The result carries only
// ArticleLink projections, never full bodies.
func (l *ArticleLinker) Adjacent(article *content.Article) Adjacent {
	var adj Adjacent
	seen := false
	for _, a := range l.store.ArticlesInSection(article.SectionID) {
		if a.ID == article.ID {
			seen = true
			continue
		}
		if !l.participates(a) {
			continue
		}
		if !seen {
			adj.Prev = a.Link()
		} else {
			adj.Next = a.Link()
			break
		}
	}
	return adj
}

func (l *ArticleLinker) participates(a *content.Article) bool {
	switch a.Status {
	case content.StatusDraft:
		return false
	case content.StatusUnlisted:
		return l.opts.IncludeUnlisted
	}
	return true
}
