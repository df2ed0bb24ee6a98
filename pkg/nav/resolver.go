// ABOUTME: Path resolution over the content snapshot
// ABOUTME: Maps normalized URL paths to exactly one section, category or article

package nav

import (
	"fmt"

	"github.com/nainya/docnav/pkg/content"
)

// Kind tags the entity kind a path resolved to. The set is closed:
// groups have no page and never resolve.
type Kind string

const (
	KindSection  Kind = "section"
	KindCategory Kind = "category"
	KindArticle  Kind = "article"
)

// Resolution is the result of resolving one path. Exactly one of the
// entity fields is set, matching Kind.
type Resolution struct {
	Kind     Kind
	Section  *content.Section
	Category *content.Category
	Article  *content.Article
}

// Title returns the resolved entity's title.
func (r *Resolution) Title() string {
	switch r.Kind {
	case KindSection:
		return r.Section.Title
	case KindCategory:
		return r.Category.Title
	case KindArticle:
		return r.Article.Title
	}
	return ""
}

// Path returns the resolved entity's path.
func (r *Resolution) Path() string {
	switch r.Kind {
	case KindSection:
		return r.Section.Path
	case KindCategory:
		return r.Category.Path
	case KindArticle:
		return r.Article.Path
	}
	return ""
}

// Resolver maps paths to content entities.
type Resolver struct {
	store content.Store
}

// NewResolver creates a resolver over one snapshot.
func NewResolver(store content.Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve looks the path up against sections, then categories, then
// articles, by exact equality. The input must already be normalized:
// leading slash, no trailing slash, no empty segments. Returns
// content.ErrNotFound when no table matches; groups are excluded from
// resolution since they have no rendered page.
func (r *Resolver) Resolve(path string) (*Resolution, error) {
	if sec, ok := r.store.SectionByPath(path); ok {
		return &Resolution{Kind: KindSection, Section: sec}, nil
	}
	if cat, ok := r.store.CategoryByPath(path); ok {
		return &Resolution{Kind: KindCategory, Category: cat}, nil
	}
	if a, ok := r.store.ArticleByPath(path); ok {
		return &Resolution{Kind: KindArticle, Article: a}, nil
	}
	return nil, fmt.Errorf("resolve %q: %w", path, content.ErrNotFound)
}
