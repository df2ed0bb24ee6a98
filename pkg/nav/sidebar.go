// ABOUTME: Sidebar tree construction from the content hierarchy
// ABOUTME: Orders links by index at every level and applies visibility policy

package nav

import "github.com/nainya/docnav/pkg/content"

// LinkType tags a sidebar tree node.
type LinkType string

const (
	LinkSection  LinkType = "section"
	LinkCategory LinkType = "category"
	LinkGroup    LinkType = "group" // synthetic marker, never a link
	LinkArticle  LinkType = "article"
)

// Link is one node of the sidebar tree. URL is empty for show-title
// section headings and for group markers.
type Link struct {
	Title    string   `json:"title"`
	URL      string   `json:"url,omitempty"`
	Type     LinkType `json:"type"`
	Active   bool     `json:"active,omitempty"`
	Children []*Link  `json:"children,omitempty"`
}

// Context identifies the currently rendered page; all fields may be
// empty for a landing view.
type Context struct {
	SectionID  string
	CategoryID string
	ArticleID  string
}

// SidebarOptions is the visibility policy the builder exposes rather
// than hard-codes. Drafts are always excluded.
type SidebarOptions struct {
	// IncludeUnlisted lists unlisted articles alongside published
	// ones. When false an unlisted article still appears if it is
	// the active article of the context.
	IncludeUnlisted bool
}

// SidebarBuilder projects the hierarchy into an ordered link tree.
type SidebarBuilder struct {
	store content.Store
	opts  SidebarOptions
}

// NewSidebarBuilder creates a builder over one snapshot.
func NewSidebarBuilder(store content.Store, opts SidebarOptions) *SidebarBuilder {
	return &SidebarBuilder{store: store, opts: opts}
}

// Build returns one root link per section, in section index order.
// Categories nest under their section, articles under their category,
// and grouped articles one level deeper under a group marker placed at
// the position of its first visible article.
func (b *SidebarBuilder) Build(ctx Context) []*Link {
	sections := b.store.Sections()
	roots := make([]*Link, 0, len(sections))
	for _, sec := range sections {
		link := &Link{
			Title:  sec.Title,
			Type:   LinkSection,
			Active: sec.ID == ctx.SectionID,
		}
		if sec.Display == content.DisplayShowLinks {
			link.URL = sec.Path
		}
		for _, cat := range b.store.CategoriesIn(sec.ID) {
			link.Children = append(link.Children, b.buildCategory(cat, ctx))
		}
		roots = append(roots, link)
	}
	return roots
}

func (b *SidebarBuilder) buildCategory(cat *content.Category, ctx Context) *Link {
	link := &Link{
		Title:  cat.Title,
		URL:    cat.Path,
		Type:   LinkCategory,
		Active: cat.ID == ctx.CategoryID,
	}

	// Walk the category's articles in CategoryIndex order. A grouped
	// article pulls in its whole group at the first occurrence so the
	// marker sits where its articles do.
	emitted := make(map[string]bool)
	for _, a := range b.store.ArticlesInCategory(cat.ID) {
		if !b.visible(a, ctx) {
			continue
		}
		if a.GroupID == nil {
			link.Children = append(link.Children, b.articleLink(a, ctx))
			continue
		}
		if emitted[*a.GroupID] {
			continue
		}
		emitted[*a.GroupID] = true
		g, ok := b.store.GroupByID(*a.GroupID)
		if !ok {
			continue
		}
		marker := &Link{Title: g.Title, Type: LinkGroup}
		for _, ga := range b.store.ArticlesInGroup(g.ID) {
			if b.visible(ga, ctx) {
				marker.Children = append(marker.Children, b.articleLink(ga, ctx))
			}
		}
		link.Children = append(link.Children, marker)
	}
	return link
}

func (b *SidebarBuilder) articleLink(a *content.Article, ctx Context) *Link {
	return &Link{
		Title:  a.Title,
		URL:    a.Path,
		Type:   LinkArticle,
		Active: a.ID == ctx.ArticleID,
	}
}

func (b *SidebarBuilder) visible(a *content.Article, ctx Context) bool {
	switch a.Status {
	case content.StatusDraft:
		return false
	case content.StatusUnlisted:
		return b.opts.IncludeUnlisted || a.ID == ctx.ArticleID
	}
	return true
}
