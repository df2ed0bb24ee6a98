// ABOUTME: Content data model for the documentation hierarchy
// ABOUTME: Defines Section, Category, Group and Article entities

package content

import "time"

// Status controls an article's visibility.
type Status string

const (
	StatusDraft     Status = "draft"     // never served or linked
	StatusPublished Status = "published" // fully visible
	StatusUnlisted  Status = "unlisted"  // reachable by direct path, not linked
)

// DisplayMode controls how a section renders in the sidebar.
type DisplayMode string

const (
	DisplayShowLinks DisplayMode = "show-links" // section entry is itself a link
	DisplayShowTitle DisplayMode = "show-title" // section entry is a plain heading
)

// Section is the top level of the hierarchy.
type Section struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Path        string      `json:"path"`       // globally unique
	Index       int         `json:"index"`      // position among sections
	CategoryIDs []string    `json:"categories"` // owned categories in index order
	Display     DisplayMode `json:"display"`
}

// Category is owned by exactly one section.
type Category struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Path        string   `json:"path"`
	SectionID   string   `json:"sectionId"`
	Index       int      `json:"index"`  // position within its section
	GroupIDs    []string `json:"groups"` // owned groups in index order, may be empty
}

// Group is an organizational label for articles within a category.
// It has no page of its own and no addressable path.
type Group struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	SectionID  string `json:"sectionId"`
	CategoryID string `json:"categoryId"`
	Index      int    `json:"index"` // position within its category
}

// Article is a leaf content page.
type Article struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Body        string  `json:"body"`
	Path        string  `json:"path"`
	GroupID     *string `json:"groupId,omitempty"` // nil for articles directly under a category
	CategoryID  string  `json:"categoryId"`
	SectionID   string  `json:"sectionId"`

	// Position within each ancestor's article ordering. GroupIndex is
	// meaningful only when GroupID is set.
	SectionIndex  int `json:"sectionIndex"`
	CategoryIndex int `json:"categoryIndex"`
	GroupIndex    int `json:"groupIndex"`

	Status      Status     `json:"status"`
	Author      string     `json:"author,omitempty"`
	HeroImage   string     `json:"heroImage,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	Keywords    []string   `json:"keywords,omitempty"`
	SourceURL   string     `json:"sourceUrl,omitempty"` // external canonical source
}

// ArticleLink is the projection of an article used for prev/next
// navigation. It never carries the body.
type ArticleLink struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CategoryID  string `json:"categoryId"`
	SectionID   string `json:"sectionId"`
	Path        string `json:"path"`
}

// Link projects an article into an ArticleLink.
func (a *Article) Link() *ArticleLink {
	return &ArticleLink{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		CategoryID:  a.CategoryID,
		SectionID:   a.SectionID,
		Path:        a.Path,
	}
}
