// ABOUTME: Immutable snapshot store over the four content tables
// ABOUTME: Index-ordered accessors keyed by id and by unique path

package content

import "sort"

// Store is the read contract consumed by the navigation components.
// All accessors are pure reads; ordered accessors return entities in
// ascending index order. Returned slices must not be modified.
type Store interface {
	SectionByPath(path string) (*Section, bool)
	CategoryByPath(path string) (*Category, bool)
	ArticleByPath(path string) (*Article, bool)

	SectionByID(id string) (*Section, bool)
	CategoryByID(id string) (*Category, bool)
	GroupByID(id string) (*Group, bool)
	ArticleByID(id string) (*Article, bool)

	Sections() []*Section
	Categories() []*Category
	Articles() []*Article

	CategoriesIn(sectionID string) []*Category
	GroupsIn(categoryID string) []*Group
	ArticlesInSection(sectionID string) []*Article
	ArticlesInCategory(categoryID string) []*Article
	ArticlesInGroup(groupID string) []*Article
}

// Snapshot is a fully validated, immutable load of one content build.
// It is safe for concurrent use; nothing mutates it after construction.
type Snapshot struct {
	sections   []*Section  // ordered by Index
	categories []*Category // ordered by (section Index, Index)
	groups     []*Group
	articles   []*Article // ordered by (section Index, SectionIndex)

	sectionsByID   map[string]*Section
	categoriesByID map[string]*Category
	groupsByID     map[string]*Group
	articlesByID   map[string]*Article

	sectionsByPath   map[string]*Section
	categoriesByPath map[string]*Category
	articlesByPath   map[string]*Article

	categoriesBySection map[string][]*Category
	groupsByCategory    map[string][]*Group
	articlesBySection   map[string][]*Article
	articlesByCategory  map[string][]*Article
	articlesByGroup     map[string][]*Article
}

// NewSnapshot validates the entity set against all hierarchy invariants
// and builds the indexed snapshot. Any violation returns an
// IntegrityError and no snapshot is produced.
func NewSnapshot(sections []*Section, categories []*Category, groups []*Group, articles []*Article) (*Snapshot, error) {
	if err := validate(sections, categories, groups, articles); err != nil {
		return nil, err
	}

	s := &Snapshot{
		sections:   append([]*Section(nil), sections...),
		categories: append([]*Category(nil), categories...),
		groups:     append([]*Group(nil), groups...),
		articles:   append([]*Article(nil), articles...),

		sectionsByID:   make(map[string]*Section, len(sections)),
		categoriesByID: make(map[string]*Category, len(categories)),
		groupsByID:     make(map[string]*Group, len(groups)),
		articlesByID:   make(map[string]*Article, len(articles)),

		sectionsByPath:   make(map[string]*Section, len(sections)),
		categoriesByPath: make(map[string]*Category, len(categories)),
		articlesByPath:   make(map[string]*Article, len(articles)),

		categoriesBySection: make(map[string][]*Category),
		groupsByCategory:    make(map[string][]*Group),
		articlesBySection:   make(map[string][]*Article),
		articlesByCategory:  make(map[string][]*Article),
		articlesByGroup:     make(map[string][]*Article),
	}

	sort.Slice(s.sections, func(i, j int) bool { return s.sections[i].Index < s.sections[j].Index })
	for _, sec := range s.sections {
		s.sectionsByID[sec.ID] = sec
		s.sectionsByPath[sec.Path] = sec
	}

	for _, cat := range s.categories {
		s.categoriesByID[cat.ID] = cat
		s.categoriesByPath[cat.Path] = cat
		s.categoriesBySection[cat.SectionID] = append(s.categoriesBySection[cat.SectionID], cat)
	}
	for _, cats := range s.categoriesBySection {
		sort.Slice(cats, func(i, j int) bool { return cats[i].Index < cats[j].Index })
	}
	sort.Slice(s.categories, func(i, j int) bool {
		ci, cj := s.categories[i], s.categories[j]
		if ci.SectionID != cj.SectionID {
			return s.sectionsByID[ci.SectionID].Index < s.sectionsByID[cj.SectionID].Index
		}
		return ci.Index < cj.Index
	})

	for _, g := range s.groups {
		s.groupsByID[g.ID] = g
		s.groupsByCategory[g.CategoryID] = append(s.groupsByCategory[g.CategoryID], g)
	}
	for _, gs := range s.groupsByCategory {
		sort.Slice(gs, func(i, j int) bool { return gs[i].Index < gs[j].Index })
	}

	for _, a := range s.articles {
		s.articlesByID[a.ID] = a
		s.articlesByPath[a.Path] = a
		s.articlesBySection[a.SectionID] = append(s.articlesBySection[a.SectionID], a)
		s.articlesByCategory[a.CategoryID] = append(s.articlesByCategory[a.CategoryID], a)
		if a.GroupID != nil {
			s.articlesByGroup[*a.GroupID] = append(s.articlesByGroup[*a.GroupID], a)
		}
	}
	for _, as := range s.articlesBySection {
		sort.Slice(as, func(i, j int) bool { return as[i].SectionIndex < as[j].SectionIndex })
	}
	for _, as := range s.articlesByCategory {
		sort.Slice(as, func(i, j int) bool { return as[i].CategoryIndex < as[j].CategoryIndex })
	}
	for _, as := range s.articlesByGroup {
		sort.Slice(as, func(i, j int) bool { return as[i].GroupIndex < as[j].GroupIndex })
	}
	sort.Slice(s.articles, func(i, j int) bool {
		ai, aj := s.articles[i], s.articles[j]
		if ai.SectionID != aj.SectionID {
			return s.sectionsByID[ai.SectionID].Index < s.sectionsByID[aj.SectionID].Index
		}
		return ai.SectionIndex < aj.SectionIndex
	})

	return s, nil
}

func (s *Snapshot) SectionByPath(path string) (*Section, bool) {
	sec, ok := s.sectionsByPath[path]
	return sec, ok
}

func (s *Snapshot) CategoryByPath(path string) (*Category, bool) {
	cat, ok := s.categoriesByPath[path]
	return cat, ok
}

func (s *Snapshot) ArticleByPath(path string) (*Article, bool) {
	a, ok := s.articlesByPath[path]
	return a, ok
}

func (s *Snapshot) SectionByID(id string) (*Section, bool) {
	sec, ok := s.sectionsByID[id]
	return sec, ok
}

func (s *Snapshot) CategoryByID(id string) (*Category, bool) {
	cat, ok := s.categoriesByID[id]
	return cat, ok
}

func (s *Snapshot) GroupByID(id string) (*Group, bool) {
	g, ok := s.groupsByID[id]
	return g, ok
}

func (s *Snapshot) ArticleByID(id string) (*Article, bool) {
	a, ok := s.articlesByID[id]
	return a, ok
}

// Sections returns all sections in index order.
func (s *Snapshot) Sections() []*Section { return s.sections }

// Categories returns all categories, grouped by section in section
// order, index order within each section.
func (s *Snapshot) Categories() []*Category { return s.categories }

// Articles returns all articles in section order: ascending section
// index, then ascending SectionIndex. This is the order the prev/next
// chain is defined over.
func (s *Snapshot) Articles() []*Article { return s.articles }

func (s *Snapshot) CategoriesIn(sectionID string) []*Category {
	return s.categoriesBySection[sectionID]
}

func (s *Snapshot) GroupsIn(categoryID string) []*Group {
	return s.groupsByCategory[categoryID]
}

func (s *Snapshot) ArticlesInSection(sectionID string) []*Article {
	return s.articlesBySection[sectionID]
}

func (s *Snapshot) ArticlesInCategory(categoryID string) []*Article {
	return s.articlesByCategory[categoryID]
}

func (s *Snapshot) ArticlesInGroup(groupID string) []*Article {
	return s.articlesByGroup[groupID]
}

// Stats reports entity counts for logging and metrics.
func (s *Snapshot) Stats() (sections, categories, groups, articles int) {
	return len(s.sections), len(s.categories), len(s.groups), len(s.articles)
}
