// ABOUTME: Snapshot invariant validation for the content hierarchy
// ABOUTME: Enforces path uniqueness, index contiguity and referential integrity

package content

import (
	"fmt"
	"strings"
)

// validate enforces the hierarchy invariants on a candidate entity set.
// The first violation found is returned; a snapshot is either fully
// valid or never published.
func validate(sections []*Section, categories []*Category, groups []*Group, articles []*Article) error {
	sectionsByID := make(map[string]*Section, len(sections))
	categoriesByID := make(map[string]*Category, len(categories))
	groupsByID := make(map[string]*Group, len(groups))

	// Global path uniqueness spans all addressable tables combined.
	paths := make(map[string]string)
	claimPath := func(kind, id, path string) *IntegrityError {
		if err := checkPathShape(kind, id, path); err != nil {
			return err
		}
		if prev, dup := paths[path]; dup {
			return integrityErr(kind, id, "path %q already used by %s", path, prev)
		}
		paths[path] = fmt.Sprintf("%s %q", kind, id)
		return nil
	}

	for _, sec := range sections {
		if sec.ID == "" {
			return integrityErr("section", "", "empty id")
		}
		if _, dup := sectionsByID[sec.ID]; dup {
			return integrityErr("section", sec.ID, "duplicate id")
		}
		sectionsByID[sec.ID] = sec
		if err := claimPath("section", sec.ID, sec.Path); err != nil {
			return err
		}
		switch sec.Display {
		case DisplayShowLinks, DisplayShowTitle:
		default:
			return integrityErr("section", sec.ID, "invalid display mode %q", sec.Display)
		}
	}
	if err := checkContiguous("section", "sections", sectionIndexes(sections)); err != nil {
		return err
	}

	for _, cat := range categories {
		if cat.ID == "" {
			return integrityErr("category", "", "empty id")
		}
		if _, dup := categoriesByID[cat.ID]; dup {
			return integrityErr("category", cat.ID, "duplicate id")
		}
		categoriesByID[cat.ID] = cat
		if err := claimPath("category", cat.ID, cat.Path); err != nil {
			return err
		}
		if _, ok := sectionsByID[cat.SectionID]; !ok {
			return integrityErr("category", cat.ID, "references missing section %q", cat.SectionID)
		}
	}
	byScope := make(map[string]map[int][]string)
	for _, cat := range categories {
		addIndex(byScope, cat.SectionID, cat.Index, cat.ID)
	}
	for sectionID, idx := range byScope {
		if err := checkContiguous("category", "section "+sectionID, idx); err != nil {
			return err
		}
	}
	for _, sec := range sections {
		if err := checkOwnedOrder("section", sec.ID, sec.CategoryIDs, len(byScope[sec.ID]), func(id string, want int) *IntegrityError {
			cat, ok := categoriesByID[id]
			if !ok {
				return integrityErr("section", sec.ID, "lists missing category %q", id)
			}
			if cat.SectionID != sec.ID {
				return integrityErr("section", sec.ID, "lists category %q owned by section %q", id, cat.SectionID)
			}
			if cat.Index != want {
				return integrityErr("section", sec.ID, "category list order disagrees with category %q index %d", id, cat.Index)
			}
			return nil
		}); err != nil {
			return err
		}
	}

	for _, g := range groups {
		if g.ID == "" {
			return integrityErr("group", "", "empty id")
		}
		if _, dup := groupsByID[g.ID]; dup {
			return integrityErr("group", g.ID, "duplicate id")
		}
		groupsByID[g.ID] = g
		if _, ok := sectionsByID[g.SectionID]; !ok {
			return integrityErr("group", g.ID, "references missing section %q", g.SectionID)
		}
		cat, ok := categoriesByID[g.CategoryID]
		if !ok {
			return integrityErr("group", g.ID, "references missing category %q", g.CategoryID)
		}
		if cat.SectionID != g.SectionID {
			return integrityErr("group", g.ID, "category %q belongs to section %q, not %q", g.CategoryID, cat.SectionID, g.SectionID)
		}
	}
	byScope = make(map[string]map[int][]string)
	for _, g := range groups {
		addIndex(byScope, g.CategoryID, g.Index, g.ID)
	}
	for categoryID, idx := range byScope {
		if err := checkContiguous("group", "category "+categoryID, idx); err != nil {
			return err
		}
	}
	for _, cat := range categories {
		if err := checkOwnedOrder("category", cat.ID, cat.GroupIDs, len(byScope[cat.ID]), func(id string, want int) *IntegrityError {
			g, ok := groupsByID[id]
			if !ok {
				return integrityErr("category", cat.ID, "lists missing group %q", id)
			}
			if g.CategoryID != cat.ID {
				return integrityErr("category", cat.ID, "lists group %q owned by category %q", id, g.CategoryID)
			}
			if g.Index != want {
				return integrityErr("category", cat.ID, "group list order disagrees with group %q index %d", id, g.Index)
			}
			return nil
		}); err != nil {
			return err
		}
	}

	articlesByID := make(map[string]*Article, len(articles))
	bySection := make(map[string]map[int][]string)
	byCategory := make(map[string]map[int][]string)
	byGroup := make(map[string]map[int][]string)
	for _, a := range articles {
		if a.ID == "" {
			return integrityErr("article", "", "empty id")
		}
		if _, dup := articlesByID[a.ID]; dup {
			return integrityErr("article", a.ID, "duplicate id")
		}
		articlesByID[a.ID] = a
		if err := claimPath("article", a.ID, a.Path); err != nil {
			return err
		}
		switch a.Status {
		case StatusDraft, StatusPublished, StatusUnlisted:
		default:
			return integrityErr("article", a.ID, "invalid status %q", a.Status)
		}
		if _, ok := sectionsByID[a.SectionID]; !ok {
			return integrityErr("article", a.ID, "references missing section %q", a.SectionID)
		}
		cat, ok := categoriesByID[a.CategoryID]
		if !ok {
			return integrityErr("article", a.ID, "references missing category %q", a.CategoryID)
		}
		if cat.SectionID != a.SectionID {
			return integrityErr("article", a.ID, "category %q belongs to section %q, not %q", a.CategoryID, cat.SectionID, a.SectionID)
		}
		if a.GroupID != nil {
			g, ok := groupsByID[*a.GroupID]
			if !ok {
				return integrityErr("article", a.ID, "references missing group %q", *a.GroupID)
			}
			if g.CategoryID != a.CategoryID {
				return integrityErr("article", a.ID, "group %q belongs to category %q, not %q", g.ID, g.CategoryID, a.CategoryID)
			}
			addIndex(byGroup, *a.GroupID, a.GroupIndex, a.ID)
		}
		addIndex(bySection, a.SectionID, a.SectionIndex, a.ID)
		addIndex(byCategory, a.CategoryID, a.CategoryIndex, a.ID)
	}
	for sectionID, idx := range bySection {
		if err := checkContiguous("article", "section "+sectionID, idx); err != nil {
			return err
		}
	}
	for categoryID, idx := range byCategory {
		if err := checkContiguous("article", "category "+categoryID, idx); err != nil {
			return err
		}
	}
	for groupID, idx := range byGroup {
		if err := checkContiguous("article", "group "+groupID, idx); err != nil {
			return err
		}
	}

	return nil
}

// checkPathShape requires normalized paths: leading slash, no trailing
// slash, no empty segments.
func checkPathShape(kind, id, path string) *IntegrityError {
	if path == "" || path[0] != '/' {
		return integrityErr(kind, id, "path %q must begin with /", path)
	}
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		return integrityErr(kind, id, "path %q has a trailing slash", path)
	}
	if strings.Contains(path, "//") {
		return integrityErr(kind, id, "path %q contains an empty segment", path)
	}
	return nil
}

// checkContiguous requires the index set of one sibling scope to be
// exactly 0..n-1 with no duplicates.
func checkContiguous(kind, scope string, byIndex map[int][]string) *IntegrityError {
	n := 0
	for _, ids := range byIndex {
		n += len(ids)
	}
	for i := 0; i < n; i++ {
		ids := byIndex[i]
		switch {
		case len(ids) == 0:
			return integrityErr(kind, "", "missing index %d in %s", i, scope)
		case len(ids) > 1:
			return integrityErr(kind, ids[1], "duplicate index %d in %s", i, scope)
		}
	}
	return nil
}

// checkOwnedOrder requires an owner's ordered child-id list to cover
// exactly its owned children, positions matching child indexes.
func checkOwnedOrder(kind, id string, childIDs []string, owned int, check func(childID string, want int) *IntegrityError) *IntegrityError {
	if len(childIDs) != owned {
		return integrityErr(kind, id, "child list has %d entries, %d entities reference it", len(childIDs), owned)
	}
	for i, childID := range childIDs {
		if err := check(childID, i); err != nil {
			return err
		}
	}
	return nil
}

func sectionIndexes(sections []*Section) map[int][]string {
	idx := make(map[int][]string, len(sections))
	for _, sec := range sections {
		idx[sec.Index] = append(idx[sec.Index], sec.ID)
	}
	return idx
}

func addIndex(scopes map[string]map[int][]string, scope string, index int, id string) {
	idx, ok := scopes[scope]
	if !ok {
		idx = make(map[int][]string)
		scopes[scope] = idx
	}
	idx[index] = append(idx[index], id)
}
