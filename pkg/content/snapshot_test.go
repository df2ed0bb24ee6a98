// ABOUTME: Tests for snapshot construction and ordered accessors
// ABOUTME: Verifies index ordering and lookup maps over a small hierarchy

package content

import "testing"

// testFixture builds a valid two-section hierarchy used across the
// package tests:
//
//	/start (show-links)
//	  /start/install        [g: Platforms -> linux, mac(draft)] verify
//	  /start/concepts       arch(unlisted), terms
//	/guides (show-title)
//	  /guides/deploy        docker
func testFixture() ([]*Section, []*Category, []*Group, []*Article) {
	gid := "platforms"

	sections := []*Section{
		{ID: "s-start", Title: "Getting Started", Path: "/start", Index: 0,
			CategoryIDs: []string{"c-install", "c-concepts"}, Display: DisplayShowLinks},
		{ID: "s-guides", Title: "Guides", Path: "/guides", Index: 1,
			CategoryIDs: []string{"c-deploy"}, Display: DisplayShowTitle},
	}
	categories := []*Category{
		{ID: "c-install", Title: "Installation", Path: "/start/install",
			SectionID: "s-start", Index: 0, GroupIDs: []string{gid}},
		{ID: "c-concepts", Title: "Concepts", Path: "/start/concepts",
			SectionID: "s-start", Index: 1},
		{ID: "c-deploy", Title: "Deployment", Path: "/guides/deploy",
			SectionID: "s-guides", Index: 0},
	}
	groups := []*Group{
		{ID: gid, Title: "Platforms", SectionID: "s-start", CategoryID: "c-install", Index: 0},
	}
	articles := []*Article{
		{ID: "a-linux", Title: "Install on Linux", Path: "/start/install/linux",
			GroupID: &gid, CategoryID: "c-install", SectionID: "s-start",
			SectionIndex: 0, CategoryIndex: 0, GroupIndex: 0, Status: StatusPublished},
		{ID: "a-mac", Title: "Install on macOS", Path: "/start/install/mac",
			GroupID: &gid, CategoryID: "c-install", SectionID: "s-start",
			SectionIndex: 1, CategoryIndex: 1, GroupIndex: 1, Status: StatusDraft},
		{ID: "a-verify", Title: "Verify the Install", Path: "/start/install/verify",
			CategoryID: "c-install", SectionID: "s-start",
			SectionIndex: 2, CategoryIndex: 2, Status: StatusPublished},
		{ID: "a-arch", Title: "Architecture", Path: "/start/concepts/arch",
			CategoryID: "c-concepts", SectionID: "s-start",
			SectionIndex: 3, CategoryIndex: 0, Status: StatusUnlisted},
		{ID: "a-terms", Title: "Terminology", Path: "/start/concepts/terms",
			CategoryID: "c-concepts", SectionID: "s-start",
			SectionIndex: 4, CategoryIndex: 1, Status: StatusPublished},
		{ID: "a-docker", Title: "Deploy with Docker", Path: "/guides/deploy/docker",
			CategoryID: "c-deploy", SectionID: "s-guides",
			SectionIndex: 0, CategoryIndex: 0, Status: StatusPublished},
	}

	return sections, categories, groups, articles
}

func setupTestSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	snap, err := NewSnapshot(testFixture())
	if err != nil {
		t.Fatalf("Failed to build snapshot: %v", err)
	}
	return snap
}

func TestSnapshotLookups(t *testing.T) {
	snap := setupTestSnapshot(t)

	sec, ok := snap.SectionByPath("/start")
	if !ok || sec.ID != "s-start" {
		t.Fatalf("Expected section s-start, got %v ok=%v", sec, ok)
	}

	cat, ok := snap.CategoryByPath("/start/concepts")
	if !ok || cat.ID != "c-concepts" {
		t.Fatalf("Expected category c-concepts, got %v ok=%v", cat, ok)
	}

	a, ok := snap.ArticleByPath("/guides/deploy/docker")
	if !ok || a.ID != "a-docker" {
		t.Fatalf("Expected article a-docker, got %v ok=%v", a, ok)
	}

	if _, ok := snap.ArticleByPath("/missing"); ok {
		t.Error("Expected miss for unknown path")
	}

	g, ok := snap.GroupByID("platforms")
	if !ok || g.Title != "Platforms" {
		t.Errorf("Expected group platforms, got %v ok=%v", g, ok)
	}
}

func TestSnapshotOrdering(t *testing.T) {
	snap := setupTestSnapshot(t)

	sections := snap.Sections()
	if len(sections) != 2 || sections[0].ID != "s-start" || sections[1].ID != "s-guides" {
		t.Fatalf("Sections out of order: %v", ids(sections, func(s *Section) string { return s.ID }))
	}

	cats := snap.CategoriesIn("s-start")
	if len(cats) != 2 || cats[0].ID != "c-install" || cats[1].ID != "c-concepts" {
		t.Errorf("Categories out of order: %v", ids(cats, func(c *Category) string { return c.ID }))
	}

	// Articles() is the section-order flattening used by navigation.
	want := []string{"a-linux", "a-mac", "a-verify", "a-arch", "a-terms", "a-docker"}
	got := ids(snap.Articles(), func(a *Article) string { return a.ID })
	if len(got) != len(want) {
		t.Fatalf("Expected %d articles, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Article %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	inGroup := snap.ArticlesInGroup("platforms")
	if len(inGroup) != 2 || inGroup[0].ID != "a-linux" || inGroup[1].ID != "a-mac" {
		t.Errorf("Group articles out of order: %v", ids(inGroup, func(a *Article) string { return a.ID }))
	}
}

func TestSnapshotStats(t *testing.T) {
	snap := setupTestSnapshot(t)

	sections, categories, groups, articles := snap.Stats()
	if sections != 2 || categories != 3 || groups != 1 || articles != 6 {
		t.Errorf("Unexpected stats: %d/%d/%d/%d", sections, categories, groups, articles)
	}
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = id(item)
	}
	return out
}
