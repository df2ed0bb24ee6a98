// ABOUTME: Shared test fixture for the navigation package
// ABOUTME: Builds a two-section snapshot with drafts, unlisted and grouped articles

package nav

import (
	"testing"

	"github.com/nainya/docnav/pkg/content"
)

// setupTestSnapshot builds the hierarchy the nav tests run against:
//
//	/start (show-links)
//	  /start/install   Platforms[linux, mac(draft)], verify
//	  /start/concepts  arch(unlisted), terms
//	/guides (show-title)
//	  /guides/deploy   docker
func setupTestSnapshot(t *testing.T) *content.Snapshot {
	t.Helper()
	gid := "platforms"

	sections := []*content.Section{
		{ID: "s-start", Title: "Getting Started", Path: "/start", Index: 0,
			CategoryIDs: []string{"c-install", "c-concepts"}, Display: content.DisplayShowLinks},
		{ID: "s-guides", Title: "Guides", Path: "/guides", Index: 1,
			CategoryIDs: []string{"c-deploy"}, Display: content.DisplayShowTitle},
	}
	categories := []*content.Category{
		{ID: "c-install", Title: "Installation", Path: "/start/install",
			SectionID: "s-start", Index: 0, GroupIDs: []string{gid}},
		{ID: "c-concepts", Title: "Concepts", Path: "/start/concepts",
			SectionID: "s-start", Index: 1},
		{ID: "c-deploy", Title: "Deployment", Path: "/guides/deploy",
			SectionID: "s-guides", Index: 0},
	}
	groups := []*content.Group{
		{ID: gid, Title: "Platforms", SectionID: "s-start", CategoryID: "c-install", Index: 0},
	}
	articles := []*content.Article{
		{ID: "a-linux", Title: "Install on Linux", Path: "/start/install/linux",
			GroupID: &gid, CategoryID: "c-install", SectionID: "s-start",
			SectionIndex: 0, CategoryIndex: 0, GroupIndex: 0, Status: content.StatusPublished},
		{ID: "a-mac", Title: "Install on macOS", Path: "/start/install/mac",
			GroupID: &gid, CategoryID: "c-install", SectionID: "s-start",
			SectionIndex: 1, CategoryIndex: 1, GroupIndex: 1, Status: content.StatusDraft},
		{ID: "a-verify", Title: "Verify the Install", Path: "/start/install/verify",
			CategoryID: "c-install", SectionID: "s-start",
			SectionIndex: 2, CategoryIndex: 2, Status: content.StatusPublished},
		{ID: "a-arch", Title: "Architecture", Path: "/start/concepts/arch",
			CategoryID: "c-concepts", SectionID: "s-start",
			SectionIndex: 3, CategoryIndex: 0, Status: content.StatusUnlisted},
		{ID: "a-terms", Title: "Terminology", Path: "/start/concepts/terms",
			CategoryID: "c-concepts", SectionID: "s-start",
			SectionIndex: 4, CategoryIndex: 1, Status: content.StatusPublished},
		{ID: "a-docker", Title: "Deploy with Docker", Path: "/guides/deploy/docker",
			CategoryID: "c-deploy", SectionID: "s-guides",
			SectionIndex: 0, CategoryIndex: 0, Status: content.StatusPublished},
	}

	snap, err := content.NewSnapshot(sections, categories, groups, articles)
	if err != nil {
		t.Fatalf("Failed to build snapshot: %v", err)
	}
	return snap
}

func article(t *testing.T, snap *content.Snapshot, id string) *content.Article {
	t.Helper()
	a, ok := snap.ArticleByID(id)
	if !ok {
		t.Fatalf("Fixture article %s missing", id)
	}
	return a
}
