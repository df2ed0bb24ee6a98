// ABOUTME: Tests for path resolution
// ABOUTME: Verifies table precedence, NotFound and group exclusion

package nav

import (
	"errors"
	"testing"

	"github.com/nainya/docnav/pkg/content"
)

func TestResolveEachKind(t *testing.T) {
	snap := setupTestSnapshot(t)
	resolver := NewResolver(snap)

	cases := []struct {
		path string
		kind Kind
		id   string
	}{
		{"/start", KindSection, "s-start"},
		{"/guides", KindSection, "s-guides"},
		{"/start/install", KindCategory, "c-install"},
		{"/start/install/linux", KindArticle, "a-linux"},
		{"/start/install/mac", KindArticle, "a-mac"}, // drafts still resolve
		{"/start/concepts/arch", KindArticle, "a-arch"},
	}

	for _, tc := range cases {
		res, err := resolver.Resolve(tc.path)
		if err != nil {
			t.Fatalf("Resolve(%s) failed: %v", tc.path, err)
		}
		if res.Kind != tc.kind {
			t.Errorf("Resolve(%s): expected kind %s, got %s", tc.path, tc.kind, res.Kind)
		}
		if res.Path() != tc.path {
			t.Errorf("Resolve(%s): resolved entity path %q", tc.path, res.Path())
		}
		var gotID string
		switch res.Kind {
		case KindSection:
			gotID = res.Section.ID
		case KindCategory:
			gotID = res.Category.ID
		case KindArticle:
			gotID = res.Article.ID
		}
		if gotID != tc.id {
			t.Errorf("Resolve(%s): expected %s, got %s", tc.path, tc.id, gotID)
		}
	}
}

func TestResolveNotFound(t *testing.T) {
	snap := setupTestSnapshot(t)
	resolver := NewResolver(snap)

	for _, path := range []string{"/missing", "/start/missing", "/start/install/missing"} {
		_, err := resolver.Resolve(path)
		if err == nil {
			t.Fatalf("Resolve(%s): expected NotFound", path)
		}
		if !errors.Is(err, content.ErrNotFound) {
			t.Errorf("Resolve(%s): expected ErrNotFound, got %v", path, err)
		}
	}
}

func TestGroupsNeverResolve(t *testing.T) {
	snap := setupTestSnapshot(t)
	resolver := NewResolver(snap)

	// Groups are organizational labels without pages. Even a path
	// someone intended for a group has no valid target.
	if _, err := resolver.Resolve("/start/install/platforms"); !errors.Is(err, content.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for a group-shaped path, got %v", err)
	}
}
