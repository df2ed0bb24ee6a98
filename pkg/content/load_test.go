// ABOUTME: Tests for the JSONC manifest loader
// ABOUTME: Verifies defaults, optional groups file and load-time rejection

package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

func TestLoadContentDir(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, SectionsFile, `[
		// top-level docs section
		{
			"id": "s1",
			"title": "Docs",
			"path": "/docs",
			"index": 0,
			"categories": ["c1"],
		},
	]`)
	writeManifest(t, dir, CategoriesFile, `[
		{"id": "c1", "title": "Basics", "path": "/docs/basics", "sectionId": "s1", "index": 0},
	]`)
	writeManifest(t, dir, ArticlesFile, `[
		{
			"id": "a1",
			"title": "Hello",
			"body": "...",
			"path": "/docs/basics/hello",
			"categoryId": "c1",
			"sectionId": "s1",
			"sectionIndex": 0,
			"categoryIndex": 0,
			"keywords": ["intro"],
		},
	]`)

	snap, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// groups.json was absent; defaults applied.
	sec, _ := snap.SectionByID("s1")
	if sec.Display != DisplayShowLinks {
		t.Errorf("Expected default display show-links, got %q", sec.Display)
	}
	a, _ := snap.ArticleByID("a1")
	if a.Status != StatusPublished {
		t.Errorf("Expected default status published, got %q", a.Status)
	}
	if len(a.Keywords) != 1 || a.Keywords[0] != "intro" {
		t.Errorf("Keywords not loaded: %v", a.Keywords)
	}
}

func TestLoadMissingRequiredManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, SectionsFile, `[]`)

	if _, err := Load(dir); err == nil {
		t.Fatal("Expected error for missing categories manifest")
	}
}

func TestLoadMalformedManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, SectionsFile, `[{`)
	writeManifest(t, dir, CategoriesFile, `[]`)
	writeManifest(t, dir, ArticlesFile, `[]`)

	if _, err := Load(dir); err == nil {
		t.Fatal("Expected parse error")
	}
}

func TestLoadRejectsInvalidHierarchy(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, SectionsFile, `[
		{"id": "s1", "title": "Docs", "path": "/docs", "index": 0, "categories": []},
	]`)
	writeManifest(t, dir, CategoriesFile, `[]`)
	writeManifest(t, dir, ArticlesFile, `[
		{"id": "a1", "title": "Orphan", "path": "/docs/orphan",
		 "categoryId": "c-missing", "sectionId": "s1",
		 "sectionIndex": 0, "categoryIndex": 0},
	]`)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Expected integrity violation")
	}
	if !errors.Is(err, ErrIntegrity) {
		t.Fatalf("Expected ErrIntegrity, got: %v", err)
	}
}
