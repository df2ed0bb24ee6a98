// ABOUTME: Snapshot loader for content build output
// ABOUTME: Parses JSONC table manifests and validates them into a snapshot

package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// Table manifest file names inside a content directory. Each holds one
// JSON array of entities; comments and trailing commas are allowed.
const (
	SectionsFile   = "sections.json"
	CategoriesFile = "categories.json"
	GroupsFile     = "groups.json"
	ArticlesFile   = "articles.json"
)

// Load reads the manifests of one content build from dir and returns a
// validated snapshot. groups.json may be absent since groups are
// optional. Any invariant violation fails the load.
func Load(dir string) (*Snapshot, error) {
	var sections []*Section
	if err := readTable(filepath.Join(dir, SectionsFile), &sections); err != nil {
		return nil, err
	}
	var categories []*Category
	if err := readTable(filepath.Join(dir, CategoriesFile), &categories); err != nil {
		return nil, err
	}
	var groups []*Group
	if err := readTable(filepath.Join(dir, GroupsFile), &groups); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	var articles []*Article
	if err := readTable(filepath.Join(dir, ArticlesFile), &articles); err != nil {
		return nil, err
	}

	applyDefaults(sections, articles)
	return NewSnapshot(sections, categories, groups, articles)
}

// readTable parses one JSONC manifest into out (a pointer to a slice).
func readTable(path string, out interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	std, err := hujson.Standardize(raw)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if err := json.Unmarshal(std, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// applyDefaults fills manifest fields authors usually omit. Validation
// stays strict; only unambiguous defaults are applied here.
func applyDefaults(sections []*Section, articles []*Article) {
	for _, sec := range sections {
		if sec.Display == "" {
			sec.Display = DisplayShowLinks
		}
	}
	for _, a := range articles {
		if a.Status == "" {
			a.Status = StatusPublished
		}
	}
}
