// ABOUTME: Exhaustive path enumeration for build-time route generation
// ABOUTME: Emits every addressable path once, plus decomposed segment arrays

package nav

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/nainya/docnav/pkg/content"
)

// EnumerateOptions is the route-generation policy. The defaults match
// a public site build: drafts get no route, unlisted pages do (they
// are reachable, just never linked).
type EnumerateOptions struct {
	IncludeDrafts   bool
	IncludeUnlisted bool
}

// DefaultEnumerateOptions returns the public site build policy.
func DefaultEnumerateOptions() EnumerateOptions {
	return EnumerateOptions{IncludeDrafts: false, IncludeUnlisted: true}
}

// PathEnumerator produces the full route set of one snapshot: every
// section, category and article path exactly once, in deterministic
// order. Groups are excluded, matching resolution.
type PathEnumerator struct {
	store content.Store
	opts  EnumerateOptions
}

// NewPathEnumerator creates an enumerator over one snapshot.
func NewPathEnumerator(store content.Store, opts EnumerateOptions) *PathEnumerator {
	return &PathEnumerator{store: store, opts: opts}
}

// Paths returns every addressable path: sections in index order,
// categories grouped by section, then articles in section order.
// Every returned path resolves successfully via the resolver.
func (e *PathEnumerator) Paths() []string {
	var paths []string
	for _, sec := range e.store.Sections() {
		paths = append(paths, sec.Path)
	}
	for _, cat := range e.store.Categories() {
		paths = append(paths, cat.Path)
	}
	for _, a := range e.store.Articles() {
		if e.routed(a) {
			paths = append(paths, a.Path)
		}
	}
	return paths
}

// Routes returns each path decomposed into its non-empty
// slash-delimited segments, for router pre-registration.
func (e *PathEnumerator) Routes() [][]string {
	paths := e.Paths()
	routes := make([][]string, 0, len(paths))
	for _, p := range paths {
		routes = append(routes, Segments(p))
	}
	return routes
}

// WriteRoutes writes the route set to path as a JSON manifest. The
// write is atomic so a build consumer never observes a partial file.
func (e *PathEnumerator) WriteRoutes(path string) error {
	manifest := struct {
		Paths  []string   `json:"paths"`
		Routes [][]string `json:"routes"`
	}{
		Paths:  e.Paths(),
		Routes: e.Routes(),
	}

	buf, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("encode routes: %w", err)
	}
	buf = append(buf, '\n')

	if err := atomic.WriteFile(path, bytes.NewReader(buf)); err != nil {
		return fmt.Errorf("write routes %s: %w", path, err)
	}
	return nil
}

func (e *PathEnumerator) routed(a *content.Article) bool {
	switch a.Status {
	case content.StatusDraft:
		return e.opts.IncludeDrafts
	case content.StatusUnlisted:
		return e.opts.IncludeUnlisted
	}
	return true
}

// Segments splits a normalized path into its non-empty segments.
func Segments(path string) []string {
	return strings.Split(strings.TrimPrefix(path, "/"), "/")
}
