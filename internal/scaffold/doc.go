// Package scaffold creates a project's detail page from embedded templates
// the first time a project is built. The page loads its media from the
// gallery index at runtime, so the scaffold only fixes title and slug.
package scaffold
