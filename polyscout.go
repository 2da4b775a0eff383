// Package polyscout generates the web-feature polyfill explorer dataset.
// It discovers polyfill links in MDN documentation pages, cross-references
// them with the web-features catalog, merges manually curated overrides,
// enriches packages with npm download statistics, and renders a static
// HTML explorer page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, resty/, gomarkdown/).
package polyscout
