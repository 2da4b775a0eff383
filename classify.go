package polyscout

import (
	"regexp"
	"strings"
)

// RawLink is a candidate link extracted from a documentation page before
// classification: the link target and the cleaned text of the list-item
// block that contained it.
type RawLink struct {
	URL  string
	Text string
}

var (
	npmPackageRe = regexp.MustCompile(`/package/((?:@[^/?#]+/)?[^/?#]+)`)
	githubRepoRe = regexp.MustCompile(`github\.com/([^/?#]+)/([^/?#]+)`)
)

// Rule decides whether a raw link should be treated as a polyfill
// candidate. Rules are checked in order; the first match qualifies the
// link. New heuristics are added by appending rules, not by editing the
// extraction logic.
type Rule func(link RawLink) bool

// URLMentionsPolyfill matches links whose URL contains "polyfill".
func URLMentionsPolyfill(link RawLink) bool {
	return strings.Contains(strings.ToLower(link.URL), "polyfill")
}

// TextMentionsPolyfill matches links whose surrounding block text contains
// "polyfill".
func TextMentionsPolyfill(link RawLink) bool {
	return strings.Contains(strings.ToLower(link.Text), "polyfill")
}

// NPMRegistryURL matches links that point at an npm registry package page.
func NPMRegistryURL(link RawLink) bool {
	lower := strings.ToLower(link.URL)
	return strings.Contains(lower, "npmjs.com/package/") ||
		strings.Contains(lower, "npmjs.org/package/")
}

// DefaultRules returns the standard polyfill classification rules. The
// heuristic has unavoidable false positives and negatives; manual
// overrides exist precisely to correct misses.
func DefaultRules() []Rule {
	return []Rule{URLMentionsPolyfill, TextMentionsPolyfill, NPMRegistryURL}
}

// MatchesAny reports whether any rule classifies the link as a candidate.
func MatchesAny(rules []Rule, link RawLink) bool {
	for _, rule := range rules {
		if rule(link) {
			return true
		}
	}
	return false
}

// ClassifyLink normalizes a raw link into a structured fallback record.
// Package and repository extraction are independent: a link can carry
// both identities, either one, or neither (url-only fallback).
func ClassifyLink(link RawLink) Fallback {
	fb := Fallback{
		Type: FallbackTypePolyfill,
		URL:  link.URL,
	}

	if m := npmPackageRe.FindStringSubmatch(link.URL); m != nil {
		fb.NPM = m[1]
	}
	if m := githubRepoRe.FindStringSubmatch(link.URL); m != nil {
		fb.Repository = m[1] + "/" + strings.TrimSuffix(m[2], ".git")
	}
	if text := strings.TrimSpace(link.Text); text != "" {
		fb.Description = text
	}

	return fb
}
