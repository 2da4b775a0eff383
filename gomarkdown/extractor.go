// Package gomarkdown extracts polyfill-candidate links from MDN page
// sources using the gomarkdown parser.
package gomarkdown

import (
	"net/url"
	"regexp"
	"strings"

	gm "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	gmparser "github.com/gomarkdown/markdown/parser"

	"github.com/fwojciec/polyscout"
)

// selfHost is the documentation site's own host. Self-references are never
// polyfills and are always discarded.
const selfHost = "developer.mozilla.org"

var (
	headingRe      = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+?)\s*$`)
	inlineLinkRe   = regexp.MustCompile(`\[([^\]]*)\]\(([^)\s]*)\)`)
	listBoundaryRe = regexp.MustCompile(`^[-*]\s`)
)

// Ensure Extractor implements polyscout.LinkExtractor at compile time.
var _ polyscout.LinkExtractor = (*Extractor)(nil)

// Extractor finds polyfill-candidate links in a page's "See also" section.
type Extractor struct {
	rules []polyscout.Rule
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithRules replaces the default classification rules.
func WithRules(rules []polyscout.Rule) Option {
	return func(e *Extractor) {
		e.rules = rules
	}
}

// NewExtractor creates an Extractor with the default classification rules.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		rules: polyscout.DefaultRules(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SeeAlsoLinks returns the candidate links found in the page content.
// Pages without a "See also" section yield an empty result; this is the
// normal case for most pages, not an error.
func (e *Extractor) SeeAlsoLinks(content string) []polyscout.RawLink {
	section := seeAlsoSection(content)
	if section == "" {
		return nil
	}

	var links []polyscout.RawLink
	for _, block := range splitListBlocks(section) {
		urls := markdownLinks(block)
		if len(urls) == 0 {
			continue
		}

		text := cleanBlockText(block)
		for _, u := range urls {
			if isSelfLink(u) {
				continue
			}
			link := polyscout.RawLink{URL: u, Text: text}
			if polyscout.MatchesAny(e.rules, link) {
				links = append(links, link)
			}
		}
	}
	return links
}

// seeAlsoSection returns the body of the "See also" section: everything
// between its heading (matched case-insensitively) and the next heading of
// any level, or the end of the document.
func seeAlsoSection(content string) string {
	headings := headingRe.FindAllStringSubmatchIndex(content, -1)
	for i, h := range headings {
		title := content[h[4]:h[5]]
		if !strings.EqualFold(title, "See also") {
			continue
		}
		start := h[1]
		end := len(content)
		if i+1 < len(headings) {
			end = headings[i+1][0]
		}
		return content[start:end]
	}
	return ""
}

// splitListBlocks splits section content into list-item blocks. A block
// starts at a line beginning with a list-item marker and includes any
// continuation lines up to the next marker (explanatory text may follow a
// link on its own line). Lines before the first marker are discarded.
func splitListBlocks(section string) []string {
	var blocks []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range strings.Split(section, "\n") {
		if listBoundaryRe.MatchString(line) {
			flush()
			current = []string{line}
		} else if current != nil {
			current = append(current, line)
		}
	}
	flush()

	return blocks
}

// markdownLinks parses a block and returns every link destination with an
// http or https scheme, in document order.
func markdownLinks(block string) []string {
	doc := gm.Parse([]byte(block), gmparser.NewWithExtensions(
		gmparser.CommonExtensions|gmparser.Autolink,
	))

	var urls []string
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		if link, ok := node.(*ast.Link); ok {
			dest := string(link.Destination)
			if strings.HasPrefix(dest, "http://") || strings.HasPrefix(dest, "https://") {
				urls = append(urls, dest)
			}
		}
		return ast.GoToNext
	})
	return urls
}

// cleanBlockText turns a list-item block into readable prose: the leading
// bullet marker is removed, markdown links are replaced by their link
// text, and whitespace runs collapse to single spaces.
func cleanBlockText(block string) string {
	text := strings.TrimSpace(block)
	if len(text) >= 2 && (text[0] == '-' || text[0] == '*') {
		text = strings.TrimLeft(text[1:], " \t")
	}
	text = inlineLinkRe.ReplaceAllString(text, "$1")
	return strings.Join(strings.Fields(text), " ")
}

// isSelfLink reports whether the URL points back at the documentation site.
func isSelfLink(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Hostname(), selfHost)
}
