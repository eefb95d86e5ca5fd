// Package mdformat rewrites GitHub release markdown into a form that
// renders cleanly inside a Discord embed.
//
// The transforms compose left to right in a fixed order: reference
// stripping must run before mention and URL linkification, and
// truncation always runs last. Each step is a pure string function.
package mdformat

import (
	"fmt"
	"regexp"
	"strings"
)

// Discord enforces these limits on embed fields.
const (
	MaxTitleLen       = 256
	MaxDescriptionLen = 4096
)

const ellipsis = "…"

var (
	htmlCommentRe = regexp.MustCompile(`(?s)<!--.*?-->`)
	blankRunRe    = regexp.MustCompile(`\n(?:[ \t]*\n)+`)

	// Changelog generators decorate bullets with parenthesized PR,
	// issue and commit references. The paren variants must run first so
	// no empty "()" is left behind.
	refParenMDRe   = regexp.MustCompile(`[ \t]*\(\[[^\]]*\]\(https://github\.com/[\w.-]+/[\w.-]+/(?:pull|issues|commit)/[^()\s]+\)\)`)
	refMDRe        = regexp.MustCompile(`[ \t]*\[[^\]]*\]\(https://github\.com/[\w.-]+/[\w.-]+/(?:pull|issues|commit)/[^()\s]+\)`)
	refParenBareRe = regexp.MustCompile(`[ \t]*\(https://github\.com/[\w.-]+/[\w.-]+/(?:pull|issues|commit)/[^()\s]+\)`)
	commitURLRe    = regexp.MustCompile(`https://github\.com/[\w.-]+/[\w.-]+/commit/[0-9a-fA-F]{7,40}`)
	// Reference groups can hold several comma-separated links; once the
	// links are gone only the separators remain. Literal "()" in prose
	// (function names) is left alone.
	emptyParenRe   = regexp.MustCompile(`[ \t]*\([\s,;]+\)`)

	// A mention must not follow a word character (emails), a slash or
	// dot (URL paths), a backtick, an opening bracket or paren (link
	// text and targets). RE2 has no lookbehind, so the preceding
	// character is captured and re-emitted.
	mentionRe = regexp.MustCompile(`(^|[^\w./\x60(\[])@([A-Za-z0-9][A-Za-z0-9-]{0,38})`)

	mdLinkRe     = regexp.MustCompile(`\[[^\]]*\]\([^()\s]+\)`)
	pullURLRe    = regexp.MustCompile(`https://github\.com/[\w.-]+/[\w.-]+/pull/(\d+)`)
	issueURLRe   = regexp.MustCompile(`https://github\.com/[\w.-]+/[\w.-]+/issues/(\d+)`)
	compareURLRe = regexp.MustCompile(`https://github\.com/[\w.-]+/[\w.-]+/compare/([\w.^~-]+)\.\.\.([\w.^~-]+)`)

	h3Re = regexp.MustCompile(`(?m)^###[ \t]+(.+)$`)
	h2Re = regexp.MustCompile(`(?m)^##[ \t]+(.+)$`)
)

// FormatDescription runs the full rewrite pipeline over a release body
// and caps the result at MaxDescriptionLen.
func FormatDescription(body string) string {
	s := StripCarriageReturns(body)
	s = StripHTMLComments(s)
	s = CollapseBlankLines(s)
	s = StripLinkReferences(s)
	s = LinkifyMentions(s)
	s = LinkifyBareLinks(s)
	s = strings.TrimSpace(s)
	s = DemoteHeadings(s)
	return Truncate(s, MaxDescriptionLen)
}

// FormatTitle caps a release name at MaxTitleLen.
func FormatTitle(name string) string {
	return Truncate(strings.TrimSpace(name), MaxTitleLen)
}

// StripCarriageReturns drops CR characters so the remaining passes only
// deal with LF line endings.
func StripCarriageReturns(s string) string {
	return strings.ReplaceAll(s, "\r", "")
}

// StripHTMLComments removes <!-- ... --> spans, including multi-line
// ones.
func StripHTMLComments(s string) string {
	return htmlCommentRe.ReplaceAllString(s, "")
}

// CollapseBlankLines reduces any run of two or more newlines separated
// only by spaces or tabs to exactly one blank line. Single newlines are
// left alone.
func CollapseBlankLines(s string) string {
	return blankRunRe.ReplaceAllString(s, "\n\n")
}

// StripLinkReferences removes pull request, issue and commit reference
// decorations: markdown links to those URLs, parenthesized bare URLs,
// and bare commit URLs. Bare pull, issue and compare URLs in running
// text survive for LinkifyBareLinks.
//
// Markdown links must be stripped whole before the bare parenthesized
// pass runs, or that pass would eat the (url) half of a link and leave
// its [text] behind. Parens that held nothing but references are
// dropped at the end.
func StripLinkReferences(s string) string {
	s = refParenMDRe.ReplaceAllString(s, "")
	s = refMDRe.ReplaceAllString(s, "")
	s = refParenBareRe.ReplaceAllString(s, "")
	s = commitURLRe.ReplaceAllString(s, "")
	return emptyParenRe.ReplaceAllString(s, "")
}

// LinkifyMentions turns bare @username mentions into profile links.
// Candidates inside URLs, code spans or markdown links are left alone.
func LinkifyMentions(s string) string {
	return mentionRe.ReplaceAllStringFunc(s, func(m string) string {
		sub := mentionRe.FindStringSubmatch(m)
		prefix, name := sub[1], sub[2]
		if !validUsername(name) {
			return m
		}
		return fmt.Sprintf("%s[@%s](https://github.com/%s)", prefix, name, name)
	})
}

// validUsername applies GitHub username rules: alphanumeric with single
// internal hyphens, at most 39 characters.
func validUsername(name string) bool {
	if name == "" || len(name) > 39 {
		return false
	}
	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") {
		return false
	}
	return !strings.Contains(name, "--")
}

// LinkifyBareLinks rewrites bare pull request, issue and compare URLs
// into descriptive markdown links. Markdown links already present are
// lifted into placeholders first and reinserted afterwards, so their
// text and targets are never rewritten.
func LinkifyBareLinks(s string) string {
	var tokens, placeholders []string
	s = mdLinkRe.ReplaceAllStringFunc(s, func(link string) string {
		p := fmt.Sprintf("\x00%d\x00", len(tokens))
		tokens = append(tokens, link)
		placeholders = append(placeholders, p)
		return p
	})

	s = pullURLRe.ReplaceAllString(s, "[PR #${1}](${0})")
	s = issueURLRe.ReplaceAllString(s, "[Issue #${1}](${0})")
	s = compareURLRe.ReplaceAllString(s, "[${1}...${2}](${0})")

	for i, p := range placeholders {
		s = strings.Replace(s, p, tokens[i], 1)
	}
	return s
}

// DemoteHeadings rewrites level-3 headings as bold underlined text and
// level-2 headings as bold text. Discord embeds render markdown
// headings poorly. Level-1 headings are left alone.
func DemoteHeadings(s string) string {
	s = h3Re.ReplaceAllString(s, "**__${1}__**")
	return h2Re.ReplaceAllString(s, "**${1}**")
}

// Truncate caps s at max characters. When cut, the result is exactly
// max characters long and ends with an ellipsis.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + ellipsis
}
