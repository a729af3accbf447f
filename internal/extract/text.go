package extract

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinSentenceLen is the shortest sentence, in runes, kept by DedupSentences.
// Anything shorter is treated as extraction noise.
const MinSentenceLen = 10

var (
	jsxChild      = regexp.MustCompile(`>([^<>{}]+)<`)
	stringLiteral = regexp.MustCompile(`"([^"\\\n]{30,})"`)

	wordRun      = regexp.MustCompile(`\p{L}{4,}`)
	codeLead     = regexp.MustCompile(`^(?:(?:className|style|id|href|src|alt|target|rel)\s*=|(?:const|let|var)\s+\w+\s*=|function\s*\w*\s*\(|return\s*[;(]|(?:if|for|while|switch)\s*\(|on[A-Z]\w*\s*=|use[A-Z]\w*\s*\(|set[A-Z]\w*\s*\(|window\.|\.map|\.filter|=>|[={}\[\];])`)
	codeFragment = regexp.MustCompile(`=>|&&|\|\||===|!==|\?\s*\(|:\s*\(|\b\w+\.\w+\s*\?`)
	literalSkip  = regexp.MustCompile(`^(?:https?://|mailto:|\.{0,2}/|#|@/)`)

	sentenceEnd = regexp.MustCompile(`[.!?]+(?:\s+|$)`)
)

// Text returns the readable prose in a page source region: code is
// stripped, JSX text and prose-like string literals are collected in source
// order, the result is cleaned, and repeated sentences are dropped.
func Text(source string) string {
	stripped := StructureRules.Apply(source)
	fragments := dedupFragments(candidates(stripped))
	cleaned := strings.TrimSpace(CleanupRules.Apply(strings.Join(fragments, " ")))
	return DedupSentences(cleaned)
}

type candidate struct {
	start, end int
	text       string
}

// candidates collects JSX children that read like prose plus long string
// literals outside of them.
func candidates(src string) []string {
	var found []candidate
	for _, m := range jsxChild.FindAllStringSubmatchIndex(src, -1) {
		text := strings.TrimSpace(src[m[2]:m[3]])
		if looksLikeProse(text) {
			found = append(found, candidate{start: m[2], end: m[3], text: text})
		}
	}

	children := len(found)
	for _, m := range stringLiteral.FindAllStringSubmatchIndex(src, -1) {
		if within(found[:children], m[0], m[1]) {
			continue
		}
		text := strings.TrimSpace(src[m[2]:m[3]])
		if looksLikeSentence(text) {
			found = append(found, candidate{start: m[2], end: m[3], text: text})
		}
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].start < found[j].start })

	out := make([]string, len(found))
	for i, c := range found {
		out[i] = c.text
	}
	return out
}

func within(cs []candidate, start, end int) bool {
	for _, c := range cs {
		if start >= c.start && end <= c.end {
			return true
		}
	}
	return false
}

func looksLikeProse(s string) bool {
	if utf8.RuneCountInString(s) <= 3 || !wordRun.MatchString(s) {
		return false
	}
	if codeLead.MatchString(s) || codeFragment.MatchString(s) {
		return false
	}

	letters, symbols := 0, 0
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			letters++
		case strings.ContainsRune("=<>!&|+-*/%(){}[]", r):
			symbols++
		}
	}
	return letters > symbols
}

func looksLikeSentence(s string) bool {
	if literalSkip.MatchString(s) || codeLead.MatchString(s) || !wordRun.MatchString(s) {
		return false
	}
	return strings.ContainsRune(s, ' ') && !looksLikeClassList(s)
}

// looksLikeClassList reports whether s is a list of utility CSS classes
// such as "text-base mb-6 md:flex".
func looksLikeClassList(s string) bool {
	tokens := strings.Fields(s)
	dashed := 0
	for _, tok := range tokens {
		if strings.IndexFunc(tok, unicode.IsUpper) >= 0 {
			return false
		}
		if strings.ContainsAny(tok, "-:") {
			dashed++
		}
	}
	return dashed*2 >= len(tokens)
}

// dedupFragments drops candidates that repeat an earlier one, ignoring case.
func dedupFragments(fragments []string) []string {
	seen := make(map[string]bool, len(fragments))
	out := fragments[:0]
	for _, f := range fragments {
		key := strings.ToLower(f)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, f)
	}
	return out
}

// DedupSentences splits text after sentence-ending punctuation and keeps
// the first occurrence of each sentence, compared case-insensitively and
// without its terminator. Sentences shorter than MinSentenceLen are dropped.
func DedupSentences(text string) string {
	seen := make(map[string]bool)
	var out []string
	keep := func(s string) {
		s = strings.TrimSpace(s)
		key := strings.ToLower(strings.TrimRight(s, ".!? "))
		if utf8.RuneCountInString(key) < MinSentenceLen || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, s)
	}

	start := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(text, -1) {
		keep(text[start:loc[1]])
		start = loc[1]
	}
	if start < len(text) {
		keep(text[start:])
	}
	return strings.Join(out, " ")
}

// cleanInline decodes entities and collapses whitespace in a short string.
func cleanInline(s string) string {
	return strings.TrimSpace(inlineRules.Apply(s))
}
