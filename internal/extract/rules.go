// Package extract pulls readable prose, titles, section outlines and paper
// records out of page sources. The heavy lifting is done by ordered regex
// rule tables, so each rewrite can be tested on its own.
package extract

import "regexp"

// Rule is one rewrite step: every match of Pattern is replaced by Replace.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Replace string
}

// RuleSet is an ordered list of rules applied one after another.
type RuleSet []Rule

// Apply runs every rule over s in order.
func (rs RuleSet) Apply(s string) string {
	for _, r := range rs {
		s = r.Pattern.ReplaceAllLiteralString(s, r.Replace)
	}
	return s
}

// Lookup returns the rule with the given name.
func (rs RuleSet) Lookup(name string) (Rule, bool) {
	for _, r := range rs {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}

func rule(name, pattern, replace string) Rule {
	return Rule{Name: name, Pattern: regexp.MustCompile(pattern), Replace: replace}
}

// braced matches a {...} group nested up to three levels deep.
const braced = `\{[^{}]*(?:\{[^{}]*(?:\{[^{}]*\}[^{}]*)*\}[^{}]*)*\}`

// StructureRules remove code from a page source before prose candidates
// are collected.
var StructureRules = RuleSet{
	rule("directive", `(?m)^[ \t]*["']use (?:client|server|strict)["'];?[ \t]*$`, ""),
	rule("import", `(?ms)^[ \t]*import\b.*?["'][^"'\n]*["'];?[ \t]*$`, ""),
	rule("literal-declaration-inline", `(?m)^[ \t]*(?:export\s+)?(?:const|let|var)\s+\w+[^=\n]*=\s*[\[{][^\n]*[\]}][ \t]*;?[ \t]*$`, ""),
	rule("literal-declaration", `(?ms)^[ \t]*(?:export\s+)?(?:const|let|var)\s+\w+[^=\n]*=\s*[\[{][ \t]*$.*?^[ \t]*[\]}][ \t]*;?[ \t]*$`, ""),
	rule("block-comment", `(?s)/\*.*?\*/`, " "),
	rule("line-comment", `(?m)^[ \t]*//.*$`, ""),
	rule("event-handler", `\bon[A-Z]\w*\s*=\s*`+braced, " "),
	rule("hook-call", `\buse[A-Z]\w*\s*\((?:[^(){}]|\([^()]*\)|`+braced+`)*\)`, " "),
	rule("attribute", `\b(?:className|class|style|id|key|href|src|alt|target|rel|type|role|width|height|viewBox|fill|stroke|d|xmlns|tocItems|aria-[\w-]+|data-[\w-]+)\s*=\s*(?:"[^"]*"|'[^']*'|`+braced+`)`, " "),
	rule("control-structure", `\b(?:if|for|while|switch)\s*\([^()]*(?:\([^()]*\)[^()]*)*\)\s*`+braced, " "),
	rule("function-header", `(?m)^[ \t]*(?:export\s+)?(?:default\s+)?(?:async\s+)?function\s*\w*\s*\([^)]*\)\s*(?::[^{\n]+)?\{`, ""),
	rule("return", `\breturn\s*\(`, " "),
}

// EntityRules decode the named character references that show up in page
// text. &amp; goes last so "&amp;lt;" decodes once.
var EntityRules = RuleSet{
	rule("entity-nbsp", `&nbsp;|&#160;`, " "),
	rule("entity-apos", `&apos;|&#39;|&#x27;`, "'"),
	rule("entity-quot", `&quot;|&#34;`, `"`),
	rule("entity-lsquo", `&lsquo;`, "‘"),
	rule("entity-rsquo", `&rsquo;`, "’"),
	rule("entity-ldquo", `&ldquo;`, "“"),
	rule("entity-rdquo", `&rdquo;`, "”"),
	rule("entity-mdash", `&mdash;`, "—"),
	rule("entity-ndash", `&ndash;`, "–"),
	rule("entity-hellip", `&hellip;`, "…"),
	rule("entity-lt", `&lt;`, "<"),
	rule("entity-gt", `&gt;`, ">"),
	rule("entity-amp", `&amp;`, "&"),
}

var whitespaceRule = rule("whitespace", `\s+`, " ")

// CleanupRules normalize the joined prose candidates.
var CleanupRules = concat(
	RuleSet{
		rule("expression", `\{[^{}]*\}`, " "),
		rule("tag", `</?[A-Za-z][^<>]*>`, " "),
		rule("symbol-token", `(?:^|\s)(?:[^\p{L}\p{N}\s]{2,}\s+)*[^\p{L}\p{N}\s]{2,}(?:\s|$)`, " "),
	},
	EntityRules,
	RuleSet{
		rule("residual-symbol", `[^\p{L}\p{N}\s.,!?;:'"()%&/<>+#@$\-–—…‘’“”]`, " "),
		whitespaceRule,
	},
)

// inlineRules tidy short strings such as titles that skip candidate
// extraction.
var inlineRules = concat(EntityRules, RuleSet{whitespaceRule})

func concat(sets ...RuleSet) RuleSet {
	var out RuleSet
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}
