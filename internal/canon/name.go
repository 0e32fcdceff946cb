package canon

import (
	"regexp"
	"sort"
	"strings"
)

// dropDescriptors are non-identity modifiers (size, cut shape, ripeness,
// packaging) stripped from ingredient names.
var dropDescriptors = map[string]bool{
	"dry": true, "powdered": true, "grated": true, "crushed": true,
	"sliced": true, "chopped": true, "large": true, "small": true,
	"medium": true, "boneless": true, "skinless": true, "uncooked": true,
	"unsalted": true, "salted": true, "sweetened": true,
	"unsweetened": true, "canned": true, "frozen": true, "ripe": true,
	"peeled": true, "whole": true, "lean": true, "fillet": true,
	"fillets": true,
}

// stateAdjs are doneness-state modifiers, dropped unless the head noun
// lists them as identity-bearing (see headSpecificKeep).
var stateAdjs = map[string]bool{
	"cooked": true, "boiled": true, "steamed": true, "raw": true,
	"dried": true, "fresh": true, "smoked": true, "roasted": true,
	"grilled": true, "fried": true, "baked": true, "ground": true,
	"minced": true,
}

// keepModifiers are identity-bearing adjectives retained for any head:
// colors, cuisine adjectives, and "spring" (spring onion).
var keepModifiers = map[string]bool{
	"thai": true, "indian": true, "chinese": true, "italian": true,
	"spring": true,
	"green": true, "red": true, "yellow": true, "white": true,
	"black": true, "brown": true, "purple": true,
}

// headSpecificKeep lists state modifiers that change identity for a
// particular head noun: cooked rice is not raw rice; ground meat is not a
// cut of meat.
var headSpecificKeep = map[string]map[string]bool{
	"rice":    {"cooked": true, "steamed": true, "boiled": true},
	"noodle":  {"cooked": true, "boiled": true},
	"chicken": {"ground": true, "minced": true},
	"beef":    {"ground": true, "minced": true},
	"pork":    {"ground": true, "minced": true},
	"lamb":    {"ground": true, "minced": true},
	"mutton":  {"ground": true, "minced": true},
}

// phraseAliases folds known multi-word or variant spellings of the same
// ingredient onto one token before tokenization. Kept intentionally small.
var phraseAliases = map[string]string{
	"coriander leaves": "coriander leaf",
	"curry leaves":     "curry leaf",
	"curry leave":      "curry leaf",
	"cilantro":         "coriander leaf",
	"scallions":        "spring onion",
	"scallion":         "spring onion",
}

// chiliRe matches the chili/chile/chilli spelling family.
var chiliRe = regexp.MustCompile(`^chil(?:i|ie|ies|y|ly|li|lies|les|es)$`)

var (
	parensRe     = regexp.MustCompile(`\s*\([^)]*\)\s*`)
	nonWordRe    = regexp.MustCompile(`[^\w\s'-]+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// aliasKeys holds phraseAliases keys longest-first so multi-word aliases
// fold before their substrings.
var aliasKeys = func() []string {
	keys := make([]string, 0, len(phraseAliases))
	for k := range phraseAliases {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	return keys
}()

// Name reduces a raw ingredient name to its canonical form: lowercase,
// descriptor-stripped, spelling-folded, singular head noun, and at most a
// two-token compound (identity modifier + head).
func Name(raw string) string {
	s := preclean(raw)
	if s == "" {
		return ""
	}
	for _, k := range aliasKeys {
		s = strings.ReplaceAll(s, k, phraseAliases[k])
	}

	toks := strings.Fields(s)
	head := ""
	var mods []string
	for i, t := range toks {
		t = foldSpelling(t)
		if i == len(toks)-1 {
			head = singular(t)
			continue
		}
		mods = append(mods, t)
	}
	if head == "" {
		return ""
	}

	var kept []string
	for _, m := range mods {
		switch {
		case keepModifiers[m]:
			kept = append(kept, m)
		case headSpecificKeep[head][m]:
			kept = append(kept, m)
		case stateAdjs[m] || dropDescriptors[m]:
			// non-identity descriptor
		default:
			// compound noun part ("fish" in fish sauce, "soy" in soy sauce)
			kept = append(kept, m)
		}
	}

	// Cap at a two-token compound: last surviving modifier + head.
	if len(kept) > 1 {
		kept = kept[len(kept)-1:]
	}
	if len(kept) == 1 {
		return kept[0] + " " + head
	}
	return head
}

// preclean lowercases, strips parentheticals and punctuation, and
// collapses whitespace.
func preclean(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "’", "'")
	s = parensRe.ReplaceAllString(s, " ")
	s = nonWordRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// foldSpelling unifies known spelling variants of a single token.
func foldSpelling(tok string) string {
	if chiliRe.MatchString(tok) {
		return "chili"
	}
	return tok
}

// singular reduces a token to singular form with a short list of irregular
// foldings; leafy-herb plurals fold to the singular leaf form.
func singular(w string) string {
	switch w {
	case "leaves", "leave":
		return "leaf"
	}
	if len(w) > 4 && strings.HasSuffix(w, "ies") && !isVowel(w[len(w)-4]) {
		return w[:len(w)-3] + "y"
	}
	// Only a sibilant stem takes the "es" strip: classes -> class but
	// cheeses -> cheese and houses -> house via the plain "s" rule below.
	for _, suf := range []string{"ches", "shes", "xes", "zes", "sses", "oes"} {
		if strings.HasSuffix(w, suf) {
			return w[:len(w)-2]
		}
	}
	if len(w) > 3 && strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") {
		return w[:len(w)-1]
	}
	return w
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
