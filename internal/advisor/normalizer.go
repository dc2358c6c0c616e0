package advisor

import (
	"strings"
	"unicode/utf8"
)

// aliasPair maps a localized team-name token to its canonical English form.
// Applied in slice order by plain substring replacement, so a shorter alias
// contained in a longer one can fire first; keep multi-word aliases before
// their single-word parts.
type aliasPair struct {
	alias     string
	canonical string
}

var teamAliases = []aliasPair{
	{"манчестер юнайтед", "manchester united"},
	{"манчестер сити", "manchester city"},
	{"ман юнайтед", "manchester united"},
	{"ман сити", "manchester city"},
	{"манчестер", "manchester"},
	{"пари сен-жермен", "paris saint-germain"},
	{"кристал пэлас", "crystal palace"},
	{"астон вилла", "aston villa"},
	{"вест хэм", "west ham"},
	{"реал мадрид", "real madrid"},
	{"атлетико", "atletico"},
	{"арсенал", "arsenal"},
	{"челси", "chelsea"},
	{"ливерпуль", "liverpool"},
	{"тоттенхэм", "tottenham"},
	{"эвертон", "everton"},
	{"ньюкасл", "newcastle"},
	{"брайтон", "brighton"},
	{"брентфорд", "brentford"},
	{"фулхэм", "fulham"},
	{"борнмут", "bournemouth"},
	{"вулверхэмптон", "wolverhampton"},
	{"лестер", "leicester"},
	{"саутгемптон", "southampton"},
	{"лидс", "leeds"},
	{"барселона", "barcelona"},
	{"барса", "barcelona"},
	{"севилья", "sevilla"},
	{"валенсия", "valencia"},
	{"реал", "real"},
	{"бавария", "bayern"},
	{"боруссия", "borussia"},
	{"дортмунд", "dortmund"},
	{"лейпциг", "leipzig"},
	{"байер", "bayer"},
	{"ювентус", "juventus"},
	{"юве", "juventus"},
	{"милан", "milan"},
	{"интер", "inter"},
	{"наполи", "napoli"},
	{"рома", "roma"},
	{"лацио", "lazio"},
	{"аталанта", "atalanta"},
	{"псж", "psg"},
	{"марсель", "marseille"},
	{"лион", "lyon"},
	{"монако", "monaco"},
	{"лилль", "lille"},
	{"порту", "porto"},
	{"бенфика", "benfica"},
	{"спортинг", "sporting"},
	{"аякс", "ajax"},
	{"селтик", "celtic"},
	{"рейнджерс", "rangers"},
}

// stopWords are dropped from search tokens. Both languages; connectives,
// versus-words, pronouns and common question verbs.
var stopWords = map[string]struct{}{
	// Russian
	"и": {}, "в": {}, "на": {}, "с": {}, "о": {}, "у": {}, "за": {}, "по": {},
	"из": {}, "от": {}, "до": {}, "про": {}, "или": {}, "либо": {},
	"кто": {}, "что": {}, "как": {},
	"когда": {}, "матч": {}, "матча": {}, "матче": {}, "матчи": {},
	"игра": {}, "игре": {}, "игры": {}, "против": {}, "между": {},
	"выиграет": {}, "победит": {}, "сыграет": {}, "думаешь": {},
	"считаешь": {}, "скажи": {},
	// English
	"vs": {}, "versus": {}, "against": {}, "the": {}, "a": {}, "an": {},
	"and": {}, "or": {}, "in": {}, "on": {}, "at": {}, "of": {}, "for": {},
	"with": {}, "who": {}, "what": {}, "when": {}, "will": {}, "win": {},
	"wins": {}, "match": {}, "game": {}, "play": {}, "plays": {},
	"think": {}, "you": {}, "i": {}, "between": {}, "about": {},
}

// minTokenLen is the minimum rune length for a token to participate in
// search and scoring.
const minTokenLen = 3

// Normalize lowercases the text and replaces every known localized alias
// with its canonical English form. Replacement is plain substring based, not
// word-bounded: an alias contained in an unrelated longer word is replaced
// too. Known limitation, kept to match the alias table semantics.
func Normalize(text string) string {
	s := strings.ToLower(text)
	for _, p := range teamAliases {
		s = strings.ReplaceAll(s, p.alias, p.canonical)
	}
	return s
}

// SearchTokens normalizes the text and extracts the search token set:
// whitespace tokens minus stop-words and tokens shorter than 3 runes.
func SearchTokens(text string) []string {
	fields := strings.Fields(Normalize(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,!?:;\"'()[]«»")
		if utf8.RuneCountInString(f) < minTokenLen {
			continue
		}
		if _, stop := stopWords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// NormalizeQuery produces the normalized search string: the search tokens
// re-joined with single spaces.
func NormalizeQuery(text string) string {
	return strings.Join(SearchTokens(text), " ")
}
