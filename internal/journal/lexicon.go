package journal

import (
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Lexicon holds the keyword and display tables for the category set. It is
// data, not code: callers get the built-in defaults and may overlay a user
// TOML file on top.
type Lexicon struct {
	// Keywords maps a category to its content-match keyword set. Matching
	// is substring-based and checked in keywordOrder priority.
	Keywords map[Category][]string
	// Colors maps a category to its display color (hex, lipgloss-style).
	Colors map[Category]string
}

// keywordOrder is the fallback decision order: first matching keyword set
// wins. Social and routine carry no keywords; routine is the default and
// social is only ever assigned by the remote classifier or the user.
var keywordOrder = []Category{
	CategoryResting,
	CategoryWork,
	CategoryDevelopment,
	CategoryFamily,
}

// DefaultLexicon returns the built-in keyword and color tables.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		Keywords: map[Category][]string{
			CategoryResting: {
				"睡", "午睡", "補眠", "休息", "小憩", "發呆",
				"sleep", "nap", "rest",
			},
			CategoryWork: {
				"開會", "會議", "工作", "報告", "簡報", "面試", "信件",
				"work", "meeting", "email", "standup",
			},
			CategoryDevelopment: {
				"閱讀", "學習", "練習", "寫程式", "筆記", "課程", "研究",
				"read", "study", "learn", "code", "course",
			},
			CategoryFamily: {
				"家人", "爸", "媽", "小孩", "家事", "接送",
				"family", "kids", "parents",
			},
		},
		Colors: map[Category]string{
			CategoryWork:        "#5B8DEF",
			CategoryRoutine:     "#8C8C8C",
			CategoryDevelopment: "#00E676",
			CategoryFamily:      "#FFD700",
			CategorySocial:      "#FF79C6",
			CategoryResting:     "#636363",
		},
	}
}

// lexiconFile is the TOML-serializable overlay format. Every table is
// optional; present tables replace the defaults for that category.
type lexiconFile struct {
	Keywords map[string][]string `toml:"keywords"`
	Colors   map[string]string   `toml:"colors"`
}

// LoadLexicon reads a TOML overlay file and merges it over the defaults.
// Unknown category names in the file are rejected so typos surface early.
func LoadLexicon(path string) (*Lexicon, error) {
	lex := DefaultLexicon()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon file: %w", err)
	}
	var file lexiconFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing lexicon file: %w", err)
	}
	for name, words := range file.Keywords {
		cat, ok := ParseCategory(name)
		if !ok {
			return nil, fmt.Errorf("lexicon: unknown category %q", name)
		}
		lex.Keywords[cat] = words
	}
	for name, color := range file.Colors {
		cat, ok := ParseCategory(name)
		if !ok {
			return nil, fmt.Errorf("lexicon: unknown category %q", name)
		}
		lex.Colors[cat] = color
	}
	return lex, nil
}

// Match returns the first category whose keyword set matches content, in
// priority order. The second return value is false when nothing matches.
func (l *Lexicon) Match(content string) (Category, bool) {
	for _, cat := range keywordOrder {
		for _, kw := range l.Keywords[cat] {
			if kw != "" && strings.Contains(content, kw) {
				return cat, true
			}
		}
	}
	return "", false
}

// Color returns the display color for a category.
func (l *Lexicon) Color(c Category) string {
	return l.Colors[c]
}
