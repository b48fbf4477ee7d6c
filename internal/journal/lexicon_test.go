package journal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLexicon_MatchPriority(t *testing.T) {
	lex := DefaultLexicon()
	tests := []struct {
		content string
		want    Category
	}{
		{"午睡片刻", CategoryResting},
		{"開會討論新版設計", CategoryWork},
		{"閱讀資料庫書籍", CategoryDevelopment},
		{"陪家人吃飯", CategoryFamily},
		{"sleep in", CategoryResting},
		{"standup with team", CategoryWork},
	}
	for _, tt := range tests {
		got, ok := lex.Match(tt.content)
		if !ok {
			t.Errorf("Match(%q) found nothing, want %s", tt.content, tt.want)
			continue
		}
		if got != tt.want {
			t.Errorf("Match(%q) = %s, want %s", tt.content, got, tt.want)
		}
	}
}

func TestLexicon_NoMatch(t *testing.T) {
	lex := DefaultLexicon()
	if cat, ok := lex.Match("洗衣服"); ok {
		t.Errorf("Match matched %s for plain chores, want no match", cat)
	}
}

func TestLexicon_RestingBeatsWork(t *testing.T) {
	// Resting keywords are checked first, so a content matching both sets
	// resolves to resting.
	lex := DefaultLexicon()
	got, ok := lex.Match("工作到一半補眠")
	if !ok || got != CategoryResting {
		t.Errorf("Match = %v %v, want resting (priority order)", got, ok)
	}
}

func TestLoadLexicon_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.toml")
	overlay := `
[keywords]
work = ["hustle"]

[colors]
work = "#123456"
`
	if err := os.WriteFile(path, []byte(overlay), 0o644); err != nil {
		t.Fatal(err)
	}

	lex, err := LoadLexicon(path)
	if err != nil {
		t.Fatalf("LoadLexicon: %v", err)
	}
	if got, ok := lex.Match("hustle hard"); !ok || got != CategoryWork {
		t.Errorf("overlay keyword not applied: %v %v", got, ok)
	}
	if _, ok := lex.Match("開會"); ok {
		t.Error("overlay should replace the work keyword set, not extend it")
	}
	if lex.Color(CategoryWork) != "#123456" {
		t.Errorf("overlay color = %q", lex.Color(CategoryWork))
	}
	// Untouched categories keep defaults.
	if got, ok := lex.Match("閱讀"); !ok || got != CategoryDevelopment {
		t.Errorf("default development keywords lost: %v %v", got, ok)
	}
}

func TestLoadLexicon_UnknownCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.toml")
	if err := os.WriteFile(path, []byte("[keywords]\nchilling = [\"x\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLexicon(path); err == nil {
		t.Error("expected error for unknown category name")
	}
}

func TestLoadLexicon_MissingFile(t *testing.T) {
	if _, err := LoadLexicon(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseCategory_ClosedSet(t *testing.T) {
	for _, c := range Categories() {
		if got, ok := ParseCategory(string(c)); !ok || got != c {
			t.Errorf("ParseCategory(%s) = %v %v", c, got, ok)
		}
	}
	for _, bad := range []string{"", "Work", "gaming", "rest"} {
		if _, ok := ParseCategory(bad); ok {
			t.Errorf("ParseCategory(%q) accepted a value outside the set", bad)
		}
	}
}
