package lexicon

import (
	_ "embed"
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const (
	// NumSefirot is the number of vertices in the canonical graph.
	NumSefirot = 10
	// NumLetters is the number of edge types in the canonical graph.
	NumLetters = 22
)

//go:embed tables.yaml
var tablesYAML []byte

// Sefira is one of the 10 archetypal concept-nodes of the graph model.
type Sefira struct {
	Name            string `yaml:"name"`
	Transliteration string `yaml:"transliteration"`
	Meaning         string `yaml:"meaning"`
}

// Letter is one of the 22 Hebrew letters, forming an edge between the
// sefirot at canonical indices From and To.
type Letter struct {
	Rune rune
	Name string
	From int
	To   int
}

// letterSpec is the YAML shape of a letter entry. Endpoints are given by
// transliteration and resolved to canonical indices during load.
type letterSpec struct {
	Letter string `yaml:"letter"`
	Final  string `yaml:"final"`
	Name   string `yaml:"name"`
	From   string `yaml:"from"`
	To     string `yaml:"to"`
}

type tableSpec struct {
	Sefirot []Sefira     `yaml:"sefirot"`
	Letters []letterSpec `yaml:"letters"`
}

var (
	sefirot [NumSefirot]Sefira
	letters [NumLetters]Letter

	byRune  map[rune]Letter
	byTrans map[string]int
)

func init() {
	if err := load(tablesYAML); err != nil {
		panic(fmt.Sprintf("lexicon: invalid embedded tables: %v", err))
	}
}

// load parses and validates the table definition, populating the package
// level lookup structures.
func load(data []byte) error {
	var def tableSpec
	if err := yaml.Unmarshal(data, &def); err != nil {
		return fmt.Errorf("failed to parse tables: %w", err)
	}
	if len(def.Sefirot) != NumSefirot {
		return fmt.Errorf("expected %d sefirot, got %d", NumSefirot, len(def.Sefirot))
	}
	if len(def.Letters) != NumLetters {
		return fmt.Errorf("expected %d letters, got %d", NumLetters, len(def.Letters))
	}

	byTrans = make(map[string]int, NumSefirot)
	for i, s := range def.Sefirot {
		if s.Name == "" || s.Transliteration == "" {
			return fmt.Errorf("sefira %d is missing a name", i)
		}
		if _, dup := byTrans[s.Transliteration]; dup {
			return fmt.Errorf("duplicate sefira %q", s.Transliteration)
		}
		sefirot[i] = s
		byTrans[s.Transliteration] = i
	}

	byRune = make(map[rune]Letter, NumLetters+5)
	for i, ls := range def.Letters {
		r, err := singleRune(ls.Letter)
		if err != nil {
			return fmt.Errorf("letter %q: %w", ls.Name, err)
		}
		from, ok := byTrans[ls.From]
		if !ok {
			return fmt.Errorf("letter %q: unknown endpoint %q", ls.Name, ls.From)
		}
		to, ok := byTrans[ls.To]
		if !ok {
			return fmt.Errorf("letter %q: unknown endpoint %q", ls.Name, ls.To)
		}
		l := Letter{Rune: r, Name: ls.Name, From: from, To: to}
		if _, dup := byRune[r]; dup {
			return fmt.Errorf("duplicate letter %q", ls.Letter)
		}
		letters[i] = l
		byRune[r] = l
		if ls.Final != "" {
			f, err := singleRune(ls.Final)
			if err != nil {
				return fmt.Errorf("letter %q final form: %w", ls.Name, err)
			}
			byRune[f] = l
		}
	}
	return nil
}

func singleRune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("%q is not a single rune", s)
	}
	return r, nil
}

// Sefirot returns the 10 sefirot in canonical order.
func Sefirot() []Sefira {
	out := make([]Sefira, NumSefirot)
	copy(out, sefirot[:])
	return out
}

// Letters returns the 22 letters in canonical order.
func Letters() []Letter {
	out := make([]Letter, NumLetters)
	copy(out, letters[:])
	return out
}

// SefiraAt returns the sefira at canonical index i.
func SefiraAt(i int) Sefira {
	return sefirot[i]
}

// Index returns the canonical index of the sefira with the given
// transliterated name.
func Index(transliteration string) (int, bool) {
	i, ok := byTrans[transliteration]
	return i, ok
}

// LetterByRune looks up the letter for r, folding final forms to their base
// letter. The second return value is false for runes outside the 22-letter
// table.
func LetterByRune(r rune) (Letter, bool) {
	l, ok := byRune[r]
	return l, ok
}

// IsHebrewLetter reports whether r is one of the 22 letters or a final form.
func IsHebrewLetter(r rune) bool {
	_, ok := byRune[r]
	return ok
}
