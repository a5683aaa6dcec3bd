package domain

import "strings"

// Source tags which corpus an item belongs to.
type Source string

const (
	// SourceDoa marks supplication entries.
	SourceDoa Source = "doa"
	// SourceHadis marks saying/tradition entries.
	SourceHadis Source = "hadis"
)

// Item is a single corpus entry. Items are built once at load time and never
// mutated afterwards; concurrent requests share them read-only.
type Item struct {
	ID      string
	Title   string // judul (doa) or tema (hadis)
	Meaning string // arti, the Indonesian translation/explanation

	// Latin is the transliterated original text. Doa only, may be empty.
	Latin string
	// Keywords holds free-text keyword phrases. Hadis only, may be empty.
	Keywords []string

	Source Source
}

// NewDoa builds a supplication item tagged with the doa corpus.
func NewDoa(id, title, meaning, latin string) Item {
	return Item{ID: id, Title: title, Meaning: meaning, Latin: latin, Source: SourceDoa}
}

// NewHadis builds a saying item tagged with the hadis corpus.
func NewHadis(id, topic, meaning string, keywords []string) Item {
	return Item{ID: id, Title: topic, Meaning: meaning, Keywords: keywords, Source: SourceHadis}
}

// SearchableText joins the fields a lexical match should see.
func (i Item) SearchableText() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{i.Title, i.Meaning, i.Latin} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
