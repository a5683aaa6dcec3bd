package dataset

// Wire DTOs mirror the JSON dataset files. Unknown fields are ignored.

type doaDTO struct {
	ID    string `json:"id"`
	Judul string `json:"judul"`
	Arti  string `json:"arti"`
	Latin string `json:"latin"`
}

type hadisDTO struct {
	ID        string   `json:"id"`
	Tema      string   `json:"tema"`
	Arti      string   `json:"arti"`
	KataKunci []string `json:"kata_kunci"`
}

// intentDTO is one entry of the intent rule file. The file is an ordered
// array, not an object: detection tie-breaking depends on load order.
type intentDTO struct {
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	Keywords       []string `json:"keywords"`
	CanonicalQuery string   `json:"canonical_query"`
}
