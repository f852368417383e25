// Package search builds and queries a BM25 full-text index over
// parsed Markdown documents.
//
// The index is built once per site build from extracted document
// fields (title, headings, body, code), serialized to JSON next to the
// generated pages, and queried either in-process or after reloading
// from disk. Fields carry different boost weights so a title hit
// outranks the same term buried in a code block.
package search

import "encoding/json"

// Field identifies where in a document a term occurred.
type Field string

// Document fields in descending boost order.
const (
	FieldTitle   Field = "title"
	FieldHeading Field = "heading"
	FieldBody    Field = "body"
	FieldCode    Field = "code"
)

// Boost returns the score multiplier for the field.
func (f Field) Boost() float64 {
	switch f {
	case FieldTitle:
		return 10.0
	case FieldHeading:
		return 5.0
	case FieldCode:
		return 0.5
	default:
		return 1.0
	}
}

// Document is one searchable document.
type Document struct {
	// ID uniquely identifies the document, usually its URL path.
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	URL      string   `json:"url"`
	Body     string   `json:"body"`
	Headings []string `json:"headings"`
	Code     []string `json:"code,omitempty"`
}

// Posting is one entry in a term's posting list.
type Posting struct {
	// DocIdx indexes into Index.Documents.
	DocIdx int `json:"doc_idx"`
	// TF is the term frequency within the document.
	TF uint32 `json:"tf"`
	// Field is where the term was first seen, for boosting.
	Field Field `json:"field"`
}

// Index is a serializable inverted index with the statistics BM25
// scoring needs.
type Index struct {
	Documents []Document           `json:"documents"`
	Postings  map[string][]Posting `json:"index"`
	// DF maps each term to the number of documents containing it.
	DF map[string]int `json:"df"`
	// AvgDocLen is the mean body token count, the BM25 length prior.
	AvgDocLen float64 `json:"avg_dl"`
	DocCount  int     `json:"doc_count"`
}

// Len returns the number of indexed documents.
func (idx *Index) Len() int {
	return len(idx.Documents)
}

// IsEmpty reports whether the index holds no documents.
func (idx *Index) IsEmpty() bool {
	return len(idx.Documents) == 0
}

// ToJSON serializes the index for embedding next to generated pages.
func (idx *Index) ToJSON() ([]byte, error) {
	return json.Marshal(idx)
}

// FromJSON reloads an index previously serialized with ToJSON.
func FromJSON(data []byte) (*Index, error) {
	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, err
	}
	return &idx, nil
}

// Builder accumulates documents and computes the index in one pass.
type Builder struct {
	documents []Document
}

// NewBuilder creates an empty index builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add queues a document for indexing.
func (b *Builder) Add(doc Document) *Builder {
	b.documents = append(b.documents, doc)
	return b
}

// AddSimple queues a document with only id, title, url, and body.
func (b *Builder) AddSimple(id, title, url, body string) *Builder {
	return b.Add(Document{ID: id, Title: title, URL: url, Body: body})
}

type termStats struct {
	tf    uint32
	field Field
}

// Build computes postings, document frequencies, and the average body
// length. The builder may be reused afterwards; already-added
// documents stay queued.
func (b *Builder) Build() *Index {
	postings := make(map[string][]Posting)
	df := make(map[string]int)
	totalLen := 0

	for docIdx, doc := range b.documents {
		// The first field a term is seen in decides its boost;
		// fields are scanned in descending boost order.
		terms := make(map[string]*termStats)

		tally := func(tokens []string, field Field) {
			for _, token := range tokens {
				if s, ok := terms[token]; ok {
					s.tf++
				} else {
					terms[token] = &termStats{tf: 1, field: field}
				}
			}
		}

		tally(Tokenize(doc.Title), FieldTitle)
		for _, heading := range doc.Headings {
			tally(Tokenize(heading), FieldHeading)
		}
		bodyTokens := Tokenize(doc.Body)
		totalLen += len(bodyTokens)
		tally(bodyTokens, FieldBody)
		for _, code := range doc.Code {
			tally(Tokenize(code), FieldCode)
		}

		for term, s := range terms {
			df[term]++
			postings[term] = append(postings[term], Posting{
				DocIdx: docIdx,
				TF:     s.tf,
				Field:  s.field,
			})
		}
	}

	avgDL := 0.0
	if len(b.documents) > 0 {
		avgDL = float64(totalLen) / float64(len(b.documents))
	}

	return &Index{
		Documents: b.documents,
		Postings:  postings,
		DF:        df,
		AvgDocLen: avgDL,
		DocCount:  len(b.documents),
	}
}
