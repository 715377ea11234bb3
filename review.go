package donate

import (
	"encoding/json"
	"fmt"
	"io"
)

// DefaultLanguage is used when a translation is missing.
const DefaultLanguage = "en"

// Translatable holds one piece of participant-facing text per language code.
type Translatable map[string]string

// Get returns the text for lang, falling back to DefaultLanguage.
func (t Translatable) Get(lang string) string {
	if s, ok := t[lang]; ok {
		return s
	}
	return t[DefaultLanguage]
}

// ReviewTable is a table presented to the participant for review.
type ReviewTable struct {
	ID    string       `json:"id"`
	Title Translatable `json:"title"`
	Table *Table       `json:"table"`
}

// Review is the consent-review payload: the extracted tables paired with
// their titles, plus the texts of the consent question.
type Review struct {
	Tables      []ReviewTable `json:"tables"`
	Description Translatable  `json:"description,omitempty"`
	Question    Translatable  `json:"question,omitempty"`
	Button      Translatable  `json:"button,omitempty"`
}

// ReviewTableID returns the identifier of the review table at index.
func ReviewTableID(index int) string {
	return fmt.Sprintf("zip_contents_%d", index)
}

// Assemble pairs each table with the title at the same index.
// Returns EINVALID if the counts differ or a table is nil.
func Assemble(tables []*Table, titles []Translatable) (*Review, error) {
	if len(tables) != len(titles) {
		return nil, Errorf(EINVALID, "got %d tables but %d titles", len(tables), len(titles))
	}

	review := &Review{Tables: make([]ReviewTable, 0, len(tables))}
	for i, table := range tables {
		if table == nil {
			return nil, Errorf(EINVALID, "table %d is missing", i)
		}
		review.Tables = append(review.Tables, ReviewTable{
			ID:    ReviewTableID(i),
			Title: titles[i],
			Table: table,
		})
	}
	return review, nil
}

// MarshalReview encodes the review as the JSON document that is donated:
// table ids, titles, columns and rows with null cells.
func MarshalReview(review *Review) ([]byte, error) {
	if review == nil {
		return nil, Errorf(EINVALID, "review is required")
	}
	data, err := json.Marshal(review)
	if err != nil {
		return nil, Errorf(EINTERNAL, "encode review: %v", err)
	}
	return data, nil
}

// ReviewRenderer writes a review payload in a presentation format.
type ReviewRenderer interface {
	Render(w io.Writer, review *Review, lang string) error
}
