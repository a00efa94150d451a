package domain

import "restaurantBackoffice/internal/shared/normalization"

// Entry is a guest's rating and comment.
type Entry struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	Category      string `json:"category"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	CreatedAt     string `json:"createdAt"`
}

type CreateEntryInput struct {
	CustomerName  string
	CustomerEmail string
	Category      string
	Rating        int
	Comment       string
}

// NormalizeCreateEntryInput reads the public feedback form payload.
func NormalizeCreateEntryInput(raw map[string]any) CreateEntryInput {
	return CreateEntryInput{
		CustomerName:  normalization.AsString(raw["customerName"]),
		CustomerEmail: normalization.AsString(raw["customerEmail"]),
		Category:      normalization.AsString(raw["category"]),
		Rating:        normalization.AsInt(raw["rating"]),
		Comment:       normalization.AsString(raw["comment"]),
	}
}

func (in CreateEntryInput) Build(id, createdAt string) Entry {
	return Entry{
		ID:            id,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		Category:      in.Category,
		Rating:        in.Rating,
		Comment:       in.Comment,
		CreatedAt:     createdAt,
	}
}

type EntryPatch struct {
	CustomerName  *string `json:"customerName"`
	CustomerEmail *string `json:"customerEmail"`
	Category      *string `json:"category"`
	Rating        *int    `json:"rating"`
	Comment       *string `json:"comment"`
}

func (p EntryPatch) Apply(e Entry) Entry {
	if p.CustomerName != nil {
		e.CustomerName = *p.CustomerName
	}
	if p.CustomerEmail != nil {
		e.CustomerEmail = *p.CustomerEmail
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Rating != nil {
		e.Rating = *p.Rating
	}
	if p.Comment != nil {
		e.Comment = *p.Comment
	}
	return e
}
