// Package api is the remote data gateway: it performs the raw HTTP calls
// against the prompt-catalog service and normalizes its heterogeneous
// response envelopes into canonical Profile and Prompt records.
package api

import (
	"fmt"

	"promptdeck/internal/catalog"
)

// Profile is the viewer's account summary. Absent (nil) when the viewer is
// unauthenticated; the UI substitutes a zero placeholder in that case.
type Profile struct {
	TotalGenerations int `json:"total_generations"`
	DoneCount        int `json:"done_count"`
	NotFinishedCount int `json:"not_finished_count"`
	CancelCount      int `json:"cancel_count"`

	ReferralsCount int `json:"referrals_count"`
	BonusTotal     int `json:"bonus_total"`
	BonusBalance   int `json:"bonus_balance"`
	Balance        int `json:"balance"`

	RefCode   string `json:"ref_code"`
	CreatedAt string `json:"created_at"`
}

// FavoriteResult is the outcome of a favorite toggle. State is nil when the
// server acknowledged the call without saying which way the flag went; the
// caller then flips its previous local value. Favorites is nil when no
// authoritative counter came back; the caller then adjusts by exactly one.
type FavoriteResult struct {
	State     *bool
	Favorites *int
}

// StatusError is a transport failure carrying the HTTP status and body text.
type StatusError struct {
	Endpoint string
	Status   int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s HTTP %d: %s", e.Endpoint, e.Status, e.Body)
}

// rawPrompt mirrors one record of the prompt list response.
type rawPrompt struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	PromptText  string   `json:"prompt_text"`
	ImageURL    string   `json:"image_url"`
	Categories  []string `json:"categories"`

	CopiesByUser   int  `json:"copies_by_user"`
	FavoritesCount int  `json:"favorites_count"`
	IsFavorite     bool `json:"is_favorite"`
}

// toPrompt maps a raw record into the canonical catalog shape: category is
// the first tag, with a fixed fallback when the record has none.
func (r rawPrompt) toPrompt() *catalog.Prompt {
	category := catalog.CategoryNone
	if len(r.Categories) > 0 {
		category = r.Categories[0]
	}
	return &catalog.Prompt{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		PromptText:  r.PromptText,
		Image:       r.ImageURL,
		Category:    category,
		Tags:        r.Categories,
		Copies:      r.CopiesByUser,
		Favorites:   r.FavoritesCount,
		IsFavorite:  r.IsFavorite,
	}
}

// rawFavorite covers the response variants of the favorite endpoint.
type rawFavorite struct {
	IsFavorite *bool `json:"is_favorite"`
	Favorite   *bool `json:"favorite"`
	Active     *bool `json:"active"`

	FavoritesCount *int `json:"favorites_count"`
	Favorites      *int `json:"favorites"`
}

// rawCopy covers the response variants of the copy endpoint.
type rawCopy struct {
	CopiesByUser *int `json:"copies_by_user"`
	Copies       *int `json:"copies"`
	Count        *int `json:"count"`
}
