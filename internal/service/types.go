package service

import (
	"github.com/mutluarslanoglu/BaglamliTurkcelestirmeYapayZekaDestekliMetinDonusumSistemi/internal/rank"
)

type AnalyzeRequest struct {
	UserID     string `json:"user_id"`
	Text       string `json:"text"`
	ContextTag string `json:"context_tag"` // akademik / egitsel / kurumsal
	Level      string `json:"level"`       // light / balanced / strict
}

type AnalyzeItem struct {
	ID          string                  `json:"id"`
	Original    string                  `json:"original"`
	ForeignNorm string                  `json:"foreign_norm"`
	Start       int                     `json:"start"`
	End         int                     `json:"end"`
	Context     string                  `json:"context"`
	Suggestions []rank.RankedSuggestion `json:"suggestions"`
}

type Report struct {
	CandidatesFound    int    `json:"candidates_found"`
	UniqueForeignTerms int    `json:"unique_foreign_terms"`
	Level              string `json:"level"`
}

type AnalyzeResponse struct {
	Items  []AnalyzeItem `json:"items"`
	Report Report        `json:"report"`
}

type Choice struct {
	CandidateID string   `json:"candidate_id"`
	Chosen      string   `json:"chosen,omitempty"`
	Rejected    []string `json:"rejected"`
}

type ApplyRequest struct {
	UserID     string   `json:"user_id"`
	Text       string   `json:"text"`
	ContextTag string   `json:"context_tag"`
	Level      string   `json:"level"`
	Choices    []Choice `json:"choices"`
}

type ApplyResponse struct {
	NewText      string `json:"new_text"`
	AppliedCount int    `json:"applied_count"`
	Report       Report `json:"report"`
}
