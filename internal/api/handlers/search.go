package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/blkoutuk/ivor/internal/api"
	"github.com/blkoutuk/ivor/internal/domain"
	"github.com/blkoutuk/ivor/internal/index"
)

type SearchStore interface {
	Search(query string, limit int) []*domain.KnowledgeItem
	SearchResources(query string, limit int) []*domain.ResourceItem
}

type IndexStatser interface {
	Stats() index.Stats
}

type SearchHandler struct {
	store SearchStore
	index IndexStatser
}

func NewSearchHandler(store SearchStore, index IndexStatser) *SearchHandler {
	return &SearchHandler{store: store, index: index}
}

type SearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

type KnowledgeItemResponse struct {
	ID           string   `json:"id"`
	Question     string   `json:"question"`
	Answer       string   `json:"answer"`
	Category     string   `json:"category"`
	Organization string   `json:"organization"`
	Tags         []string `json:"tags,omitempty"`
	Priority     string   `json:"priority"`
	Region       string   `json:"region,omitempty"`
}

type KnowledgeSearchResponse struct {
	Results []*KnowledgeItemResponse `json:"results"`
}

type ResourceItemResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Organization string   `json:"organization"`
	Cost         string   `json:"cost"`
	Region       string   `json:"region,omitempty"`
	Specialties  []string `json:"specialties,omitempty"`
	Website      string   `json:"website,omitempty"`
}

type ResourceSearchResponse struct {
	Results []*ResourceItemResponse `json:"results"`
}

type IndexStatsResponse struct {
	Count       int    `json:"count"`
	LastUpdated string `json:"last_updated,omitempty"`
}

// Search returns ranked knowledge items for a query.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSearchRequest(w, r)
	if !ok {
		return
	}

	items := h.store.Search(req.Query, req.Limit)
	results := make([]*KnowledgeItemResponse, len(items))
	for i, item := range items {
		results[i] = &KnowledgeItemResponse{
			ID:           item.ID,
			Question:     item.Question,
			Answer:       item.Answer,
			Category:     item.Category,
			Organization: item.Organization,
			Tags:         item.Tags,
			Priority:     string(item.Priority),
			Region:       item.Region,
		}
	}

	api.Success(w, http.StatusOK, KnowledgeSearchResponse{Results: results})
}

// SearchResources returns ranked resource items for a query.
func (h *SearchHandler) SearchResources(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSearchRequest(w, r)
	if !ok {
		return
	}

	items := h.store.SearchResources(req.Query, req.Limit)
	results := make([]*ResourceItemResponse, len(items))
	for i, item := range items {
		results[i] = &ResourceItemResponse{
			ID:           item.ID,
			Name:         item.Name,
			Description:  item.Description,
			Category:     item.Category,
			Organization: item.Organization,
			Cost:         string(item.Cost),
			Region:       item.Region,
			Specialties:  item.Specialties,
			Website:      item.Website,
		}
	}

	api.Success(w, http.StatusOK, ResourceSearchResponse{Results: results})
}

// IndexStats reports the similarity index document count and last update.
func (h *SearchHandler) IndexStats(w http.ResponseWriter, r *http.Request) {
	stats := h.index.Stats()

	resp := IndexStatsResponse{Count: stats.Count}
	if !stats.LastUpdated.IsZero() {
		resp.LastUpdated = stats.LastUpdated.UTC().Format(time.RFC3339Nano)
	}

	api.Success(w, http.StatusOK, resp)
}

func decodeSearchRequest(w http.ResponseWriter, r *http.Request) (SearchRequest, bool) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return req, false
	}
	if req.Query == "" {
		api.Error(w, http.StatusBadRequest, "query is required")
		return req, false
	}
	return req, true
}
