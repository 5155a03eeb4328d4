package domain

import (
	"fmt"
	"time"
)

// Priority represents how prominently a knowledge item ranks in search results
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the numeric rank used for search ordering (higher sorts first).
// Unknown priorities rank below low so malformed content never outranks
// curated entries.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// KnowledgeItem represents a curated question/answer pair in the community
// knowledge base.
type KnowledgeItem struct {
	ID              string
	Question        string
	Answer          string
	Category        string
	Organization    string
	Tags            []string
	Priority        Priority
	Region          string
	CulturalContext string
	Accessibility   string
	Active          bool
	LastUpdated     time.Time
}

// ValidateKnowledgeItem validates a KnowledgeItem instance
func ValidateKnowledgeItem(k *KnowledgeItem) error {
	if k == nil {
		return fmt.Errorf("knowledge item cannot be nil")
	}

	if k.ID == "" {
		return fmt.Errorf("knowledge item ID is required")
	}

	if k.Question == "" {
		return fmt.Errorf("knowledge item Question is required")
	}

	if k.Answer == "" {
		return fmt.Errorf("knowledge item Answer is required")
	}

	if !isValidPriority(k.Priority) {
		return fmt.Errorf("knowledge item Priority is invalid: %s", k.Priority)
	}

	return nil
}

// isValidPriority checks if a Priority is valid
func isValidPriority(p Priority) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}
