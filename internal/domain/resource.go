package domain

import (
	"fmt"
	"time"
)

// Cost represents the cost model of a directory resource
type Cost string

const (
	CostFree         Cost = "free"
	CostPaid         Cost = "paid"
	CostSlidingScale Cost = "sliding-scale"
	CostVaries       Cost = "varies"
)

// ResourceItem represents a directory entry for a support organization or
// service.
type ResourceItem struct {
	ID                 string
	Name               string
	Description        string
	Category           string
	Organization       string
	ContactEmail       string
	Website            string
	Cost               Cost
	TargetAudience     []string
	Accessibility      []string
	Region             string
	CulturalCompetency []string
	Specialties        []string
	ReferralProcess    string
	WaitingTime        string
	Active             bool
	LastUpdated        time.Time
}

// ValidateResourceItem validates a ResourceItem instance
func ValidateResourceItem(r *ResourceItem) error {
	if r == nil {
		return fmt.Errorf("resource item cannot be nil")
	}

	if r.ID == "" {
		return fmt.Errorf("resource item ID is required")
	}

	if r.Name == "" {
		return fmt.Errorf("resource item Name is required")
	}

	if r.Description == "" {
		return fmt.Errorf("resource item Description is required")
	}

	if !isValidCost(r.Cost) {
		return fmt.Errorf("resource item Cost is invalid: %s", r.Cost)
	}

	return nil
}

// isValidCost checks if a Cost is valid
func isValidCost(c Cost) bool {
	switch c {
	case CostFree, CostPaid, CostSlidingScale, CostVaries:
		return true
	}
	return false
}
