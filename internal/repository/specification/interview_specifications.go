package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedByUser filters rows by owning user.
type OwnedByUser struct {
	UserID uuid.UUID
}

func (s OwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// OwnedByOrganization filters rows by owning organization.
type OwnedByOrganization struct {
	OrganizationID uuid.UUID
}

func (s OwnedByOrganization) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("organization_id = ?", s.OrganizationID)
}

// ForSession filters rows attached to a session (content units, citations, jobs).
type ForSession struct {
	SessionID uuid.UUID
}

func (s ForSession) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// WithStatus filters by lifecycle status.
type WithStatus struct {
	Status string
}

func (s WithStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// RankedByRelevance orders content units by score descending, ties broken by
// the original sort order.
type RankedByRelevance struct{}

func (s RankedByRelevance) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("relevance_score DESC, sort_order ASC")
}
