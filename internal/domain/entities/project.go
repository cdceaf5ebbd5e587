package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerrors "github.com/LancemDev/greenconnect-test/internal/domain/errors"
)

// ProjectType represents the sequestration project category
type ProjectType string

const (
	ProjectTypeForestry     ProjectType = "forestry"
	ProjectTypeAgriculture  ProjectType = "agriculture"
	ProjectTypeAgroforestry ProjectType = "agroforestry"
	ProjectTypeWetland      ProjectType = "wetland"
	ProjectTypeOther        ProjectType = "other"
)

// AreaUnit represents the unit a project area is measured in
type AreaUnit string

const (
	AreaUnitHectares AreaUnit = "hectares"
	AreaUnitAcres    AreaUnit = "acres"
)

// ProjectStatus represents a project's lifecycle state
type ProjectStatus string

const (
	ProjectStatusRegistered ProjectStatus = "registered"
	ProjectStatusAssessing  ProjectStatus = "assessing"
	ProjectStatusVerified   ProjectStatus = "verified"
	ProjectStatusActive     ProjectStatus = "active"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// lifecycle order; transitions only advance one step at a time
var projectStatusSuccessor = map[ProjectStatus]ProjectStatus{
	ProjectStatusRegistered: ProjectStatusAssessing,
	ProjectStatusAssessing:  ProjectStatusVerified,
	ProjectStatusVerified:   ProjectStatusActive,
	ProjectStatusActive:     ProjectStatusCompleted,
}

// CanTransitionTo reports whether next is the legal successor state.
func (s ProjectStatus) CanTransitionTo(next ProjectStatus) bool {
	return projectStatusSuccessor[s] == next
}

// Project represents a land-based carbon sequestration project
type Project struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"userId"`
	Name            string          `json:"name"`
	ProjectType     ProjectType     `json:"projectType"`
	LocationLat     decimal.Decimal `json:"locationLat"`
	LocationLng     decimal.Decimal `json:"locationLng"`
	AreaSize        decimal.Decimal `json:"areaSize"`
	AreaUnit        AreaUnit        `json:"areaUnit"`
	Description     string          `json:"description"`
	StartDate       time.Time       `json:"startDate"`
	Status          ProjectStatus   `json:"status"`
	BoundaryGeoJSON string          `json:"boundaryGeojson,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// TransitionTo advances the project lifecycle, rejecting non-adjacent moves.
func (p *Project) TransitionTo(next ProjectStatus) error {
	if !p.Status.CanTransitionTo(next) {
		return fmt.Errorf("project %s: %s -> %s: %w", p.ID, p.Status, next, domainerrors.ErrInvalidState)
	}
	p.Status = next
	return nil
}

// RegisterProjectInput represents input for project registration
type RegisterProjectInput struct {
	Name            string `json:"name" binding:"required,max=200"`
	ProjectType     string `json:"projectType" binding:"required,oneof=forestry agriculture agroforestry wetland other"`
	LocationLat     string `json:"locationLat" binding:"required"`
	LocationLng     string `json:"locationLng" binding:"required"`
	AreaSize        string `json:"areaSize" binding:"required"`
	AreaUnit        string `json:"areaUnit" binding:"required,oneof=hectares acres"`
	Description     string `json:"description"`
	StartDate       string `json:"startDate" binding:"required"`
	BoundaryGeoJSON string `json:"boundaryGeojson"`
}
