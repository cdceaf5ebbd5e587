package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is the persistence model for projects
type Project struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:varchar(200);not null"`
	ProjectType     string    `gorm:"type:varchar(20);not null"`
	LocationLat     string    `gorm:"type:decimal(10,8);not null"`
	LocationLng     string    `gorm:"type:decimal(11,8);not null"`
	AreaSize        string    `gorm:"type:decimal(10,2);not null"`
	AreaUnit        string    `gorm:"type:varchar(10);not null"`
	Description     string    `gorm:"type:text"`
	StartDate       time.Time `gorm:"not null"`
	Status          string    `gorm:"type:varchar(20);default:'registered'"`
	BoundaryGeoJSON string    `gorm:"column:boundary_geojson;type:json"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name
func (Project) TableName() string {
	return "projects"
}
