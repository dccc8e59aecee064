package entity

import "time"

// Project is an optional grouping a shift can be linked to
type Project struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	IsActive  bool      `gorm:"not null;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Shifts []Shift `gorm:"foreignKey:ProjectID" json:"shifts,omitempty"`
}

func (Project) TableName() string {
	return "projects"
}
