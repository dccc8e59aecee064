package entity

import "time"

// Analyst is a person eligible to be assigned shifts
type Analyst struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      *string   `gorm:"type:varchar(255)" json:"name,omitempty"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	IsActive  bool      `gorm:"not null;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Shifts []Shift `gorm:"foreignKey:AnalystID" json:"shifts,omitempty"`
}

func (Analyst) TableName() string {
	return "analysts"
}
