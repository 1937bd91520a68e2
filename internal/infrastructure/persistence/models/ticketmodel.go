package models

import "gorm.io/datatypes"

type TicketModel struct {
	ID             uint           `gorm:"primaryKey"`
	OrganizationID uint           `gorm:"not null;index"`
	Title          string         `gorm:"size:200;not null"`
	Description    string         `gorm:"type:text;not null"`
	Category       string         `gorm:"size:50;not null;default:'';index"`
	Status         string         `gorm:"size:20;not null;index"`
	Priority       string         `gorm:"size:20;not null;index"`
	CreatedBy      *uint          `gorm:"index"`
	AssignedTo     *uint          `gorm:"index"`
	TicketCode     *string        `gorm:"uniqueIndex;size:20"`
	Tags           datatypes.JSON `gorm:"type:json"`
	ResolvedAt     *int64
	ClosedAt       *int64
	CreatedAt      int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt      int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	AuthorID   *uint  `gorm:"index"`
	Content    string `gorm:"type:text;not null"`
	IsInternal bool   `gorm:"not null;default:false"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}

type ActivityModel struct {
	ID        uint    `gorm:"primaryKey"`
	TicketID  uint    `gorm:"not null;index"`
	ActorID   *uint   `gorm:"index"`
	Action    string  `gorm:"size:40;not null"`
	OldValue  *string `gorm:"size:200"`
	NewValue  *string `gorm:"size:200"`
	CreatedAt int64   `gorm:"autoCreateTime:milli;not null;index"`
}

func (ActivityModel) TableName() string {
	return "ticket_activities"
}
