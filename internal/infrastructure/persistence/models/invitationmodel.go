package models

type InvitationModel struct {
	ID             uint   `gorm:"primaryKey"`
	OrganizationID uint   `gorm:"not null;index"`
	Email          string `gorm:"size:190;not null;index"`
	Role           string `gorm:"size:20;not null"`
	InvitedBy      uint   `gorm:"not null"`
	Token          string `gorm:"uniqueIndex;size:20;not null"`
	Status         string `gorm:"size:20;not null;index"`
	ExpiresAt      int64  `gorm:"not null"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
}

func (InvitationModel) TableName() string {
	return "invitations"
}
