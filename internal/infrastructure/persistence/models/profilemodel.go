package models

// ProfileModel persists identity bindings. The composite unique index on
// (ticket_code, full_name_norm) is the arbiter for concurrent customer
// logins with the same credential pair.
type ProfileModel struct {
	ID             uint    `gorm:"primaryKey"`
	Subject        string  `gorm:"uniqueIndex;size:190;not null"`
	OrganizationID *uint   `gorm:"index"`
	FullName       string  `gorm:"size:120;not null"`
	FullNameNorm   string  `gorm:"size:120;not null;uniqueIndex:idx_ticket_credential,priority:2"`
	Email          string  `gorm:"size:190;index"`
	Role           string  `gorm:"size:20;not null;index"`
	IsActive       bool    `gorm:"not null;default:true"`
	TicketCode     *string `gorm:"size:20;uniqueIndex:idx_ticket_credential,priority:1"`
	CreatedAt      int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}
