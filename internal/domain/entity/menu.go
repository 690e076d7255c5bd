package entity

import "time"

// Menu is one catalog entry shown on the cashier screen. Catalog editing and
// image upload are owned by the admin tooling; this API only reads the
// catalog, so hidden entries are simply filtered out of the cashier feed.
type Menu struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Price     int64     `gorm:"not null" json:"price"`
	Image     string    `gorm:"size:512" json:"image"`
	Visible   bool      `gorm:"not null;default:true" json:"visible"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the Menu model
func (Menu) TableName() string {
	return "menus"
}
