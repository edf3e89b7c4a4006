package models

import "gorm.io/gorm"

// Review is customer feedback on the restaurant or a specific menu item.
// Only approved reviews are served publicly.
type Review struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID     string `json:"user_id" gorm:"index;type:varchar(36)"`
	MenuItemID string `json:"menu_item_id" gorm:"type:varchar(36)" validate:"omitempty,uuid"`
	Rating     int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment    string `json:"comment" gorm:"type:varchar(1000)" validate:"omitempty,max=1000"`
	Approved   bool   `json:"approved" gorm:"default:false"`
	gorm.Model
}

// ContentBlock is an admin-managed piece of home-page content, addressed by a
// stable key (e.g. "hero", "about", "hours").
type ContentBlock struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Key      string `json:"key" gorm:"uniqueIndex;type:varchar(50)" validate:"required,min=2,max=50"`
	Title    string `json:"title" gorm:"type:varchar(200)" validate:"omitempty,max=200"`
	Body     string `json:"body" gorm:"type:varchar(5000)" validate:"omitempty,max=5000"`
	ImageURL string `json:"image_url" gorm:"type:varchar(255)" validate:"omitempty,max=255"`
	gorm.Model
}

// PaymentMethod is an admin-managed payment option offered at checkout.
type PaymentMethod struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name         string `json:"name" gorm:"uniqueIndex;type:varchar(50)" validate:"required,min=2,max=50"`
	Instructions string `json:"instructions" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Active       bool   `json:"active" gorm:"default:true"`
	gorm.Model
}
