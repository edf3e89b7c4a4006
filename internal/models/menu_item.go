package models

import "gorm.io/gorm"

// MenuItem represents a catalog entry on the menu.
// Stock is intentionally not tracked; availability is a flag set by staff.
type MenuItem struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string  `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Description string  `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" gorm:"type:varchar(50);index" validate:"required,max=50"`
	Available   bool    `json:"available" gorm:"default:true"`
	ImageURL    string  `json:"image_url" gorm:"type:varchar(255)" validate:"omitempty,max=255"`
	Sizes       string  `json:"sizes" gorm:"type:varchar(255)"`        // comma-separated variant list, e.g. "small,medium,large"
	MilkOptions string  `json:"milk_options" gorm:"type:varchar(255)"` // comma-separated, e.g. "whole,oat,almond"
	DietaryTags string  `json:"dietary_tags" gorm:"type:varchar(255)"` // comma-separated, e.g. "vegan,gluten-free"
	gorm.Model
}
