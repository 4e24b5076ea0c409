package models

// Category and JobType are lookup tables. Only active rows are offered
// for selection; existing jobs keep their references even after a row
// is deactivated.

type Category struct {
	BaseModel
	Name   string `gorm:"not null" json:"name"`
	Status bool   `gorm:"default:true" json:"status"`
}

type JobType struct {
	BaseModel
	Name   string `gorm:"not null" json:"name"`
	Status bool   `gorm:"default:true" json:"status"`
}
