package models

type Dish struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Available   bool    `json:"available"`
	CategoryID  string  `gorm:"index" json:"categoryId"`

	// Joined from the category at read time, never stored.
	CategoryName string `gorm:"-" json:"categoryName"`
}
