package models

import "time"

// AppSettings is the single global configuration record. There is exactly
// one row; updates merge onto it in place.
type AppSettings struct {
	ID                uint    `gorm:"primaryKey" json:"-"`
	OpeningTime       string  `json:"openingTime"` // "HH:MM"
	ClosingTime       string  `json:"closingTime"` // "HH:MM"
	IsStoreOpenManual bool    `json:"isStoreOpenManual"`
	DeliveryFeeFixed  float64 `json:"deliveryFeeFixed"`
}

// IsOpenAt reports whether the store accepts orders at t: the manual switch
// must be on and t must fall inside the opening hours. A closing time before
// the opening time means the window crosses midnight.
func (s AppSettings) IsOpenAt(t time.Time) bool {
	if !s.IsStoreOpenManual {
		return false
	}
	open, errOpen := time.Parse("15:04", s.OpeningTime)
	close, errClose := time.Parse("15:04", s.ClosingTime)
	if errOpen != nil || errClose != nil {
		return true
	}
	minute := t.Hour()*60 + t.Minute()
	openMinute := open.Hour()*60 + open.Minute()
	closeMinute := close.Hour()*60 + close.Minute()
	if openMinute <= closeMinute {
		return minute >= openMinute && minute < closeMinute
	}
	return minute >= openMinute || minute < closeMinute
}
