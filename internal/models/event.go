package models

import (
	"gorm.io/gorm"
)

type Event struct {
	gorm.Model
	Name     string    `gorm:"not null" json:"name"`
	Artist   string    `json:"artist"`
	Location string    `json:"location"`
	Date     string    `json:"date"`
	Time     string    `json:"time"`
	ImageURL string    `json:"image_url"`
	Bookings []Booking `json:"-"`
}
