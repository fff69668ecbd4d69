package entity

import (
	"time"

	"gorm.io/gorm"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

type User struct {
	gorm.Model
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `json:"-"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	PhoneNumber string    `json:"phoneNumber"`
	BirthDate   time.Time `json:"birthDate"`
	Gender      Gender    `json:"gender"`

	// Relations — preload only when needed
	Basket  *Basket  `gorm:"foreignKey:UserID" json:"-"`
	Orders  []Order  `json:"-"`
	Ratings []Rating `json:"-"`
}
