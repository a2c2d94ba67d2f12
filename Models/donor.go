package Models

import (
	"time"

	"gorm.io/gorm"
)

// Donor records are immutable once created, there is no edit or delete flow.
type Donor struct {
	gorm.Model
	FullName    string     `json:"full_name" gorm:"size:150;not null"`
	Age         int        `json:"age" gorm:"not null"`
	Gender      string     `json:"gender" gorm:"size:10;not null"`
	BloodGroup  string     `json:"blood_group" gorm:"size:5;not null"`
	Phone       string     `json:"phone" gorm:"size:20;not null"`
	Email       string     `json:"email" gorm:"size:120"`
	City        string     `json:"city" gorm:"size:100;not null"`
	LastDonated *time.Time `json:"last_donated" gorm:"default:null"`
}

// RegisterDonor persists the donor and adds one unit to their blood group's
// stock in the same transaction. Every registration counts as exactly one
// unit regardless of age or last donation date.
func RegisterDonor(donor *Donor) error {
	if donor.Age < 0 {
		return ErrInvalidAge
	}
	if !IsValidBloodGroup(donor.BloodGroup) {
		return ErrInvalidBloodGroup
	}

	tx := DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(donor).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := EnsureAndIncrementStock(tx, donor.BloodGroup, 1); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// RecentDonors returns the n most recently registered donors, newest first.
func RecentDonors(n int) ([]Donor, error) {
	var donors []Donor
	if err := DB.Model(&Donor{}).Order("created_at desc, id desc").Limit(n).Find(&donors).Error; err != nil {
		return nil, err
	}
	return donors, nil
}

func CountDonors() (int64, error) {
	var count int64
	err := DB.Model(&Donor{}).Count(&count).Error
	return count, err
}
