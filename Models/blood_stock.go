package Models

import (
	"errors"

	"gorm.io/gorm"
)

type BloodStock struct {
	gorm.Model
	BloodGroup     string `json:"blood_group" gorm:"size:5;not null;unique"`
	UnitsAvailable uint   `json:"units_available" gorm:"not null;default:0"`
}

// EnsureAndIncrementStock adds amount units to the stock row for bloodGroup,
// creating the row on first use. Runs on the caller's transaction so the
// increment commits or rolls back together with whatever triggered it.
func EnsureAndIncrementStock(tx *gorm.DB, bloodGroup string, amount uint) error {
	var stock BloodStock
	err := tx.Where("blood_group = ?", bloodGroup).First(&stock).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		stock = BloodStock{BloodGroup: bloodGroup, UnitsAvailable: amount}
		return tx.Create(&stock).Error
	}
	if err != nil {
		return err
	}
	return tx.Model(&BloodStock{}).Where("blood_group = ?", bloodGroup).
		Update("units_available", gorm.Expr("units_available + ?", amount)).Error
}

// DecrementStockIfSufficient subtracts amount units from bloodGroup's stock
// only when enough units are on hand. Check and subtraction are one guarded
// UPDATE, so two concurrent approvals can never jointly over-draw a group.
// Returns ErrInsufficientStock when the row is missing or short.
func DecrementStockIfSufficient(tx *gorm.DB, bloodGroup string, amount uint) (BloodStock, error) {
	result := tx.Model(&BloodStock{}).
		Where("blood_group = ? AND units_available >= ?", bloodGroup, amount).
		Update("units_available", gorm.Expr("units_available - ?", amount))
	if result.Error != nil {
		return BloodStock{}, result.Error
	}
	if result.RowsAffected == 0 {
		return BloodStock{}, ErrInsufficientStock
	}

	var stock BloodStock
	if err := tx.Where("blood_group = ?", bloodGroup).First(&stock).Error; err != nil {
		return BloodStock{}, err
	}
	return stock, nil
}

// FetchBloodStock returns every stock row ordered by blood group ascending.
func FetchBloodStock() ([]BloodStock, error) {
	var stock []BloodStock
	if err := DB.Model(&BloodStock{}).Order("blood_group asc").Find(&stock).Error; err != nil {
		return nil, err
	}
	return stock, nil
}
