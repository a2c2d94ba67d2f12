package Models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

type BloodRequest struct {
	gorm.Model
	Reference    string `json:"reference" gorm:"size:36;not null;unique"`
	PatientName  string `json:"patient_name" gorm:"size:150;not null"`
	HospitalName string `json:"hospital_name" gorm:"size:200;not null"`
	BloodGroup   string `json:"blood_group" gorm:"size:5;not null"`
	Units        uint   `json:"units" gorm:"not null"`
	Phone        string `json:"phone" gorm:"size:20;not null"`
	Status       string `json:"status" gorm:"size:20;not null;default:Pending"`
}

// SubmitRequest validates and persists a new request in the Pending state.
// The generated reference lets the requester poll status without an account.
func SubmitRequest(request *BloodRequest) error {
	if request.Units == 0 {
		return ErrInvalidUnits
	}
	if !IsValidBloodGroup(request.BloodGroup) {
		return ErrInvalidBloodGroup
	}

	request.Status = StatusPending
	request.Reference = uuid.NewString()
	return DB.Create(request).Error
}

// DecideRequest moves a Pending request to Approved or Rejected. Approval
// subtracts the requested units from stock; the decrement and the status
// change commit together or not at all, and a short stock leaves the request
// Pending. Terminal requests cannot be decided again.
//
// Returns the updated request and, on approval, the updated stock row.
func DecideRequest(requestID uint, action string) (BloodRequest, *BloodStock, error) {
	if action != ActionApprove && action != ActionReject {
		return BloodRequest{}, nil, ErrInvalidAction
	}

	tx := DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var request BloodRequest
	if err := tx.First(&request, requestID).Error; err != nil {
		tx.Rollback()
		return BloodRequest{}, nil, err
	}

	if request.Status != StatusPending {
		tx.Rollback()
		return BloodRequest{}, nil, ErrInvalidAction
	}

	var stock *BloodStock
	newStatus := StatusRejected
	if action == ActionApprove {
		updated, err := DecrementStockIfSufficient(tx, request.BloodGroup, request.Units)
		if err != nil {
			tx.Rollback()
			return BloodRequest{}, nil, err
		}
		stock = &updated
		newStatus = StatusApproved
	}

	// Guarded on status so a concurrent decision on the same request loses
	// here and the rollback undoes its decrement.
	result := tx.Model(&BloodRequest{}).
		Where("id = ? AND status = ?", request.ID, StatusPending).
		Update("status", newStatus)
	if result.Error != nil {
		tx.Rollback()
		return BloodRequest{}, nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return BloodRequest{}, nil, ErrInvalidAction
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return BloodRequest{}, nil, err
	}

	request.Status = newStatus
	return request, stock, nil
}

// RecentRequests returns the n most recently submitted requests, newest first.
func RecentRequests(n int) ([]BloodRequest, error) {
	var requests []BloodRequest
	if err := DB.Model(&BloodRequest{}).Order("created_at desc, id desc").Limit(n).Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func FindRequestByReference(reference string) (BloodRequest, error) {
	var request BloodRequest
	err := DB.Where("reference = ?", reference).First(&request).Error
	return request, err
}

func CountRequests() (int64, error) {
	var count int64
	err := DB.Model(&BloodRequest{}).Count(&count).Error
	return count, err
}

func CountRequestsByStatus(status string) (int64, error) {
	var count int64
	err := DB.Model(&BloodRequest{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
