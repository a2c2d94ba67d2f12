package Models

import "errors"

// Expected business errors. Callers match them with errors.Is; missing rows
// surface as gorm.ErrRecordNotFound.
var (
	ErrInvalidBloodGroup = errors.New("unrecognized blood group")
	ErrInvalidAge        = errors.New("age must be a non-negative number")
	ErrInvalidUnits      = errors.New("units must be a positive number")
	ErrInsufficientStock = errors.New("not enough stock for this blood group")
	ErrInvalidAction     = errors.New("invalid action for this request")
)
