package lifecycle

import "errors"

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderConflict         = errors.New("order code already exists")
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderCode      = errors.New("invalid order code")
	ErrInvalidPhone          = errors.New("phone must be 10 digits")
	ErrInvalidPincode        = errors.New("pincode must be 6 digits")
	ErrAssignmentOnly        = errors.New("driver assignment is not requestable directly")
	ErrMissingSlot           = errors.New("slot date is required")
	ErrDriverUnspecified     = errors.New("driver id is required for assignment")
)
