package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidCredits             = 4001
	CodeSelfRecognition            = 4002
	CodeInvalidUserID              = 4003
	CodeInsufficientSendBalance    = 4004
	CodeMonthlyLimitExceeded       = 4005
	CodeInsufficientReceivedCredit = 4006
	CodeAlreadyEndorsed            = 4007
	CodeDuplicateEmail             = 4008
	CodeInvalidRequest             = 4009
	CodeInvalidCredentials         = 4010
	CodeUnauthorized               = 4011
	CodeAccountNotFound            = 4040
	CodeRecognitionNotFound        = 4041

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidCredits is returned when the credit amount is not a positive integer
	ErrInvalidCredits = errors.New("credits must be a positive integer")

	// ErrSelfRecognition is returned when a user tries to send credits to themselves
	ErrSelfRecognition = errors.New("cannot send credits to yourself")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrMissingReceiver is returned when a recognition has no receiver
	ErrMissingReceiver = errors.New("receiver is required")

	// ErrInsufficientSendBalance is returned when the sender's monthly send balance
	// does not cover the requested credits
	ErrInsufficientSendBalance = errors.New("not enough sending credits available this month")

	// ErrMonthlyLimitExceeded is returned when a send would push the sender past
	// the hard monthly cap, regardless of carry-forward
	ErrMonthlyLimitExceeded = errors.New("monthly sending limit exceeded")

	// ErrInsufficientReceivedBalance is returned when a redemption exceeds the
	// user's redeemable balance
	ErrInsufficientReceivedBalance = errors.New("cannot redeem more credits than available balance")

	// ErrAlreadyEndorsed is returned when an endorser endorses the same recognition twice
	ErrAlreadyEndorsed = errors.New("recognition already endorsed by this user")

	// ErrDuplicateEmail is returned when registering with an email that is taken
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned on failed login attempts
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a bearer token fails verification
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned when a bearer token has expired
	ErrTokenExpired = errors.New("token expired")

	// ErrAccountNotFound is returned when the requested account doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrRecognitionNotFound is returned when the requested recognition doesn't exist
	ErrRecognitionNotFound = errors.New("recognition not found")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCredits):
		return CodeInvalidCredits
	case errors.Is(err, ErrSelfRecognition):
		return CodeSelfRecognition
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInsufficientSendBalance):
		return CodeInsufficientSendBalance
	case errors.Is(err, ErrMonthlyLimitExceeded):
		return CodeMonthlyLimitExceeded
	case errors.Is(err, ErrInsufficientReceivedBalance):
		return CodeInsufficientReceivedCredit
	case errors.Is(err, ErrAlreadyEndorsed):
		return CodeAlreadyEndorsed
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrTokenExpired):
		return CodeUnauthorized
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrRecognitionNotFound):
		return CodeRecognitionNotFound
	case errors.Is(err, ErrMissingReceiver), errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	default:
		return CodeInternalServer
	}
}

// InsufficientSendBalanceError provides detailed error information when the
// sender cannot cover the requested credits
type InsufficientSendBalanceError struct {
	UserID    uint64
	Requested int
	Available int
}

// Error implements the error interface
func (e *InsufficientSendBalanceError) Error() string {
	return fmt.Sprintf("insufficient send balance for user %d: required %d, available %d",
		e.UserID, e.Requested, e.Available)
}

// Is checks if the target error is an ErrInsufficientSendBalance
func (e *InsufficientSendBalanceError) Is(target error) bool {
	return target == ErrInsufficientSendBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientSendBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_send_balance",
		"user_id":    e.UserID,
		"requested":  e.Requested,
		"available":  e.Available,
		"error_code": CodeInsufficientSendBalance,
	}
}

// NewInsufficientSendBalanceError creates a new detailed insufficient send balance error
func NewInsufficientSendBalanceError(userID uint64, requested, available int) error {
	return &InsufficientSendBalanceError{
		UserID:    userID,
		Requested: requested,
		Available: available,
	}
}

// MonthlyLimitError provides detailed error information when a send would
// exceed the hard monthly cap
type MonthlyLimitError struct {
	UserID      uint64
	MonthlySent int
	Requested   int
	Limit       int
}

// Error implements the error interface
func (e *MonthlyLimitError) Error() string {
	return fmt.Sprintf("monthly limit exceeded for user %d: sent %d, requested %d, limit %d",
		e.UserID, e.MonthlySent, e.Requested, e.Limit)
}

// Is checks if the target error is an ErrMonthlyLimitExceeded
func (e *MonthlyLimitError) Is(target error) bool {
	return target == ErrMonthlyLimitExceeded
}

// LogFields returns a map of fields for structured logging
func (e *MonthlyLimitError) LogFields() map[string]any {
	return map[string]any{
		"error_type":   "monthly_limit_exceeded",
		"user_id":      e.UserID,
		"monthly_sent": e.MonthlySent,
		"requested":    e.Requested,
		"limit":        e.Limit,
		"error_code":   CodeMonthlyLimitExceeded,
	}
}

// NewMonthlyLimitError creates a new detailed monthly limit error
func NewMonthlyLimitError(userID uint64, monthlySent, requested, limit int) error {
	return &MonthlyLimitError{
		UserID:      userID,
		MonthlySent: monthlySent,
		Requested:   requested,
		Limit:       limit,
	}
}

// DuplicateEndorsementError provides detailed information about duplicate
// endorsement attempts detected by the storage uniqueness constraint
type DuplicateEndorsementError struct {
	RecognitionID string
	EndorserID    uint64
}

// Error implements the error interface
func (e *DuplicateEndorsementError) Error() string {
	return fmt.Sprintf("duplicate endorsement detected: recognition=%s endorser=%d",
		e.RecognitionID, e.EndorserID)
}

// Is checks if the target error is an ErrAlreadyEndorsed
func (e *DuplicateEndorsementError) Is(target error) bool {
	return target == ErrAlreadyEndorsed
}

// LogFields returns a map of fields for structured logging
func (e *DuplicateEndorsementError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "duplicate_endorsement",
		"recognition_id": e.RecognitionID,
		"endorser_id":    e.EndorserID,
		"error_code":     CodeAlreadyEndorsed,
	}
}

// NewDuplicateEndorsementError creates a new detailed duplicate endorsement error
func NewDuplicateEndorsementError(recognitionID string, endorserID uint64) error {
	return &DuplicateEndorsementError{
		RecognitionID: recognitionID,
		EndorserID:    endorserID,
	}
}

// IsValidationError checks if the error is a request validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidCredits) ||
		errors.Is(err, ErrSelfRecognition) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrMissingReceiver) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsBusinessRuleError checks if the error is a business-rule rejection that the
// caller can act on
func IsBusinessRuleError(err error) bool {
	return errors.Is(err, ErrInsufficientSendBalance) ||
		errors.Is(err, ErrMonthlyLimitExceeded) ||
		errors.Is(err, ErrInsufficientReceivedBalance) ||
		errors.Is(err, ErrAlreadyEndorsed) ||
		errors.Is(err, ErrDuplicateEmail)
}

// IsAuthError checks if the error means the caller is not authenticated
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrTokenExpired)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrRecognitionNotFound)
}

// IsAlreadyEndorsedError checks if the error is a duplicate endorsement error
func IsAlreadyEndorsedError(err error) bool {
	return errors.Is(err, ErrAlreadyEndorsed)
}
