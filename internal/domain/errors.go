package domain

import (
	"errors"
	"fmt"
)

// Базовые категории ошибок
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

// Ошибки сделок
var (
	ErrDealNotFound  = fmt.Errorf("deal %w", ErrNotFound)
	ErrClaimConflict = errors.New("deal is no longer available")
	ErrNotMerchant   = errors.New("user is not a merchant")
)

// Ошибки каталога реквизитов
var (
	ErrCountryNotFound      = fmt.Errorf("country %w", ErrNotFound)
	ErrRequisiteNotFound    = fmt.Errorf("requisite %w", ErrNotFound)
	ErrNoRequisiteAvailable = errors.New("no requisite available for bank")
)

// Ошибки пользователей
var (
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
	ErrNotApproved  = errors.New("user is not approved")
)

// ValidationError ошибка входных данных вызывающей стороны
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is позволяет сравнивать через errors.Is(err, ErrValidation)
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError создает новую ошибку валидации
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// StorageError ошибка хранилища файлов или транспорта
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ErrStatusUnchanged условное обновление не затронуло ни одной строки
var ErrStatusUnchanged = errors.New("deal status unchanged")
