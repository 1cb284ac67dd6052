package domain

import (
	"cmp"
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"feedback_widget/pkg/errcodes"
)

// Kind определяет, каким HTTP статусом ошибка уйдёт клиенту.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidArgument
	KindNotFound
	KindConflict
)

// AppError представляет доменную ошибку приложения.
type AppError struct {
	Kind    Kind
	Code    failure.ErrorCode
	Message string
	cause   error
}

// Error реализует интерфейс error.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}

	return e.Message
}

// Unwrap возвращает обёрнутую ошибку для errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// NewError создаёт новую доменную ошибку.
func NewError(kind Kind, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

// WrapError оборачивает существующую ошибку как внутреннюю.
func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Code:    code,
		Message: message,
		cause:   err,
	}
}

// IsAppError проверяет, является ли ошибка доменной.
func IsAppError(err error) bool {
	var appErr *AppError

	return errors.As(err, &appErr)
}

// GetCode извлекает код ошибки, если это AppError.
func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}

	return "", false
}

// IsKind сообщает, что в цепочке есть AppError данного вида.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError

	return errors.As(err, &appErr) && appErr.Kind == kind
}

// ToFailure переводит доменную ошибку в ошибку транспорта. Остальные ошибки
// возвращаются как есть.
func ToFailure(err error) error {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return err
	}

	opts := []failure.Option{
		failure.WithCode(appErr.Code),
		failure.WithDescription(appErr.Message),
	}

	switch appErr.Kind {
	case KindInvalidArgument:
		return failure.NewInvalidArgumentErrorFromError(err, opts...)
	case KindNotFound:
		return failure.NewNotFoundErrorFromError(err, opts...)
	case KindConflict:
		return failure.NewConflictErrorFromError(err, opts...)
	default:
		return failure.NewInternalServerErrorFromError(err, failure.WithCode(cmp.Or(appErr.Code, errcodes.InternalServerError)))
	}
}
