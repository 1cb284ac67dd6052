package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	Unauthorized        failure.ErrorCode = "Unauthorized"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	InvalidPaging       failure.ErrorCode = "InvalidPaging"

	// Виджет
	InvalidFeedbackLink   failure.ErrorCode = "InvalidFeedbackLink"  // В ссылке нет organizationId или locationId
	InvalidRating         failure.ErrorCode = "InvalidRating"        // Оценка вне 1..5
	InvalidComment        failure.ErrorCode = "InvalidComment"       // Слишком длинный комментарий
	InvalidSessionID      failure.ErrorCode = "InvalidSessionID"     // Мусор вместо xid
	InvalidSessionState   failure.ErrorCode = "InvalidSessionState"  // Действие не разрешено в текущем состоянии
	SessionNotFound       failure.ErrorCode = "SessionNotFound"      // Сессия истекла или закрыта
	RatingLocked          failure.ErrorCode = "RatingLocked"         // После 5 звёзд оценку не меняют
	SubmissionInFlight    failure.ErrorCode = "SubmissionInFlight"   // Запись уже идёт
	RatingRequired        failure.ErrorCode = "RatingRequired"       // Submit без выбранной оценки
	FeedbackSubmitFailed  failure.ErrorCode = "FeedbackSubmitFailed" // Ошибка записи в БД
	OrganizationNotFound  failure.ErrorCode = "OrganizationNotFound"
	InvalidOrganizationID failure.ErrorCode = "InvalidOrganizationID"
)
