package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("geçersiz parametre")
	ErrUserNotFound      = errors.New("kullanıcı bulunamadı")
	ErrUsernameExist     = errors.New("bu kullanıcı adı zaten alınmış")
	ErrPasswordIncorrect = errors.New("kullanıcı adı veya şifre hatalı")
	ErrIssueNotFound     = errors.New("sorun kaydı bulunamadı")
	ErrCommentNotFound   = errors.New("yorum bulunamadı")
	ErrUpdateNotFound    = errors.New("gelişme kaydı bulunamadı")
	ErrVehicleNotFound   = errors.New("araç bulunamadı")
	ErrNotOwner          = errors.New("bu işlem için yetkiniz yok")
	ErrStatusInvalid     = errors.New("geçersiz durum değeri")
	ErrFileNotSupported  = errors.New("desteklenmeyen dosya türü")
	ErrFileTooLarge      = errors.New("dosya boyutu sınırı aşıldı")
	ErrTooManyFiles      = errors.New("dosya sayısı sınırı aşıldı")
	ErrContentTooLong    = errors.New("içerik çok uzun")
	UnauthorizedError    = errors.New("oturum açmanız gerekiyor")
	UnExpectedError      = errors.New("sistem hatası, lütfen daha sonra tekrar deneyin")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrUserNotFound:      NotFound,
	ErrUsernameExist:     Conflict,
	ErrPasswordIncorrect: Unauthorized,
	ErrIssueNotFound:     NotFound,
	ErrCommentNotFound:   NotFound,
	ErrUpdateNotFound:    NotFound,
	ErrVehicleNotFound:   NotFound,
	ErrNotOwner:          Forbidden,
	ErrStatusInvalid:     BadRequest,
	ErrFileNotSupported:  BadRequest,
	ErrFileTooLarge:      BadRequest,
	ErrTooManyFiles:      BadRequest,
	ErrContentTooLong:    BadRequest,
	UnauthorizedError:    Unauthorized,
	UnExpectedError:      InternalServerError,
}
