package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid            = errors.New("invalid parameters")
	ErrPostNotFound            = errors.New("post not found")
	ErrUserNotFound            = errors.New("user not found")
	ErrThemeNotFound           = errors.New("theme not found")
	ErrEmojiRequired           = errors.New("emoji is required")
	ErrMessageRequired         = errors.New("message is required")
	ErrUserUsernameExist       = errors.New("username already taken")
	ErrPasswordIncorrect       = errors.New("invalid credentials")
	ErrMissingLoginCredentials = errors.New("missing login credentials")
	ErrFileNotSupported        = errors.New("unsupported file type")
	ErrActionDuplicate         = errors.New("duplicate action")
	UnauthorizedError          = errors.New("permission denied")
	UnExpectedError            = errors.New("unexpected error, please retry later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:            BadRequest,
	ErrPostNotFound:            NotFound,
	ErrUserNotFound:            NotFound,
	ErrThemeNotFound:           NotFound,
	ErrEmojiRequired:           BadRequest,
	ErrMessageRequired:         BadRequest,
	ErrUserUsernameExist:       BadRequest,
	ErrPasswordIncorrect:       Unauthorized,
	ErrMissingLoginCredentials: Unauthorized,
	ErrFileNotSupported:        BadRequest,
	ErrActionDuplicate:         BadRequest,
	UnauthorizedError:          Forbidden,
	UnExpectedError:            InternalServerError,
}
