package models

import "errors"

var (
	// ErrInvalidInput - некорректные координаты или значение контекста, отклоняется вызывающему
	ErrInvalidInput = errors.New("invalid input")
	// ErrDataUnavailable - набор данных отсутствует или поврежден
	ErrDataUnavailable = errors.New("incident data unavailable")
	// ErrLookupFailed - внешний провайдер адреса/погоды не ответил
	ErrLookupFailed = errors.New("lookup failed")
)
