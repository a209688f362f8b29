package model

import "errors"

var (
	// ErrInvalidBalance - попытка установить отрицательный баланс
	ErrInvalidBalance = errors.New("invalid balance")
	// ErrInvalidCashbackRate - ставка кэшбэка вне диапазона [0, 1]
	ErrInvalidCashbackRate = errors.New("cashback rate must be between 0 and 1")
	// ErrNotVIP - кэшбэк доступен только VIP пользователям
	ErrNotVIP = errors.New("user is not vip")
	// ErrCloneUnsupported - пользователь не поддерживает клонирование
	ErrCloneUnsupported = errors.New("clone not supported")
)
