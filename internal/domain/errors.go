package domain

import "errors"

var (
	// ErrRoomFull возвращается, когда комната уже заполнена согласно своему типу
	ErrRoomFull = errors.New("domain: room is full")
)
