package couriertask

import "errors"

var (
	ErrInvalidTaskID      = errors.New("invalid task id")
	ErrInvalidCourierID   = errors.New("invalid courier id")
	ErrTaskNotFound       = errors.New("courier task not found")
	ErrTaskAlreadyTaken   = errors.New("courier task already taken")
	ErrOrderAlreadyTasked = errors.New("order already has a courier task")
)
