package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("resource not found")

// InvalidConfigurationError - ошибка вызывающей стороны (неверные параметры),
// а не состояние данных; такие ошибки не глотаем и не приводим к пустому результату
type InvalidConfigurationError struct {
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}

func NewInvalidConfiguration(format string, args ...interface{}) error {
	return &InvalidConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

func IsInvalidConfiguration(err error) bool {
	var target *InvalidConfigurationError
	return errors.As(err, &target)
}
