package entities

import (
	"errors"
	"fmt"
)

// EndpointStatus - статус ответа удаленного сервиса профилей.
type EndpointStatus int

// Статусы ответа удаленного сервиса профилей.
const (
	StatusSuccess EndpointStatus = iota
	StatusAuthError
	StatusServerError
	StatusGeneralError
)

func (s EndpointStatus) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusAuthError:
		return "auth_error"
	case StatusServerError:
		return "server_error"
	case StatusGeneralError:
		return "general_error"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// EndpointResult - результат запроса к сервису профилей.
// Profile заполнен только при StatusSuccess.
type EndpointResult struct {
	Status  EndpointStatus
	Profile UserProfile
}

// ErrNetworkFault - запрос не удалось выполнить на транспортном уровне.
var ErrNetworkFault = errors.New("network fault")

// NetworkError описывает транспортный сбой при обращении к сервису профилей.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, ErrNetworkFault)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, ErrNetworkFault, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is позволяет сопоставлять NetworkError с ErrNetworkFault через errors.Is.
func (e *NetworkError) Is(target error) bool {
	return target == ErrNetworkFault
}

// NewNetworkError оборачивает транспортную ошибку.
func NewNetworkError(op string, err error) *NetworkError {
	return &NetworkError{Op: op, Err: err}
}

// UseCaseResult - итог сценария получения профиля для вызывающей стороны.
type UseCaseResult int

// Итоги сценария получения профиля.
const (
	ResultSuccess UseCaseResult = iota
	ResultFailure
	ResultNetworkError
)

func (r UseCaseResult) String() string {
	switch r {
	case ResultSuccess:
		return "success"
	case ResultFailure:
		return "failure"
	case ResultNetworkError:
		return "network_error"
	default:
		return fmt.Sprintf("unknown(%d)", int(r))
	}
}

// Retryable сообщает, имеет ли смысл предлагать повтор запроса.
func (r UseCaseResult) Retryable() bool {
	return r == ResultNetworkError
}
