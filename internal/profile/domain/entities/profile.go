// Package entities содержит доменные сущности профиля пользователя.
package entities

import "errors"

// Ошибки домена профиля.
var (
	ErrEmptyUserID     = errors.New("user ID cannot be empty")
	ErrEmptyProfile    = errors.New("profile is not initialized")
	ErrProfileNotFound = errors.New("profile not found")
)

// UserProfile - неизменяемое значение профиля пользователя.
// Сравнивается структурно, нулевое значение означает "профиль не инициализирован".
type UserProfile struct {
	ID       string
	FullName string
	ImageURL string
}

// IsZero сообщает, что профиль не инициализирован (все поля пустые).
func (p UserProfile) IsZero() bool {
	return p == UserProfile{}
}
