package logger

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HeaderRequestID - заголовок, в котором идентификатор запроса передается между сервисами.
const HeaderRequestID = "X-Request-ID"

// MaxRequestIDLength - предельная длина идентификатора, принятого от клиента.
const MaxRequestIDLength = 128

type requestIDKey struct{}

// NewRequestIDContext кладет идентификатор запроса в контекст.
// Пустой или недопустимый идентификатор (см. SanitizeRequestID) заменяется сгенерированным.
func NewRequestIDContext(ctx context.Context, requestID string) context.Context {
	requestID, ok := SanitizeRequestID(requestID)
	if !ok {
		requestID = GenerateRequestID()
	}
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// EnsureRequestID возвращает контекст с идентификатором запроса и сам идентификатор.
// Уже установленный идентификатор сохраняется.
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if id, ok := GetRequestID(ctx); ok {
		return ctx, id
	}
	ctx = NewRequestIDContext(ctx, "")
	id, _ := GetRequestID(ctx)
	return ctx, id
}

// GetRequestID извлекает идентификатор запроса из контекста.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}

// GenerateRequestID генерирует новый идентификатор запроса.
func GenerateRequestID() string {
	return uuid.NewString()
}

// SanitizeRequestID обрезает пробелы и проверяет идентификатор из внешнего заголовка:
// непустой, не длиннее MaxRequestIDLength, только печатные ASCII символы.
func SanitizeRequestID(requestID string) (string, bool) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" || len(requestID) > MaxRequestIDLength {
		return "", false
	}
	for i := 0; i < len(requestID); i++ {
		if c := requestID[i]; c < 0x21 || c > 0x7e {
			return "", false
		}
	}
	return requestID, true
}

// WithRequestID создает копию логгера с полем request_id из контекста.
func (l *Logger) WithRequestID(ctx context.Context) *Logger {
	if id, ok := GetRequestID(ctx); ok {
		return l.With(zap.String(RequestID, id))
	}
	return l
}
