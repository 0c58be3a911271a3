package http

// FetchResponse - ответ на запуск получения профиля.
type FetchResponse struct {
	UserID    string `json:"user_id"`
	Result    string `json:"result"`
	Retryable bool   `json:"retryable"`
}

// ProfileResponse - профиль из кэша.
type ProfileResponse struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	ImageURL string `json:"image_url"`
}

// ErrorResponse - тело ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse - ответ проверки готовности.
type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
