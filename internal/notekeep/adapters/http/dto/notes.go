package dto

// CreateNoteRequest - запрос на создание заметки.
type CreateNoteRequest struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Tag           string   `json:"tag"`
	BackgroundURL string   `json:"background_url"`
	SharedWith    []string `json:"shared_with"`
}

// UpdateNoteRequest - частичное обновление заметки. Отсутствующие поля
// не меняются.
type UpdateNoteRequest struct {
	Title         *string   `json:"title"`
	Content       *string   `json:"content"`
	Tag           *string   `json:"tag"`
	BackgroundURL *string   `json:"background_url"`
	SharedWith    *[]string `json:"shared_with"`
}

// ShareCheckRequest - запрос на проверку адресата перед добавлением доступа.
type ShareCheckRequest struct {
	SharedWith []string `json:"shared_with"`
	Target     string   `json:"target"`
}
