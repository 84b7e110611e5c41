package dto

// RenameTagRequest - запрос на переименование тега.
type RenameTagRequest struct {
	Name string `json:"name"`
}
