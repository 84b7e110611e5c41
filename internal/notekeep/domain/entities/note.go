package entities

import (
	"errors"
	"slices"
	"strconv"
	"time"
)

// Ошибки домена заметок.
var (
	ErrNoteNotFound      = errors.New("note not found")
	ErrEmptyNoteField    = errors.New("title, content and tag are required")
	ErrNoteAccessDenied  = errors.New("user is neither owner nor shared on this note")
	ErrNoteOwnerMismatch = errors.New("only the owner can perform this action")
)

// Ошибки проверки адресата при добавлении доступа к заметке.
// Проверки выполняются строго в этом порядке, первая неудачная прерывает цепочку.
var (
	ErrShareEmptyEmail     = errors.New("share email cannot be empty")
	ErrShareInvalidEmail   = errors.New("share email has invalid format")
	ErrShareSelf           = errors.New("cannot share a note with yourself")
	ErrShareDuplicate      = errors.New("user is already in the share list")
	ErrShareTargetNotFound = errors.New("no user with this email")
)

// Note представляет заметку. Заметки лежат в единой коллекции для всех
// пользователей; Tag - свободная строка без ссылочной целостности с Tag-записями
// владельца. SharedWith - список email пользователей с правом редактирования.
type Note struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Tag           string    `json:"tag"`
	BackgroundURL string    `json:"background_url,omitempty"`
	Owner         string    `json:"owner"`
	CreatedAt     time.Time `json:"created_at"`
	SharedWith    []string  `json:"shared_with"`
}

// NewNoteID возвращает уникальный идентификатор заметки, производный от
// текущего времени. Наносекундное разрешение исключает коллизии в пределах
// одного процесса.
func NewNoteID(now time.Time) string {
	return strconv.FormatInt(now.UnixNano(), 10)
}

// IsOwner сообщает, является ли пользователь владельцем заметки.
func (n *Note) IsOwner(email string) bool {
	return n.Owner == email
}

// IsSharedWith сообщает, входит ли пользователь в список доступа.
func (n *Note) IsSharedWith(email string) bool {
	return slices.Contains(n.SharedWith, email)
}

// VisibleTo сообщает, видна ли заметка пользователю.
func (n *Note) VisibleTo(email string) bool {
	return n.IsOwner(email) || n.IsSharedWith(email)
}

// CanEdit сообщает, может ли пользователь изменять заметку.
func (n *Note) CanEdit(email string) bool {
	return n.VisibleTo(email)
}

// RemoveSharedUser удаляет пользователя из списка доступа.
func (n *Note) RemoveSharedUser(email string) {
	n.SharedWith = slices.DeleteFunc(slices.Clone(n.SharedWith), func(e string) bool {
		return e == email
	})
}
