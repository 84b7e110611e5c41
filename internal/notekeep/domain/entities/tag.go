package entities

import (
	"errors"
	"math/rand/v2"
	"slices"
)

// ErrTagNotFound возвращается при операции над несуществующим тегом.
var ErrTagNotFound = errors.New("tag not found")

// TagColorPalette - фиксированная палитра цветов тегов. Значения хранятся
// как есть; клиент интерпретирует их как классы оформления.
var TagColorPalette = []string{
	"bg-red-500",
	"bg-green-500",
	"bg-blue-600",
	"bg-yellow-500",
	"bg-purple-600",
	"bg-pink-500",
	"bg-indigo-500",
	"bg-teal-500",
	"bg-orange-500",
	"bg-lime-500",
	"bg-cyan-500",
	"bg-emerald-500",
	"bg-rose-500",
	"bg-fuchsia-500",
	"bg-violet-500",
	"bg-sky-500",
}

// Tag представляет пользовательский тег. Имя может быть пустым сразу после
// создания, пока пользователь не ввел его. Теги хранятся отдельно для каждого
// владельца, порядок вставки сохраняется.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// IsPaletteColor сообщает, принадлежит ли цвет фиксированной палитре.
func IsPaletteColor(color string) bool {
	return slices.Contains(TagColorPalette, color)
}

// RandomPaletteColor возвращает случайный цвет из палитры.
func RandomPaletteColor() string {
	return TagColorPalette[rand.IntN(len(TagColorPalette))]
}

// RepairColor заменяет отсутствующий или не входящий в палитру цвет случайным
// из палитры. Возвращает true, если цвет был изменен; имя и id не затрагиваются.
func (t *Tag) RepairColor() bool {
	if IsPaletteColor(t.Color) {
		return false
	}
	t.Color = RandomPaletteColor()
	return true
}
