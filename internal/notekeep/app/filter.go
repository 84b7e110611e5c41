package app

import (
	"strings"

	"notekeep/internal/notekeep/domain/entities"
)

// FilterNotes - чистая функция отбора заметок по критериям. Ступени
// применяются последовательно, каждая к результату предыдущей (логическое И);
// порядок заметок не меняется, вход не модифицируется. Повторное применение
// тех же критериев дает тот же результат; пустые критерии возвращают вход
// без изменений.
func FilterNotes(notes []*entities.Note, c entities.FilterCriteria, currentUser string) []*entities.Note {
	filtered := notes

	if c.SelectedTag != "" {
		filtered = keep(filtered, func(n *entities.Note) bool {
			return n.Tag == c.SelectedTag
		})
	}

	if strings.TrimSpace(c.SearchText) != "" {
		search := strings.ToLower(c.SearchText)
		filtered = keep(filtered, func(n *entities.Note) bool {
			return strings.Contains(strings.ToLower(n.Title), search) ||
				strings.Contains(strings.ToLower(n.Content), search)
		})
	}

	// Границы диапазона сравниваются как календарные даты, обе включительно.
	if c.StartDate != "" {
		filtered = keep(filtered, func(n *entities.Note) bool {
			return n.CreatedAt.Format(entities.DateLayout) >= c.StartDate
		})
	}
	if c.EndDate != "" {
		filtered = keep(filtered, func(n *entities.Note) bool {
			return n.CreatedAt.Format(entities.DateLayout) <= c.EndDate
		})
	}

	if c.OwnedOnly {
		filtered = keep(filtered, func(n *entities.Note) bool {
			return n.Owner == currentUser
		})
	}

	return filtered
}

// keep возвращает новый срез из элементов, удовлетворяющих предикату.
func keep(notes []*entities.Note, pred func(*entities.Note) bool) []*entities.Note {
	result := make([]*entities.Note, 0, len(notes))
	for _, n := range notes {
		if pred(n) {
			result = append(result, n)
		}
	}
	return result
}
