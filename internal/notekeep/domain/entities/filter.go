package entities

// DateLayout - формат календарной даты в критериях фильтрации.
const DateLayout = "2006-01-02"

// FilterCriteria описывает критерии отбора видимых заметок. Нулевое значение
// каждого поля отключает соответствующую ступень фильтра. Даты задаются
// календарно, в формате DateLayout, обе границы включительно.
type FilterCriteria struct {
	SelectedTag string
	SearchText  string
	StartDate   string
	EndDate     string
	OwnedOnly   bool
}

// IsZero сообщает, что ни один критерий не задан.
func (c FilterCriteria) IsZero() bool {
	return c == FilterCriteria{}
}

// NoteDraft - данные новой заметки.
type NoteDraft struct {
	Title         string
	Content       string
	Tag           string
	BackgroundURL string
	SharedWith    []string
}

// NotePatch - частичное обновление заметки. Нулевые указатели означают
// "поле не меняется".
type NotePatch struct {
	Title         *string
	Content       *string
	Tag           *string
	BackgroundURL *string
	SharedWith    *[]string
}
