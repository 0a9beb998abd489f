package builder

// Mode distinguishes single-select from multi-select groups.
type Mode string

const (
	ModeSingle Mode = "single"
	ModeMulti  Mode = "multi"
)

// Option is one selectable pill inside a group.
type Option struct {
	Value string
	Icon  string
}

// Group is one choice section of the constructor. Label is the bullet prefix
// used in the serialized prompt; Title/Desc are display-only.
type Group struct {
	Key     string
	Mode    Mode
	Title   string
	Desc    string
	Icon    string
	Label   string
	Options []Option
}

// Groups returns the fixed, ordered group definitions. The order, labels and
// values are a compatibility contract with the bot that consumes the pasted
// text; do not reorder or reword them.
func Groups() []Group {
	return []Group{
		{
			Key:   "pose",
			Mode:  ModeSingle,
			Title: "Действие и поза",
			Desc:  "Выберите основную позу персонажа",
			Icon:  "🧍",
			Label: "Поза/действие",
			Options: []Option{
				{Value: "Стоит", Icon: "🧍"},
				{Value: "Сидит", Icon: "🪑"},
				{Value: "Идёт", Icon: "🚶"},
				{Value: "Держит предмет", Icon: "✋"},
				{Value: "Расслабленная поза", Icon: "😌"},
				{Value: "Динамичная поза", Icon: "⚡"},
			},
		},
		{
			Key:   "clothes",
			Mode:  ModeMulti,
			Title: "Одежда",
			Desc:  "Можно выбрать несколько вариантов",
			Icon:  "👕",
			Label: "Одежда",
			Options: []Option{
				{Value: "Классический костюм", Icon: "🤵"},
				{Value: "Смокинг", Icon: "🎩"},
				{Value: "Блейзер с брюками", Icon: "👔"},
				{Value: "Вечернее платье", Icon: "👗"},
				{Value: "Худи", Icon: "🧥"},
				{Value: "Кожаная куртка", Icon: "🧥"},
				{Value: "Джинсовка", Icon: "🧢"},
				{Value: "Футболка", Icon: "👕"},
				{Value: "Спортивная одежда", Icon: "🏃"},
				{Value: "Винтаж", Icon: "🕰️"},
				{Value: "Бохо стиль", Icon: "🌸"},
				{Value: "Минимализм", Icon: "⚪"},
			},
		},
		{
			Key:   "location",
			Mode:  ModeMulti,
			Title: "Локация",
			Desc:  "Можно выбрать несколько",
			Icon:  "📍",
			Label: "Локация",
			Options: []Option{
				{Value: "Неоновая улица", Icon: "🌃"},
				{Value: "Крыша с видом на город", Icon: "🏙️"},
				{Value: "Стена с граффити", Icon: "🎨"},
				{Value: "Современный офис", Icon: "🏢"},
				{Value: "Люксовый лаунж", Icon: "🛋️"},
				{Value: "Дождливая улица", Icon: "🌧️"},
				{Value: "Мощёная улица", Icon: "🧱"},
				{Value: "Индустриальный лофт", Icon: "🏗️"},
			},
		},
		{
			Key:   "time",
			Mode:  ModeSingle,
			Title: "Время суток",
			Desc:  "Выберите время",
			Icon:  "🕒",
			Label: "Время суток",
			Options: []Option{
				{Value: "Золотой час", Icon: "🌅"},
				{Value: "Рассвет", Icon: "🌄"},
				{Value: "Закат", Icon: "🌇"},
				{Value: "Синий час (сумерки)", Icon: "🌆"},
				{Value: "Полдень", Icon: "☀️"},
				{Value: "Ночь", Icon: "🌙"},
			},
		},
		{
			Key:   "lighting",
			Mode:  ModeMulti,
			Title: "Освещение",
			Desc:  "Можно выбрать несколько",
			Icon:  "💡",
			Label: "Освещение",
			Options: []Option{
				{Value: "Естественный свет", Icon: "☀️"},
				{Value: "Свет золотого часа", Icon: "🌅"},
				{Value: "Неоновый свет", Icon: "💡"},
				{Value: "Студийное освещение", Icon: "🎛️"},
				{Value: "Уличное освещение", Icon: "🏙️"},
				{Value: "Свет свечей", Icon: "🕯️"},
				{Value: "Гирлянды", Icon: "✨"},
			},
		},
	}
}
