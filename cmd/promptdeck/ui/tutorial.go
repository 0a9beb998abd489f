package ui

import (
	"github.com/charmbracelet/glamour"
)

const tutorialMarkdown = `# Как пользоваться каталогом

1. **Каталог** — листайте карточки, ` + "`/`" + ` включает поиск,
   ` + "`←/→`" + ` переключают категории, ` + "`s`" + ` меняет сортировку.
2. **Избранное** — ` + "`x`" + ` добавляет карточку в избранное,
   ` + "`f`" + ` показывает только избранные.
3. **Просмотр** — ` + "`enter`" + ` открывает карточку целиком,
   там ` + "`←/→`" + ` листают по кругу.
4. **Копирование** — ` + "`c`" + ` кладёт текст промпта в буфер обмена.
5. **Конструктор** — вкладка ` + "`2`" + `: соберите свой промпт из готовых
   блоков и скопируйте результат.

Нажмите любую клавишу, чтобы закрыть подсказку.
`

// renderTutorial renders the onboarding overlay. Falls back to the raw
// markdown when the renderer cannot be built (odd TERM setups).
func renderTutorial(styles Styles, width int) string {
	style := "light"
	if styles.Theme.IsDark {
		style = "dark"
	}
	if width < 40 {
		width = 40
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return tutorialMarkdown
	}
	out, err := r.Render(tutorialMarkdown)
	if err != nil {
		return tutorialMarkdown
	}
	return styles.Card.Render(out)
}
