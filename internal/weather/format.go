package weather

import "strings"

// Message labels.
const (
	labelDate        = "日時"
	labelSummary     = "概要"
	labelMinCelsius  = "最低気温"
	labelMaxCelsius  = "最高気温"
	labelValueJoiner = ":"
)

// FormatMessage builds the chat message for today's forecast. The output
// depends only on t. A null temperature renders as an empty value.
func FormatMessage(t TodayForecast) string {
	var b strings.Builder

	writeLine(&b, labelDate, t.PublicTime)
	writeLine(&b, labelSummary, t.Description)
	writeLine(&b, labelMinCelsius, deref(t.MinCelsius))
	writeLine(&b, labelMaxCelsius, deref(t.MaxCelsius))
	b.WriteString(strings.Join(t.RainLines, "\n"))

	return b.String()
}

func writeLine(b *strings.Builder, label, value string) {
	b.WriteString(label)
	b.WriteString(labelValueJoiner)
	b.WriteString(value)
	b.WriteByte('\n')
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
