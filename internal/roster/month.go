package roster

import (
	"fmt"
	"time"
)

// monthNamesPT nomes dos meses em português, indexados por time.Month
var monthNamesPT = map[time.Month]string{
	time.January:   "Janeiro",
	time.February:  "Fevereiro",
	time.March:     "Março",
	time.April:     "Abril",
	time.May:       "Maio",
	time.June:      "Junho",
	time.July:      "Julho",
	time.August:    "Agosto",
	time.September: "Setembro",
	time.October:   "Outubro",
	time.November:  "Novembro",
	time.December:  "Dezembro",
}

// weekInitialsPT inicial do dia da semana, indexada por time.Weekday
// (domingo = 0)
var weekInitialsPT = [7]string{"D", "S", "T", "Q", "Q", "S", "S"}

// ParseMonth interpreta o formato AAAA-MM
func ParseMonth(month string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return 0, 0, fmt.Errorf("mês inválido %q, esperado AAAA-MM: %w", month, err)
	}
	return t.Year(), t.Month(), nil
}

// DaysInMonth devolve a quantidade de dias do mês
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}

// WeekdayOf devolve o dia da semana de um dia do mês
func WeekdayOf(year int, month time.Month, day int) time.Weekday {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()
}

// IsWeekend indica sábado ou domingo
func IsWeekend(wd time.Weekday) bool {
	return wd == time.Saturday || wd == time.Sunday
}

// LeadingBlanks quantidade de células vazias antes do dia 1 num
// calendário que começa na segunda-feira
func LeadingBlanks(year int, month time.Month) int {
	wd := WeekdayOf(year, month, 1)
	return (int(wd) + 6) % 7
}

// MonthNamePT nome localizado do mês
func MonthNamePT(month time.Month) string {
	return monthNamesPT[month]
}

// WeekInitialPT inicial localizada do dia da semana
func WeekInitialPT(wd time.Weekday) string {
	return weekInitialsPT[int(wd)]
}

// MonthLabelPT rótulo "Fevereiro/2025" para cabeçalhos de documento
func MonthLabelPT(year int, month time.Month) string {
	return fmt.Sprintf("%s/%d", MonthNamePT(month), year)
}
