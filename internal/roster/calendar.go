package roster

import (
	"sort"
	"strings"
)

// PersonInfo dados mínimos de uma pessoa para as projeções
type PersonInfo struct {
	ID        string
	Name      string
	Matricula string
	Cargo     string
}

// SlotInfo dados mínimos de uma faixa horária para as projeções
type SlotInfo struct {
	ID        string
	Label     string
	StartTime string
	EndTime   string
}

// missingRef texto exibido quando a pessoa ou a faixa de uma entrada já
// não existe; a entrada é preservada, nunca descartada
const missingRef = "N/A"

// CalendarEntry linha exibida dentro de um dia do calendário
type CalendarEntry struct {
	PersonID   string `json:"person_id"`
	SlotID     string `json:"time_slot_id"`
	FirstName  string `json:"first_name"`
	SlotLabel  string `json:"slot_label"`
	SlotCode   string `json:"slot_code"`
	Label      string `json:"label"` // "primeiro-nome rótulo-da-faixa"
	ColorFill  string `json:"color_fill"`
	ColorText  string `json:"color_text"`
}

// CalendarDay um dia do mês na grade
type CalendarDay struct {
	Day     int             `json:"day"`
	Weekday string          `json:"weekday"`
	Weekend bool            `json:"weekend"`
	Holiday bool            `json:"holiday"`
	Entries []CalendarEntry `json:"entries"`
}

// CalendarMonth grade mensal com início na segunda-feira
type CalendarMonth struct {
	Month         string        `json:"month"`
	MonthName     string        `json:"month_name"`
	LeadingBlanks int           `json:"leading_blanks"`
	Days          []CalendarDay `json:"days"`
}

// FirstName devolve o primeiro nome de um nome completo
func FirstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return name
	}
	return fields[0]
}

// BuildCalendar projeta as entradas na grade mensal. Pessoas e faixas
// ausentes degradam para "N/A". Com filterPersonIDs não vazio, apenas as
// entradas dessas pessoas aparecem.
func BuildCalendar(month string, entries []Entry, people map[string]PersonInfo, slots map[string]SlotInfo, holidayDays []int, filterPersonIDs []string) (*CalendarMonth, error) {
	year, m, err := ParseMonth(month)
	if err != nil {
		return nil, err
	}

	var filter map[string]struct{}
	if len(filterPersonIDs) > 0 {
		filter = make(map[string]struct{}, len(filterPersonIDs))
		for _, id := range filterPersonIDs {
			filter[NormalizeID(id)] = struct{}{}
		}
	}

	holidays := make(map[int]bool, len(holidayDays))
	for _, d := range holidayDays {
		holidays[d] = true
	}

	byDay := make(map[int][]Entry)
	for _, e := range entries {
		if filter != nil {
			if _, ok := filter[NormalizeID(e.PersonID)]; !ok {
				continue
			}
		}
		byDay[e.Day] = append(byDay[e.Day], e)
	}

	days := DaysInMonth(year, m)
	cal := &CalendarMonth{
		Month:         month,
		MonthName:     MonthLabelPT(year, m),
		LeadingBlanks: LeadingBlanks(year, m),
		Days:          make([]CalendarDay, 0, days),
	}

	for d := 1; d <= days; d++ {
		wd := WeekdayOf(year, m, d)
		day := CalendarDay{
			Day:     d,
			Weekday: WeekInitialPT(wd),
			Weekend: IsWeekend(wd),
			Holiday: holidays[d],
			Entries: make([]CalendarEntry, 0, len(byDay[d])),
		}
		for _, e := range byDay[d] {
			day.Entries = append(day.Entries, buildCalendarEntry(e, people, slots))
		}
		// ordem determinística: rótulo da faixa ascendente
		sort.SliceStable(day.Entries, func(i, j int) bool {
			return day.Entries[i].SlotLabel < day.Entries[j].SlotLabel
		})
		cal.Days = append(cal.Days, day)
	}
	return cal, nil
}

func buildCalendarEntry(e Entry, people map[string]PersonInfo, slots map[string]SlotInfo) CalendarEntry {
	firstName := missingRef
	if p, ok := people[NormalizeID(e.PersonID)]; ok {
		firstName = FirstName(p.Name)
	}

	slotLabel, slotCode := missingRef, missingRef
	if s, ok := slots[NormalizeID(e.SlotID)]; ok {
		slotLabel = s.Label
		slotCode = ShortCode(s.Label)
	}

	color := ColorFor(slotCode)
	return CalendarEntry{
		PersonID:  NormalizeID(e.PersonID),
		SlotID:    NormalizeID(e.SlotID),
		FirstName: firstName,
		SlotLabel: slotLabel,
		SlotCode:  slotCode,
		Label:     firstName + " " + slotLabel,
		ColorFill: color.Fill,
		ColorText: color.Text,
	}
}
