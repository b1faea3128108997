package roster

import "sort"

// MatrixDay coluna de dia da matriz
type MatrixDay struct {
	Day     int    `json:"day"`
	Initial string `json:"initial"` // inicial do dia da semana
	Weekend bool   `json:"weekend"`
	Holiday bool   `json:"holiday"`
}

// MatrixCell célula (pessoa, dia)
type MatrixCell struct {
	SlotID    string `json:"time_slot_id,omitempty"`
	Code      string `json:"code,omitempty"` // vazio quando não há atribuição
	ColorFill string `json:"color_fill,omitempty"`
	ColorText string `json:"color_text,omitempty"`
}

// MatrixRow linha de pessoa com suas células e totais derivados
type MatrixRow struct {
	PersonID   string       `json:"person_id"`
	Matricula  string       `json:"matricula"`
	Name       string       `json:"name"`
	Cargo      string       `json:"cargo"`
	Cells      []MatrixCell `json:"cells"` // uma por dia, índice 0 = dia 1
	ShiftCount int          `json:"shift_count"`
	TotalHours float64      `json:"total_hours"`
	HoursLabel string       `json:"hours_label"`
}

// LegendItem item da legenda de códigos
type LegendItem struct {
	Code      string `json:"code"`
	Label     string `json:"label"`
	ColorFill string `json:"color_fill"`
	ColorText string `json:"color_text"`
}

// Matrix projeção pessoas × dias de uma escala
type Matrix struct {
	Month     string       `json:"month"`
	MonthName string       `json:"month_name"`
	Days      []MatrixDay  `json:"days"`
	Rows      []MatrixRow  `json:"rows"`
	Legend    []LegendItem `json:"legend"`
}

// BuildMatrix projeta as entradas na grade pessoas × dias. As linhas
// seguem a ordem de visiblePeople; entradas de pessoas fora dessa lista
// não aparecem. Faixas ausentes degradam para "N/A" na célula.
func BuildMatrix(month string, entries []Entry, visiblePeople []PersonInfo, slots map[string]SlotInfo, holidayDays []int) (*Matrix, error) {
	year, m, err := ParseMonth(month)
	if err != nil {
		return nil, err
	}

	holidays := make(map[int]bool, len(holidayDays))
	for _, d := range holidayDays {
		holidays[d] = true
	}

	days := DaysInMonth(year, m)
	mx := &Matrix{
		Month:     month,
		MonthName: MonthLabelPT(year, m),
		Days:      make([]MatrixDay, 0, days),
		Rows:      make([]MatrixRow, 0, len(visiblePeople)),
	}
	for d := 1; d <= days; d++ {
		wd := WeekdayOf(year, m, d)
		mx.Days = append(mx.Days, MatrixDay{
			Day:     d,
			Initial: WeekInitialPT(wd),
			Weekend: IsWeekend(wd),
			Holiday: holidays[d],
		})
	}

	// célula (pessoa, dia) → faixa exibida; primeira ocorrência vence.
	// Os totais, porém, contam todas as entradas da pessoa, inclusive a
	// segunda faixa de um dia com dobra.
	type key struct {
		person string
		day    int
	}
	cellSlot := make(map[key]string, len(entries))
	personEntries := make(map[string][]Entry, len(visiblePeople))
	for _, e := range entries {
		pid := NormalizeID(e.PersonID)
		k := key{person: pid, day: e.Day}
		if _, ok := cellSlot[k]; !ok {
			cellSlot[k] = NormalizeID(e.SlotID)
		}
		personEntries[pid] = append(personEntries[pid], e)
	}

	usedCodes := make(map[string]string) // código → rótulo completo
	for _, p := range visiblePeople {
		row := MatrixRow{
			PersonID:  NormalizeID(p.ID),
			Matricula: p.Matricula,
			Name:      p.Name,
			Cargo:     p.Cargo,
			Cells:     make([]MatrixCell, days),
		}
		for d := 1; d <= days; d++ {
			slotID, ok := cellSlot[key{person: row.PersonID, day: d}]
			if !ok {
				continue
			}
			code := missingRef
			if s, found := slots[slotID]; found {
				code = ShortCode(s.Label)
			}
			color := ColorFor(code)
			row.Cells[d-1] = MatrixCell{
				SlotID:    slotID,
				Code:      code,
				ColorFill: color.Fill,
				ColorText: color.Text,
			}
		}
		for _, e := range personEntries[row.PersonID] {
			code, label := missingRef, missingRef
			var hours float64
			if s, found := slots[NormalizeID(e.SlotID)]; found {
				label = s.Label
				code = ShortCode(s.Label)
				if h, derr := SlotDurationHours(s.StartTime, s.EndTime); derr == nil {
					hours = h
				}
			}
			row.ShiftCount++
			row.TotalHours += hours
			usedCodes[code] = label
		}
		row.HoursLabel = FormatHours(row.TotalHours)
		mx.Rows = append(mx.Rows, row)
	}

	codes := make([]string, 0, len(usedCodes))
	for c := range usedCodes {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	for _, c := range codes {
		color := ColorFor(c)
		mx.Legend = append(mx.Legend, LegendItem{
			Code:      c,
			Label:     usedCodes[c],
			ColorFill: color.Fill,
			ColorText: color.Text,
		})
	}

	return mx, nil
}
