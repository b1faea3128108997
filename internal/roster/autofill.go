package roster

import (
	"errors"
	"time"
)

// Erros de pré-condição da escadinha, reportados ao usuário antes de
// qualquer mutação do rascunho
var (
	ErrAutoFillNoPeople    = errors.New("a escadinha exige ao menos uma pessoa visível na escala")
	ErrAutoFillNoNightSlot = errors.New("a escadinha exige uma faixa noturna (código SN) cadastrada")
)

// AutoFillInput parâmetros da geração automática de um mês
type AutoFillInput struct {
	Year  int
	Month int // 1..12

	// PeopleIDs na ordem das linhas da escala; a ordem define a rotação
	PeopleIDs []string

	// NightSlotID faixa SN, obrigatória
	NightSlotID string
	// DaySlotID faixa SD; vazia degrada fins de semana e feriados para
	// atribuição única
	DaySlotID string

	// HolidayDays dias do mês tratados como feriado
	HolidayDays []int

	// StartPersonID pessoa que inicia a rotação; ausente ou desconhecida
	// recai no índice 0
	StartPersonID string
}

// AutoFill gera as entradas do mês inteiro pela rotação escadinha.
//
// Um cursor circular percorre PeopleIDs dia a dia. Em fim de semana ou
// feriado, havendo faixa SD, o dia recebe dobra: SD para o cursor e SN
// para o seguinte, avançando o cursor em 2. Nos demais dias apenas SN,
// avançando em 1.
//
// A saída substitui integralmente a coleção de entradas do rascunho e é
// determinística para entradas idênticas.
func AutoFill(in AutoFillInput) ([]Entry, error) {
	n := len(in.PeopleIDs)
	if n == 0 {
		return nil, ErrAutoFillNoPeople
	}
	if NormalizeID(in.NightSlotID) == "" {
		return nil, ErrAutoFillNoNightSlot
	}

	people := make([]string, n)
	for i, id := range in.PeopleIDs {
		people[i] = NormalizeID(id)
	}
	nightSlot := NormalizeID(in.NightSlotID)
	daySlot := NormalizeID(in.DaySlotID)

	holidays := make(map[int]bool, len(in.HolidayDays))
	for _, d := range in.HolidayDays {
		holidays[d] = true
	}

	base := 0
	if start := NormalizeID(in.StartPersonID); start != "" {
		for i, id := range people {
			if id == start {
				base = i
				break
			}
		}
	}

	year, month := in.Year, time.Month(in.Month)
	days := DaysInMonth(year, month)

	entries := make([]Entry, 0, days*2)
	for d := 1; d <= days; d++ {
		double := (IsWeekend(WeekdayOf(year, month, d)) || holidays[d]) && daySlot != ""
		if double {
			entries = append(entries,
				Entry{Day: d, SlotID: daySlot, PersonID: people[base%n]},
				Entry{Day: d, SlotID: nightSlot, PersonID: people[(base+1)%n]},
			)
			base += 2
		} else {
			entries = append(entries, Entry{Day: d, SlotID: nightSlot, PersonID: people[base%n]})
			base++
		}
	}
	return entries, nil
}
