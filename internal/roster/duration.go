package roster

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// parseHHMM converte "HH:MM" em minutos desde a meia-noite
func parseHHMM(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("horário inválido %q, esperado HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("hora inválida em %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("minuto inválido em %q", s)
	}
	return h*60 + m, nil
}

// SlotDurationHours calcula a duração em horas entre startTime e endTime
// (ambos "HH:MM"). Diferença não positiva indica virada de meia-noite e
// soma 24h. Resultado arredondado a 2 casas decimais.
func SlotDurationHours(startTime, endTime string) (float64, error) {
	start, err := parseHHMM(startTime)
	if err != nil {
		return 0, err
	}
	end, err := parseHHMM(endTime)
	if err != nil {
		return 0, err
	}
	diff := end - start
	if diff <= 0 {
		diff += 24 * 60
	}
	hours := float64(diff) / 60.0
	return math.Round(hours*100) / 100, nil
}

// FormatHours formata o total de horas para exibição: arredonda a no
// máximo 1 casa decimal e omite a casa quando o valor é inteiro.
func FormatHours(hours float64) string {
	rounded := math.Round(hours*10) / 10
	if rounded == math.Trunc(rounded) {
		return strconv.Itoa(int(rounded))
	}
	return strconv.FormatFloat(rounded, 'f', 1, 64)
}
