package roster

import (
	"strings"
	"unicode"
)

// ShortCode deriva o código compacto (1 a 3 letras) do rótulo de uma
// faixa horária: primeira letra de cada palavra significativa, em
// maiúscula, descartando os conectivos "e" e "&".
//   "Sobreaviso Diurno"           → "SD"
//   "Sobreaviso Diurno e Noturno" → "SDN"
//   "Plantão"                     → "P"
// Função pura do rótulo; o mesmo código aparece na matriz em tela e
// nos documentos exportados.
func ShortCode(label string) string {
	words := strings.FieldsFunc(label, func(r rune) bool {
		return unicode.IsSpace(r) || r == '/' || r == '-' || r == '–' || r == '—'
	})

	var b strings.Builder
	letters := 0
	for _, w := range words {
		lw := strings.ToLower(w)
		if lw == "e" || lw == "&" {
			continue
		}
		r := []rune(w)[0]
		b.WriteRune(unicode.ToUpper(r))
		letters++
		if letters >= 3 {
			break
		}
	}

	code := b.String()
	if code == "" {
		for _, r := range label {
			if !unicode.IsSpace(r) {
				return string(unicode.ToUpper(r))
			}
		}
	}
	return code
}
