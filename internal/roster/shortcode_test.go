package roster

import "testing"

func TestShortCode(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"Sobreaviso Diurno", "SD"},
		{"Sobreaviso Noturno", "SN"},
		{"Sobreaviso Diurno e Noturno", "SDN"},
		{"Plantão", "P"},
		{"sobreaviso diurno", "SD"},
		{"Apoio & Retaguarda", "AR"},
		{"Urgência/Emergência", "UE"},
		{"Cobertura Integral de Fim de Semana", "CID"}, // limitado a 3 letras
		{"e", "E"},                                     // só conectivo: recai na primeira letra
		{"", ""},
	}
	for _, tc := range cases {
		if got := ShortCode(tc.label); got != tc.want {
			t.Errorf("ShortCode(%q) = %q, esperado %q", tc.label, got, tc.want)
		}
	}
}

func TestShortCode_StableAcrossCalls(t *testing.T) {
	label := "Sobreaviso Diurno e Noturno"
	first := ShortCode(label)
	for i := 0; i < 10; i++ {
		if got := ShortCode(label); got != first {
			t.Fatalf("código deve ser estável, primeira chamada %q, depois %q", first, got)
		}
	}
}
