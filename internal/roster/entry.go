// Package roster concentra o núcleo puro da escala: atribuições por
// célula, rotação automática (escadinha) e as projeções de calendário
// e matriz consumidas pela API e pelos exportadores.
package roster

import "strings"

// Entry atribuição de uma pessoa a um (dia, faixa horária)
type Entry struct {
	Day      int    `json:"day"`
	SlotID   string `json:"time_slot_id"`
	PersonID string `json:"person_id"`
}

// NormalizeID canoniza um identificador vindo de fora (número ou texto)
// para comparação. Identificadores chegam com grafias inconsistentes.
func NormalizeID(id string) string {
	return strings.TrimSpace(id)
}

// SetAssignment aplica uma atribuição em (day, slotID) e devolve a nova
// coleção. PersonID vazio remove a entrada; caso contrário substitui a
// ocupante existente ou insere uma nova. A coleção original não é alterada.
func SetAssignment(entries []Entry, day int, slotID, personID string) []Entry {
	slotID = NormalizeID(slotID)
	personID = NormalizeID(personID)

	out := make([]Entry, 0, len(entries)+1)
	replaced := false
	for _, e := range entries {
		if e.Day == day && NormalizeID(e.SlotID) == slotID {
			if personID == "" {
				continue // remoção
			}
			if !replaced {
				out = append(out, Entry{Day: day, SlotID: slotID, PersonID: personID})
				replaced = true
			}
			continue
		}
		out = append(out, e)
	}
	if personID != "" && !replaced {
		out = append(out, Entry{Day: day, SlotID: slotID, PersonID: personID})
	}
	return out
}

// SlotOccupant devolve o id da pessoa atribuída a (day, slotID), ou vazio
func SlotOccupant(entries []Entry, day int, slotID string) string {
	slotID = NormalizeID(slotID)
	for _, e := range entries {
		if e.Day == day && NormalizeID(e.SlotID) == slotID {
			return NormalizeID(e.PersonID)
		}
	}
	return ""
}

// PersonSlotOnDay devolve a primeira faixa ocupada pela pessoa no dia,
// ou vazio. Fora da dobra deliberada de fim de semana espera-se no
// máximo uma; havendo mais de uma, vale a primeira encontrada.
func PersonSlotOnDay(entries []Entry, personID string, day int) string {
	personID = NormalizeID(personID)
	for _, e := range entries {
		if e.Day == day && NormalizeID(e.PersonID) == personID {
			return NormalizeID(e.SlotID)
		}
	}
	return ""
}

// Prune remove da coleção as entradas cujas pessoas saíram do conjunto
// visível. Operação destrutiva sobre o rascunho, aplicada quando a
// seleção de pessoas da escala encolhe.
func Prune(entries []Entry, visiblePersonIDs []string) []Entry {
	visible := make(map[string]struct{}, len(visiblePersonIDs))
	for _, id := range visiblePersonIDs {
		visible[NormalizeID(id)] = struct{}{}
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if _, ok := visible[NormalizeID(e.PersonID)]; ok {
			out = append(out, e)
		}
	}
	return out
}

// Dedupe garante no máximo uma entrada por (dia, faixa), preservando a
// primeira ocorrência. Aplica-se a coleções vindas de fora.
func Dedupe(entries []Entry) []Entry {
	type key struct {
		day  int
		slot string
	}
	seen := make(map[key]struct{}, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		k := key{day: e.Day, slot: NormalizeID(e.SlotID)}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, Entry{Day: e.Day, SlotID: NormalizeID(e.SlotID), PersonID: NormalizeID(e.PersonID)})
	}
	return out
}
