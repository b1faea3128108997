package roster

import "testing"

func TestSetAssignment_InsertAndReplace(t *testing.T) {
	var entries []Entry

	entries = SetAssignment(entries, 5, "sn1", "p1")
	if got := SlotOccupant(entries, 5, "sn1"); got != "p1" {
		t.Fatalf("ocupante esperado p1, obtido %q", got)
	}

	entries = SetAssignment(entries, 5, "sn1", "p2")
	if got := SlotOccupant(entries, 5, "sn1"); got != "p2" {
		t.Fatalf("substituição esperava p2, obtido %q", got)
	}
	if len(entries) != 1 {
		t.Fatalf("substituição não deve duplicar entradas, obtido %d", len(entries))
	}
}

func TestSetAssignment_RemovalIdempotent(t *testing.T) {
	entries := []Entry{{Day: 3, SlotID: "sd1", PersonID: "p1"}}

	entries = SetAssignment(entries, 3, "sd1", "")
	if got := SlotOccupant(entries, 3, "sd1"); got != "" {
		t.Fatalf("após remoção o slot deve ficar vazio, obtido %q", got)
	}

	// remover de novo não deve falhar nem alterar nada
	entries = SetAssignment(entries, 3, "sd1", "")
	if len(entries) != 0 {
		t.Fatalf("remoção repetida deve manter coleção vazia, obtido %d entradas", len(entries))
	}
}

func TestSetAssignment_UniquenessInvariant(t *testing.T) {
	var entries []Entry
	ops := []struct {
		day    int
		slot   string
		person string
	}{
		{1, "sn1", "a"},
		{1, "sn1", "b"},
		{1, "sd1", "c"},
		{2, "sn1", "a"},
		{1, "sn1", "c"},
		{2, "sn1", ""},
	}
	for _, op := range ops {
		entries = SetAssignment(entries, op.day, op.slot, op.person)
	}

	type key struct {
		day  int
		slot string
	}
	seen := make(map[key]int)
	for _, e := range entries {
		seen[key{e.Day, e.SlotID}]++
	}
	for k, n := range seen {
		if n > 1 {
			t.Fatalf("par (dia %d, faixa %s) com %d entradas, esperado no máximo 1", k.day, k.slot, n)
		}
	}
	if got := SlotOccupant(entries, 1, "sn1"); got != "c" {
		t.Fatalf("última atribuição deve valer, esperado c, obtido %q", got)
	}
}

func TestSetAssignment_NormalizesIDs(t *testing.T) {
	entries := SetAssignment(nil, 1, " sn1 ", " p1 ")
	if got := SlotOccupant(entries, 1, "sn1"); got != "p1" {
		t.Fatalf("ids devem ser normalizados antes da comparação, obtido %q", got)
	}
}

func TestPersonSlotOnDay_FirstMatchWins(t *testing.T) {
	entries := []Entry{
		{Day: 7, SlotID: "sd1", PersonID: "p1"},
		{Day: 7, SlotID: "sn1", PersonID: "p1"},
	}
	if got := PersonSlotOnDay(entries, "p1", 7); got != "sd1" {
		t.Fatalf("primeira ocorrência deve valer, esperado sd1, obtido %q", got)
	}
	if got := PersonSlotOnDay(entries, "p1", 8); got != "" {
		t.Fatalf("dia sem atribuição deve devolver vazio, obtido %q", got)
	}
}

func TestPrune_RemovesHiddenPeople(t *testing.T) {
	entries := []Entry{
		{Day: 1, SlotID: "sn1", PersonID: "a"},
		{Day: 2, SlotID: "sn1", PersonID: "b"},
		{Day: 3, SlotID: "sn1", PersonID: "c"},
	}
	pruned := Prune(entries, []string{"a", "c"})
	if len(pruned) != 2 {
		t.Fatalf("esperadas 2 entradas após poda, obtidas %d", len(pruned))
	}
	for _, e := range pruned {
		if e.PersonID == "b" {
			t.Fatal("entradas de pessoa oculta devem ser removidas")
		}
	}
}

func TestDedupe_KeepsFirstOccurrence(t *testing.T) {
	entries := []Entry{
		{Day: 1, SlotID: "sn1", PersonID: "a"},
		{Day: 1, SlotID: "sn1", PersonID: "b"},
	}
	deduped := Dedupe(entries)
	if len(deduped) != 1 {
		t.Fatalf("esperada 1 entrada, obtidas %d", len(deduped))
	}
	if deduped[0].PersonID != "a" {
		t.Fatalf("primeira ocorrência deve ser mantida, obtido %q", deduped[0].PersonID)
	}
}
