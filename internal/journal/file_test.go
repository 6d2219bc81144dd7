package journal

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestWrite_OmitsUnsaved(t *testing.T) {
	j := New(12)
	j.Append(entry(1, 1))
	_ = j.CreateBattle("Ridge", time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	j.Append(entry(2, 3))

	var buf bytes.Buffer
	if err := j.Write(&buf, time.Now()); err != nil {
		t.Fatal(err)
	}
	var got struct {
		Battles     map[string]json.RawMessage `json:"battles"`
		BattleNames []string                   `json:"battle_names"`
		SavedAt     string                     `json:"saved_at"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if _, ok := got.Battles[Unsaved]; ok {
		t.Error("Unsaved written to battle map")
	}
	if len(got.BattleNames) != 1 || got.BattleNames[0] != "Ridge" {
		t.Errorf("battle_names = %v", got.BattleNames)
	}
	if got.SavedAt == "" {
		t.Error("saved_at missing")
	}
	if !strings.Contains(buf.String(), `"people1_before"`) {
		t.Error("history entries not in file format")
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	src := New(12)
	_ = src.CreateBattle("Ridge", time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	src.Append(entry(2, 3))
	_ = src.CreateBattle("Ford", time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC))

	var buf bytes.Buffer
	if err := src.Write(&buf, time.Now()); err != nil {
		t.Fatal(err)
	}
	dst := New(12)
	dst.Append(entry(1, 1))
	if err := dst.Load(&buf); err != nil {
		t.Fatal(err)
	}
	want := []string{Unsaved, "Ridge", "Ford"}
	names := dst.Names()
	if len(names) != len(want) {
		t.Fatalf("Names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names = %v, want %v", names, want)
		}
	}
	b, _ := dst.Battle("Ridge")
	if len(b.History) != 1 || !b.Created.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("Ridge = %+v", b)
	}
	if len(dst.Recent()) != 1 {
		t.Error("load dropped the rolling buffer")
	}
}

func TestLoad_InsertsUnsavedFirst(t *testing.T) {
	doc := `{"battles": {"A": {"history": [], "created": "2024-01-01T00:00:00Z"}}, "battle_names": ["A"]}`
	j := New(12)
	if err := j.Load(strings.NewReader(doc)); err != nil {
		t.Fatal(err)
	}
	if names := j.Names(); len(names) != 2 || names[0] != Unsaved || names[1] != "A" {
		t.Errorf("Names = %v", names)
	}
}

func TestLoad_RejectsMissingKeys(t *testing.T) {
	docs := []string{
		`{"battle_names": []}`,
		`{"battles": {}}`,
		`not json`,
	}
	for _, doc := range docs {
		j := New(12)
		_ = j.CreateBattle("Keep", time.Now())
		err := j.Load(strings.NewReader(doc))
		if !errors.Is(err, ErrInvalidFile) {
			t.Errorf("Load(%s) = %v, want ErrInvalidFile", doc, err)
		}
		if j.Current() != "Keep" || len(j.Names()) != 2 {
			t.Errorf("failed load mutated the journal: %v", j.Names())
		}
	}
}

func TestLoad_CurrentFallsBackToUnsaved(t *testing.T) {
	j := New(12)
	_ = j.CreateBattle("Gone", time.Now())
	if err := j.Load(strings.NewReader(`{"battles": {}, "battle_names": []}`)); err != nil {
		t.Fatal(err)
	}
	if j.Current() != Unsaved {
		t.Errorf("Current = %q, want %q", j.Current(), Unsaved)
	}
}
