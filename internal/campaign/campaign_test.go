package campaign

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"wargame/internal/combat"
	"wargame/internal/journal"
	"wargame/internal/roster"
)

func newModel(t *testing.T, seed uint64) *Model {
	t.Helper()
	src := rand.New(rand.NewPCG(seed, seed+1))
	m := New(combat.NewEngine(nil, src), t.TempDir())
	m.now = func() time.Time { return time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC) }
	return m
}

func mustUnit(t *testing.T, m *Model, side roster.Side, people int) roster.Unit {
	t.Helper()
	u, err := m.CreateUnit(roster.UnitSpec{Side: side, People: people})
	if err != nil {
		t.Fatalf("CreateUnit: %v", err)
	}
	return u
}

func TestEngage_WithoutParticipants(t *testing.T) {
	m := newModel(t, 1)
	res, err := m.Engage(
		combat.RawSide{People: "100", Modifier: "x"},
		combat.RawSide{People: "90"},
	)
	if err != nil {
		t.Fatal(err)
	}
	if res.Inputs[0].Modifier != "0" {
		t.Errorf("malformed modifier shown as %q, want 0", res.Inputs[0].Modifier)
	}
	if res.Battle != journal.Unsaved {
		t.Errorf("battle = %q", res.Battle)
	}
	if len(m.Journal().Recent()) != 1 {
		t.Error("engagement not journaled")
	}
	if res.Deltas[0] != nil || res.Deltas[1] != nil {
		t.Error("deltas without participants")
	}
}

func TestEngage_SpreadsLossOverParticipants(t *testing.T) {
	m := newModel(t, 7)
	own := mustUnit(t, m, roster.Own, 120)
	e1 := mustUnit(t, m, roster.Enemy, 60)
	e2 := mustUnit(t, m, roster.Enemy, 40)
	for _, c := range []struct {
		p  combat.Party
		id string
	}{{combat.First, own.ID}, {combat.Second, e1.ID}, {combat.Second, e2.ID}} {
		if _, err := m.AddParticipant(c.p, c.id); err != nil {
			t.Fatalf("AddParticipant: %v", err)
		}
	}
	if err := m.CreateBattle("Ridge"); err != nil {
		t.Fatal(err)
	}

	res, err := m.Engage(combat.RawSide{People: "5", Stance: combat.Attacking}, combat.RawSide{People: "junk"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Inputs[0].People != "120" || res.Inputs[1].People != "100" {
		t.Errorf("people fields = %q/%q, want 120/100", res.Inputs[0].People, res.Inputs[1].People)
	}

	for p := combat.First; p <= combat.Second; p++ {
		sum := 0
		for _, d := range res.Deltas[p] {
			sum += d.PeopleBefore - d.PeopleAfter
			u, _ := m.Roster().Unit(d.UnitID)
			if u.People != d.PeopleAfter {
				t.Errorf("unit %s has %d people, delta says %d", d.Name, u.People, d.PeopleAfter)
			}
			if len(u.History) != 1 || u.History[0].Battle != "Ridge" {
				t.Errorf("unit %s history = %+v", d.Name, u.History)
			}
		}
		if sum != res.Result.Losses[p].Actual {
			t.Errorf("party %d: shares sum to %d, loss is %d", p, sum, res.Result.Losses[p].Actual)
		}
		if got := m.People(p); got != res.Result.Losses[p].PeopleAfter {
			t.Errorf("party %d: participants hold %d, want %d", p, got, res.Result.Losses[p].PeopleAfter)
		}
	}

	b, _ := m.Journal().Battle("Ridge")
	if len(b.History) != 1 {
		t.Fatalf("battle history = %d entries", len(b.History))
	}
	if got := b.History[0].Units2; len(got) != 2 || got[0] != "1 company" || got[1] != "2 company" {
		t.Errorf("units2 = %v", got)
	}
	if !b.History[0].Attack1 || b.History[0].Attack2 {
		t.Error("attack flags not recorded")
	}
}

func TestEngage_PeopleNeverGrow(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		m := newModel(t, seed)
		res, err := m.Engage(
			combat.RawSide{People: fmt.Sprint(seed % 400), Fortification: "3", DefenseInBuildings: true},
			combat.RawSide{People: fmt.Sprint((seed * 7) % 300), Experience: "6", Modifier: "4"},
		)
		if err != nil {
			t.Fatal(err)
		}
		for _, l := range res.Result.Losses {
			if l.PeopleAfter > l.PeopleBefore || l.Actual > l.PeopleBefore {
				t.Fatalf("seed %d: loss %+v", seed, l)
			}
		}
	}
}

func TestDeleteUnit_RejectedWhileParticipating(t *testing.T) {
	m := newModel(t, 1)
	u := mustUnit(t, m, roster.Own, 50)
	if _, err := m.AddParticipant(combat.First, u.ID); err != nil {
		t.Fatal(err)
	}
	err := m.DeleteUnit(u.ID)
	if ReasonOf(err) != ReasonUnitParticipating {
		t.Fatalf("DeleteUnit = %v, reason %q", err, ReasonOf(err))
	}
	if m.Roster().Len() != 1 {
		t.Fatal("rejected delete removed the unit")
	}
	m.ResetParticipants()
	if err := m.DeleteUnit(u.ID); err != nil {
		t.Fatalf("DeleteUnit after reset: %v", err)
	}
}

func TestUpdateUnit_CannotSwitchSideWhileParticipating(t *testing.T) {
	m := newModel(t, 1)
	u := mustUnit(t, m, roster.Own, 50)
	_, _ = m.AddParticipant(combat.First, u.ID)
	_, err := m.UpdateUnit(u.ID, roster.UnitSpec{Side: roster.Enemy, Number: 1, People: 50})
	if !errors.Is(err, ErrUnitParticipating) {
		t.Fatalf("UpdateUnit = %v", err)
	}
	if _, err := m.UpdateUnit(u.ID, roster.UnitSpec{Side: roster.Own, Number: 1, People: 70}); err != nil {
		t.Fatal(err)
	}
	if m.People(combat.First) != 70 {
		t.Errorf("participant people = %d, want 70", m.People(combat.First))
	}
}

func TestAddParticipant_Errors(t *testing.T) {
	m := newModel(t, 1)
	own := mustUnit(t, m, roster.Own, 50)
	cases := []struct {
		p    combat.Party
		id   string
		want string
	}{
		{combat.Second, own.ID, ReasonSideMismatch},
		{combat.First, "missing", ReasonUnknownUnit},
		{combat.Party(5), own.ID, ReasonInvalidParty},
	}
	for _, c := range cases {
		_, err := m.AddParticipant(c.p, c.id)
		if ReasonOf(err) != c.want {
			t.Errorf("AddParticipant(%d, %s) reason = %q, want %q", c.p, c.id, ReasonOf(err), c.want)
		}
	}
	if _, err := m.AddParticipant(combat.First, own.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := m.AddParticipant(combat.First, own.ID); ReasonOf(err) != ReasonAlreadyAdded {
		t.Errorf("second add = %v", err)
	}
}

func TestSelectUnit_LockedSide(t *testing.T) {
	m := newModel(t, 1)
	a := mustUnit(t, m, roster.Own, 50)
	b := mustUnit(t, m, roster.Own, 80)

	sel, err := m.SelectUnit(combat.First, b.ID)
	if err != nil {
		t.Fatal(err)
	}
	if sel.Locked || sel.People != 80 {
		t.Errorf("unlocked select = %+v", sel)
	}

	_, _ = m.AddParticipant(combat.First, a.ID)
	sel, _ = m.SelectUnit(combat.First, b.ID)
	if !sel.Locked || sel.People != 50 {
		t.Errorf("locked select = %+v, want people 50", sel)
	}
	if m.Locked(combat.Second) {
		t.Error("second party locked")
	}
}

func TestBattleCommands_Reasons(t *testing.T) {
	m := newModel(t, 1)
	if r := ReasonOf(m.CreateBattle("Unsaved")); r != ReasonReservedName {
		t.Errorf("reserved: %q", r)
	}
	if r := ReasonOf(m.CreateBattle("")); r != ReasonEmptyName {
		t.Errorf("empty: %q", r)
	}
	_ = m.CreateBattle("Ford")
	if r := ReasonOf(m.CreateBattle("Ford")); r != ReasonDuplicateBattle {
		t.Errorf("duplicate: %q", r)
	}
	if r := ReasonOf(m.SelectBattle("Nowhere")); r != ReasonUnknownBattle {
		t.Errorf("unknown: %q", r)
	}
	if _, err := m.CreateBattalion("Iron"); err != nil {
		t.Fatal(err)
	}
	_, err := m.CreateBattalion("Iron")
	if r := ReasonOf(err); r != ReasonDuplicateBattalion {
		t.Errorf("battalion: %q", r)
	}
}

func TestReasonOf(t *testing.T) {
	if ReasonOf(nil) != "" {
		t.Error("nil error has a reason")
	}
	wrapped := fmt.Errorf("outer: %w", roster.ErrDuplicateUnit)
	if ReasonOf(wrapped) != ReasonDuplicateUnit {
		t.Errorf("wrapped = %q", ReasonOf(wrapped))
	}
	if ReasonOf(errors.New("boom")) != ReasonInternal {
		t.Error("unknown error not internal")
	}
}
