package roster

import (
	"errors"
	"testing"
	"time"
)

func TestShares(t *testing.T) {
	got := Shares(10, 3)
	want := []int{4, 3, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Shares(10, 3) = %v, want %v", got, want)
		}
	}
	if s := Shares(5, 0); s != nil {
		t.Errorf("Shares with no units = %v, want nil", s)
	}
}

func TestShares_SumAndSpread(t *testing.T) {
	for loss := 0; loss <= 200; loss += 7 {
		for n := 1; n <= 9; n++ {
			shares := Shares(loss, n)
			sum, lo, hi := 0, shares[0], shares[0]
			for _, s := range shares {
				sum += s
				lo = min(lo, s)
				hi = max(hi, s)
			}
			if sum != loss {
				t.Fatalf("Shares(%d, %d) sums to %d", loss, n, sum)
			}
			if hi-lo > 1 {
				t.Fatalf("Shares(%d, %d) = %v differ by more than 1", loss, n, shares)
			}
		}
	}
}

func TestApplyLosses(t *testing.T) {
	r := New()
	a, _ := r.CreateUnit(UnitSpec{Side: Own, People: 100})
	b, _ := r.CreateUnit(UnitSpec{Side: Own, People: 2})
	c, _ := r.CreateUnit(UnitSpec{Side: Own, People: 50})

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	deltas, err := r.ApplyLosses([]string{a.ID, b.ID, c.ID}, 11, Engagement{
		Record:  BattleRecord{At: at, Battle: "Hill 203", OwnScore: 7, EnemyScore: 4, Opponents: []string{"1 company"}},
		Victory: true,
	})
	if err != nil {
		t.Fatalf("ApplyLosses: %v", err)
	}
	if len(deltas) != 3 {
		t.Fatalf("expected 3 deltas, got %d", len(deltas))
	}
	wantShares := []int{4, 4, 3}
	wantAfter := []int{96, 0, 47}
	for i, d := range deltas {
		if d.Share != wantShares[i] || d.PeopleAfter != wantAfter[i] {
			t.Errorf("delta %d = %+v, want share %d after %d", i, d, wantShares[i], wantAfter[i])
		}
	}

	got, _ := r.Unit(b.ID)
	if got.People != 0 {
		t.Errorf("people floor at 0, got %d", got.People)
	}
	if got.Victories != 1 {
		t.Errorf("victory not counted: %d", got.Victories)
	}
	if len(got.History) != 1 {
		t.Fatalf("expected one history record, got %d", len(got.History))
	}
	rec := got.History[0]
	if rec.Battle != "Hill 203" || rec.Loss != 2 || rec.PeopleBefore != 2 || !rec.Victory || !rec.At.Equal(at) {
		t.Errorf("unexpected record %+v", rec)
	}
}

func TestApplyLosses_UnknownUnitChangesNothing(t *testing.T) {
	r := New()
	a, _ := r.CreateUnit(UnitSpec{Side: Own, People: 100})
	_, err := r.ApplyLosses([]string{a.ID, "ghost"}, 10, Engagement{})
	if !errors.Is(err, ErrUnknownUnit) {
		t.Fatalf("expected ErrUnknownUnit, got %v", err)
	}
	got, _ := r.Unit(a.ID)
	if got.People != 100 || len(got.History) != 0 {
		t.Errorf("unit changed after failed apply: %+v", got)
	}
}
