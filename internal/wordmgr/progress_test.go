package wordmgr

import "testing"

func TestRecordCorrectLevelsUpAtThreshold(t *testing.T) {
	p := NewProgression(1, DefaultMaxLevel, 5)
	for i := 1; i <= 4; i++ {
		if p.RecordCorrect() {
			t.Fatalf("call %d leveled up early", i)
		}
		if got := p.Status().CorrectStreak; got != i {
			t.Fatalf("streak after %d calls = %d", i, got)
		}
	}
	if !p.RecordCorrect() {
		t.Fatalf("expected level up on threshold call")
	}
	st := p.Status()
	if st.CurrentLevel != 2 || st.CorrectStreak != 0 {
		t.Fatalf("unexpected status after level up: %+v", st)
	}
}

func TestRecordCorrectFreezesStreakAtCeiling(t *testing.T) {
	p := NewProgression(18, 18, 3)
	for i := 0; i < 10; i++ {
		if p.RecordCorrect() {
			t.Fatalf("level up reported at ceiling")
		}
	}
	st := p.Status()
	if st.CurrentLevel != 18 {
		t.Fatalf("level moved past ceiling: %d", st.CurrentLevel)
	}
	if st.CorrectStreak != 3 {
		t.Fatalf("expected streak frozen at threshold 3, got %d", st.CorrectStreak)
	}
}

func TestResetRestoresMinimum(t *testing.T) {
	p := NewProgression(10, 18, 2)
	p.RecordCorrect()
	p.Reset()
	st := p.Status()
	if st.CurrentLevel != MinLevel || st.CorrectStreak != 0 {
		t.Fatalf("unexpected status after reset: %+v", st)
	}

	p = NewProgression(18, 18, 1)
	for i := 0; i < 5; i++ {
		p.RecordCorrect()
	}
	p.Reset()
	if st := p.Status(); st.CurrentLevel != MinLevel || st.CorrectStreak != 0 {
		t.Fatalf("unexpected status after reset at ceiling: %+v", st)
	}
}

func TestNewProgressionClamps(t *testing.T) {
	cases := []struct {
		start, max, threshold             int
		wantLevel, wantMax, wantThreshold int
	}{
		{start: 0, max: 18, threshold: 5, wantLevel: 1, wantMax: 18, wantThreshold: 5},
		{start: 25, max: 18, threshold: 5, wantLevel: 18, wantMax: 18, wantThreshold: 5},
		{start: 5, max: 30, threshold: 0, wantLevel: 5, wantMax: 20, wantThreshold: 1},
		{start: 3, max: 0, threshold: -2, wantLevel: 1, wantMax: 1, wantThreshold: 1},
	}
	for _, tc := range cases {
		st := NewProgression(tc.start, tc.max, tc.threshold).Status()
		if st.CurrentLevel != tc.wantLevel || st.MaxLevel != tc.wantMax || st.Threshold != tc.wantThreshold {
			t.Fatalf("NewProgression(%d,%d,%d) status=%+v", tc.start, tc.max, tc.threshold, st)
		}
	}
}
