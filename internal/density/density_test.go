package density

import (
	"strings"
	"testing"
)

func TestSingleKnownPlace(t *testing.T) {
	want := "경복궁의 현재 밀집 정도는 여유상태입니다.\n사람이 몰려있을 가능성이 낮고 붐빔은 거의 느껴지지 않아요. 도보 이동이 자유로워요."
	if got := Single("경복궁"); got != want {
		t.Errorf("Single(경복궁) = %q, want %q", got, want)
	}
}

// Every table entry must format with its own level label and description.
func TestSingleMatchesTable(t *testing.T) {
	for _, p := range Places() {
		t.Run(p.Name, func(t *testing.T) {
			got := Single(p.Name)

			lines := strings.SplitN(got, "\n", 2)
			if len(lines) != 2 {
				t.Fatalf("expected two lines, got %q", got)
			}
			wantFirst := p.Name + "의 현재 밀집 정도는 " + p.Level.Label() + "상태입니다."
			if lines[0] != wantFirst {
				t.Errorf("first line = %q, want %q", lines[0], wantFirst)
			}
			if lines[1] != p.Description {
				t.Errorf("second line = %q, want %q", lines[1], p.Description)
			}
		})
	}
}

func TestSingleUnknownPlace(t *testing.T) {
	got := Single("없는장소")
	want := "없는장소의 현재 밀집 정보를 찾을 수 없습니다.\n등록되지 않은 장소예요. 장소 이름을 다시 확인해 주세요."
	if got != want {
		t.Errorf("Single(없는장소) = %q, want %q", got, want)
	}

	// Deterministic fallback: repeated calls yield identical output.
	if Single("없는장소") != got {
		t.Error("fallback message is not deterministic")
	}
}

func TestLookup(t *testing.T) {
	t.Run("known name is exact match", func(t *testing.T) {
		p, ok := Lookup("명동")
		if !ok {
			t.Fatal("expected 명동 in the table")
		}
		if p.Level != High {
			t.Errorf("명동 level = %v, want high", p.Level)
		}
	})

	t.Run("lookup is case sensitive", func(t *testing.T) {
		if _, ok := Lookup("n서울타워"); ok {
			t.Error("lowercase variant should not match N서울타워")
		}
	})

	t.Run("unknown name misses", func(t *testing.T) {
		if _, ok := Lookup("부산역"); ok {
			t.Error("부산역 should not be in the Seoul table")
		}
	})
}

func TestMultiple(t *testing.T) {
	t.Run("order preserved with unknown in the middle", func(t *testing.T) {
		got := Multiple([]string{"경복궁", "없는장소", "명동"})
		wantParts := []string{
			"• " + Single("경복궁"),
			"• " + Single("없는장소"),
			"• " + Single("명동"),
		}
		if got != strings.Join(wantParts, "\n") {
			t.Errorf("Multiple output mismatch:\n%s", got)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := Multiple(nil); got != "" {
			t.Errorf("Multiple(nil) = %q, want empty", got)
		}
	})
}

func TestLevelLabel(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{Low, "여유"},
		{Medium, "보통"},
		{High, "혼잡"},
		{Unknown, "알 수 없음"},
	}
	for _, tc := range tests {
		if got := tc.level.Label(); got != tc.want {
			t.Errorf("Level(%s).Label() = %q, want %q", tc.level, got, tc.want)
		}
	}
}
