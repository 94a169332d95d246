package tournament

import "testing"

func TestRoundLabel(t *testing.T) {
	tests := []struct {
		name         string
		round        int
		totalRounds  int
		entrantCount int
		want         string
	}{
		{"final of 8", 3, 3, 8, "Finals"},
		{"semis of 8", 2, 3, 8, "Semi Finals"},
		{"quarters of 8", 1, 3, 8, "Quarter Finals"},
		{"final of 4", 2, 2, 4, "Finals"},
		{"semis of 4", 1, 2, 4, "Semi Finals"},
		{"final of 2", 1, 1, 2, "Finals"},
		{"round 2 of 16 is group stage", 2, 4, 16, "Group Stage"},
		{"round 1 of 16 is group stage", 1, 4, 16, "Group Stage"},
		{"semis of 16", 3, 4, 16, "Semi Finals"},
		{"final of 16", 4, 4, 16, "Finals"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundLabel(tt.round, tt.totalRounds, tt.entrantCount)
			if got != tt.want {
				t.Errorf("RoundLabel(%d, %d, %d) = %q, want %q",
					tt.round, tt.totalRounds, tt.entrantCount, got, tt.want)
			}
		})
	}
}

func TestMatchLabel(t *testing.T) {
	m := Match{Round: 2, IndexInRound: 2}
	got := MatchLabel(m, 3, 8)
	if got != "Semi Finals - Match 2" {
		t.Errorf("MatchLabel = %q, want %q", got, "Semi Finals - Match 2")
	}
}
