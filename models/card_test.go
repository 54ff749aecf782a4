package models

import "testing"

func TestCopyLimitForBanStatus(t *testing.T) {
	tests := []struct {
		status string
		want   int
	}{
		{BanStatusBanned, 0},
		{BanStatusLimited, 1},
		{BanStatusSemiLimited, 2},
		{"", 3},
		{"Unlimited", 3},
		{"bilinmeyen", 3},
	}
	for _, tt := range tests {
		if got := CopyLimitForBanStatus(tt.status); got != tt.want {
			t.Errorf("CopyLimitForBanStatus(%q) = %d, %d bekleniyordu", tt.status, got, tt.want)
		}
	}
}

func TestIsExtraDeckType(t *testing.T) {
	extraTypes := []string{
		"Fusion Monster",
		"Synchro Monster",
		"Synchro Tuner Monster",
		"Synchro Pendulum Effect Monster",
		"XYZ Monster",
		"XYZ Pendulum Effect Monster",
		"Link Monster",
		"Pendulum Effect Fusion Monster",
	}
	for _, cardType := range extraTypes {
		if !IsExtraDeckType(cardType) {
			t.Errorf("%q extra deck türü sayılmalıydı", cardType)
		}
	}

	mainTypes := []string{"Normal Monster", "Effect Monster", "Spell Card", "Trap Card", "Token", "Pendulum Effect Monster"}
	for _, cardType := range mainTypes {
		if IsExtraDeckType(cardType) {
			t.Errorf("%q main deck türü sayılmalıydı", cardType)
		}
	}
}

func TestEffectiveCopyLimit(t *testing.T) {
	tests := []struct {
		copyLimit int
		want      int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 3},
		{99, 3}, // global sınır 3'te kalır
	}
	for _, tt := range tests {
		card := Card{CopyLimit: tt.copyLimit}
		if got := card.EffectiveCopyLimit(); got != tt.want {
			t.Errorf("EffectiveCopyLimit(limit=%d) = %d, %d bekleniyordu", tt.copyLimit, got, tt.want)
		}
	}
}
