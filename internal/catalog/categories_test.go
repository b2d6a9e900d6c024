package catalog

import "testing"

func TestInferCategory(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"games keywords", "play this puzzle game", "games"},
		{"empty text", "", ""},
		{"no keyword hits", "lorem ipsum dolor sit amet", ""},
		{"finance keywords", "track your crypto wallet and trading positions", "finance"},
		{"music keywords", "share a playlist of songs with audio previews", "music"},
		{"tie keeps declared order", "game chat", "games"}, // one hit each for games and social
		{"case insensitive", "PLAY THIS PUZZLE GAME", "games"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := InferCategory(tc.text); got != tc.want {
				t.Errorf("InferCategory(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestInferCategoryDeterministic(t *testing.T) {
	text := "a social game to connect and play with friends in the community"
	first := InferCategory(text)
	for i := 0; i < 100; i++ {
		if got := InferCategory(text); got != first {
			t.Fatalf("inference not deterministic: got %q then %q", first, got)
		}
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		if !ValidCategory(c.ID) {
			t.Errorf("ValidCategory(%q) = false, want true", c.ID)
		}
	}
	if ValidCategory("not-a-category") {
		t.Error("ValidCategory accepted an unknown id")
	}
}

func TestEveryCategoryHasKeywords(t *testing.T) {
	for _, c := range Categories {
		if len(categoryKeywords[c.ID]) == 0 {
			t.Errorf("category %q has no keywords", c.ID)
		}
	}
}
