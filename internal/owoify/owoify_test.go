package owoify

import "testing"

func TestOwoify(t *testing.T) {
	tests := []struct {
		name   string
		source string
		level  Level
		want   string
	}{
		{"empty", "", Uvu, ""},
		{"owo hello", "hello world", Owo, "hewwo world"},
		{"uwu hello", "hello world", Uwu, "hewwo wowwd"},
		{"owo keeps hey", "hey", Owo, "hey"},
		{"uvu hey", "hey", Uvu, "hay"},
		{"specific word", "you", Owo, "u"},
		{"n before vowel", "no", Owo, "nyo"},
		{"uppercase ll", "HELLO", Owo, "HEWWO"},
		{"uwu exclamation", "hi!", Uwu, "hi! >w<"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Owoify(tt.source, tt.level); got != tt.want {
				t.Fatalf("Owoify(%q, %v) = %q, want %q", tt.source, tt.level, got, tt.want)
			}
		})
	}
}

func TestOwoifyIsDeterministic(t *testing.T) {
	const text = "The quick brown fox jumps over the lazy dog!"
	for _, level := range Levels() {
		if Owoify(text, level) != Owoify(text, level) {
			t.Fatalf("output for %v changed between calls", level)
		}
	}
}

func TestLevelLabels(t *testing.T) {
	want := []string{"owo", "uwu", "uvu"}
	for i, level := range Levels() {
		if level.String() != want[i] {
			t.Fatalf("Levels()[%d] = %q, want %q", i, level.String(), want[i])
		}
	}
}
