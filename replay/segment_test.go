package replay

import (
	"strings"
	"testing"
)

func flatten(screens []CaptionScreen) []string {
	var out []string
	for _, s := range screens {
		out = append(out, s...)
	}
	return out
}

func TestSegmentEmptyText(t *testing.T) {
	if got := Segment(""); len(got) != 0 {
		t.Fatalf("expected no screens for empty text, got %d", len(got))
	}
	if got := Segment("   \n\t "); len(got) != 0 {
		t.Fatalf("expected no screens for whitespace-only text, got %d", len(got))
	}
}

func TestSegmentPreservesWords(t *testing.T) {
	texts := []string{
		"One short line.",
		"First sentence here. Second sentence follows! Third one asks? Then a fourth sentence with quite a few more words in it to cross the boundary. And a tail.",
		"No terminal punctuation at all just a stream of words going on and on and on and on and on and on",
		"Version 2.5 ships today. Decimal points inside numbers stay put.",
	}
	for _, text := range texts {
		screens := Segment(text)
		want := strings.Fields(text)
		got := flatten(screens)
		if len(got) != len(want) {
			t.Fatalf("word count changed: want %d got %d for %q", len(want), len(got), text)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("word %d: want %q got %q", i, want[i], got[i])
			}
		}
	}
}

func TestSegmentScreenSizeBound(t *testing.T) {
	// 30 short sentences of 3 words each: every screen except possibly the
	// last must have reached the threshold.
	text := strings.Repeat("Alpha beta gamma. ", 30)
	screens := Segment(text)
	if len(screens) < 2 {
		t.Fatalf("expected multiple screens, got %d", len(screens))
	}
	for i, s := range screens[:len(screens)-1] {
		if len(s) < maxScreenWords {
			t.Fatalf("screen %d closed early at %d words", i, len(s))
		}
	}
}

func TestSegmentNeverSplitsInsideSentence(t *testing.T) {
	// One very long sentence yields exactly one oversized screen.
	text := strings.Repeat("word ", 35)
	screens := Segment(text)
	if len(screens) != 1 {
		t.Fatalf("expected 1 screen for a single sentence, got %d", len(screens))
	}
	if len(screens[0]) != 35 {
		t.Fatalf("expected 35 words on the screen, got %d", len(screens[0]))
	}
}

func TestSegmentThresholdFlushScenario(t *testing.T) {
	text := "Hello. This is sentence two. Sentence three has more words to push the running count past the twenty word threshold easily."
	screens := Segment(text)
	if len(screens) != 1 {
		t.Fatalf("expected exactly 1 screen, got %d", len(screens))
	}
	if got, want := wordTotal(screens), len(strings.Fields(text)); got != want {
		t.Fatalf("word total mismatch: got %d want %d", got, want)
	}
	if screenStartWord(screens, 0) != 0 {
		t.Fatalf("first screen must start at word 0")
	}
}

func TestScreenForWord(t *testing.T) {
	screens := []CaptionScreen{
		make(CaptionScreen, 20),
		make(CaptionScreen, 22),
		make(CaptionScreen, 5),
	}
	cases := []struct {
		cursor, want int
	}{
		{0, 0}, {19, 0}, {20, 1}, {41, 1}, {42, 2}, {46, 2},
	}
	for _, tc := range cases {
		if got := screenForWord(screens, tc.cursor); got != tc.want {
			t.Errorf("screenForWord(%d) = %d, want %d", tc.cursor, got, tc.want)
		}
	}
	if got := screenStartWord(screens, 2); got != 42 {
		t.Errorf("screenStartWord(2) = %d, want 42", got)
	}
}
