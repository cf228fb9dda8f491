package replay

import (
	"strings"
	"unicode"
)

// maxScreenWords is the word count at which a caption screen closes. A screen
// only closes on a sentence boundary, so a single long sentence can exceed it.
const maxScreenWords = 20

// CaptionScreen is a bounded run of words displayed together as one caption
// frame. Concatenating all screens of a message reproduces its tokenized text.
type CaptionScreen []string

// Segment splits text into caption screens. Sentences are cut on terminal
// punctuation followed by whitespace, words on whitespace. Words accumulate
// until the buffer reaches maxScreenWords at a sentence boundary, then flush.
// Empty text yields no screens. Pure: no state is held between calls.
func Segment(text string) []CaptionScreen {
	var screens []CaptionScreen
	var buf []string
	for _, sentence := range splitSentences(text) {
		buf = append(buf, strings.Fields(sentence)...)
		if len(buf) >= maxScreenWords {
			screens = append(screens, CaptionScreen(buf))
			buf = nil
		}
	}
	if len(buf) > 0 {
		screens = append(screens, CaptionScreen(buf))
	}
	return screens
}

// splitSentences cuts on '.', '!' or '?' when followed by whitespace or
// end of text. The terminator stays with its sentence.
func splitSentences(text string) []string {
	var out []string
	runes := []rune(text)
	start := 0
	for i, r := range runes {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		out = append(out, string(runes[start:i+1]))
		start = i + 1
	}
	if start < len(runes) {
		out = append(out, string(runes[start:]))
	}
	return out
}

// wordTotal is the combined word count across screens.
func wordTotal(screens []CaptionScreen) int {
	n := 0
	for _, s := range screens {
		n += len(s)
	}
	return n
}

// screenStartWord returns the global index of screen i's first word.
func screenStartWord(screens []CaptionScreen, i int) int {
	n := 0
	for j := 0; j < i && j < len(screens); j++ {
		n += len(screens[j])
	}
	return n
}

// screenForWord finds the screen owning the given global word cursor by
// scanning cumulative screen lengths. The scan keeps this independent of how
// Segment chunks text; screen counts are tiny so O(n) is irrelevant.
func screenForWord(screens []CaptionScreen, cursor int) int {
	start := 0
	for i, s := range screens {
		if cursor < start+len(s) {
			return i
		}
		start += len(s)
	}
	if len(screens) == 0 {
		return 0
	}
	return len(screens) - 1
}
