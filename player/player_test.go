package player

import "testing"

func TestArgsPerPlayer(t *testing.T) {
	cases := []struct {
		binary string
		want   string
	}{
		{"/usr/bin/mpv", "--speed=1.5"},
		{"/usr/bin/ffplay", "atempo=1.5"},
		{"/usr/bin/afplay", "1.5"},
	}
	for _, tc := range cases {
		c := &Channel{binary: tc.binary}
		args := c.args("https://assets.example/a.mp3", 1.5)
		found := false
		for _, a := range args {
			if a == tc.want {
				found = true
			}
		}
		if !found {
			t.Errorf("%s: rate flag %q missing from %v", tc.binary, tc.want, args)
		}
		if args[len(args)-1] != "https://assets.example/a.mp3" {
			t.Errorf("%s: asset url must be the final argument, got %v", tc.binary, args)
		}
	}
}

func TestPlayReturnsNilWhenStartFails(t *testing.T) {
	c := &Channel{binary: "/nonexistent/player-binary"}
	h := c.Play("https://assets.example/a.mp3", 1.0, nil, nil)
	if h != nil {
		t.Fatal("expected nil handle for an unstartable player")
	}
}
