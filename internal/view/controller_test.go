package view

import "testing"

func TestControllerStartsAtFeed(t *testing.T) {
	c := NewController("Sociarede", nil)
	if c.State() != StateFeed {
		t.Fatalf("expected initial FEED, got %s", c.State())
	}
	if c.Title() != "Sociarede" {
		t.Fatalf("expected default title, got %s", c.Title())
	}
}

func TestNavigateIsUnconditional(t *testing.T) {
	c := NewController("Sociarede", nil)

	transitions := []State{StateCreate, StateProfile, StateExplore, StateNotifications, StateFeed, StateCreate}
	for _, target := range transitions {
		c.Navigate(target)
		if c.State() != target {
			t.Fatalf("expected state %s, got %s", target, c.State())
		}
	}
}

func TestTitlesPerState(t *testing.T) {
	c := NewController("Sociarede", nil)

	cases := []struct {
		state State
		title string
	}{
		{StateFeed, "Sociarede"},
		{StateCreate, "Novo Post"},
		{StateProfile, "Meu Perfil"},
		{StateExplore, "Sociarede"},
		{StateNotifications, "Sociarede"},
	}
	for _, tc := range cases {
		c.Navigate(tc.state)
		if c.Title() != tc.title {
			t.Fatalf("state %s: expected title %q, got %q", tc.state, tc.title, c.Title())
		}
	}
}

func TestNavigateNotifiesListener(t *testing.T) {
	var gotState State
	var gotTitle string
	c := NewController("Sociarede", func(s State, title string) {
		gotState = s
		gotTitle = title
	})

	c.Navigate(StateCreate)
	if gotState != StateCreate || gotTitle != "Novo Post" {
		t.Fatalf("listener got %s/%q", gotState, gotTitle)
	}
}

func TestParseState(t *testing.T) {
	for _, valid := range []string{"FEED", "EXPLORE", "CREATE", "PROFILE", "NOTIFICATIONS"} {
		if _, err := ParseState(valid); err != nil {
			t.Fatalf("expected %s to parse: %v", valid, err)
		}
	}
	if _, err := ParseState("SETTINGS"); err == nil {
		t.Fatalf("expected unknown state to fail")
	}
}
