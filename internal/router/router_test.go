package router

import "testing"

func TestParsePath(t *testing.T) {
	tests := []struct {
		in       string
		expected Path
	}{
		{"/", Home},
		{"", Home},
		{"/chat", Chat},
		{"#/chat", Chat},
		{"/chat/", Chat},
		{"/settings", Settings},
		{"/settings?tab=theme", Settings},
		{"/masks", Home},
	}

	for _, tt := range tests {
		if got := ParsePath(tt.in); got != tt.expected {
			t.Errorf("ParsePath(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantSig string
		wantPth Path
	}{
		{"empty", "", "", Home},
		{"signature only", "https://chat.example.com/?signature=abc123", "abc123", Home},
		{"url decoded", "https://chat.example.com/?signature=a%2Bb%3D%3D", "a+b==", Home},
		{"with fragment", "https://chat.example.com/?signature=s#/settings", "s", Settings},
		{"bare query", "?signature=xyz", "xyz", Home},
		{"no signature", "https://chat.example.com/#/chat", "", Chat},
		{"empty signature", "https://chat.example.com/?signature=", "", Home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := ParseLocation(tt.raw)
			if err != nil {
				t.Fatalf("ParseLocation(%q) error: %v", tt.raw, err)
			}
			if loc.Signature != tt.wantSig {
				t.Errorf("Signature = %q, want %q", loc.Signature, tt.wantSig)
			}
			if loc.Path != tt.wantPth {
				t.Errorf("Path = %q, want %q", loc.Path, tt.wantPth)
			}
		})
	}
}

func TestParseLocation_Invalid(t *testing.T) {
	if _, err := ParseLocation("http://[::1"); err == nil {
		t.Error("expected error for malformed URL")
	}
}

func TestRouter_Navigate(t *testing.T) {
	r := New(Home)

	if !r.IsHome() {
		t.Fatal("router should start at Home")
	}

	var moves [][2]Path
	r.OnChange(func(from, to Path) {
		moves = append(moves, [2]Path{from, to})
	})

	if !r.Navigate(Chat) {
		t.Error("Navigate(Chat) should report a change")
	}
	if r.Navigate(Chat) {
		t.Error("Navigate to the current path should not report a change")
	}
	r.Navigate(Settings)

	if r.Location() != Settings {
		t.Errorf("Location() = %q, want %q", r.Location(), Settings)
	}
	if len(moves) != 2 || moves[0] != [2]Path{Home, Chat} || moves[1] != [2]Path{Chat, Settings} {
		t.Errorf("OnChange saw %v", moves)
	}
}
