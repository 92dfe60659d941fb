package main

import "testing"

func TestReadColorMode(t *testing.T) {
	cases := []struct {
		in      string
		want    colorMode
		wantErr bool
	}{
		{"", colorModeAuto, false},
		{"auto", colorModeAuto, false},
		{"ON", colorModeOn, false},
		{" off ", colorModeOff, false},
		{"rainbow", "", true},
	}
	for _, tc := range cases {
		got, err := readColorMode(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("readColorMode(%q) should fail", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("readColorMode(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("readColorMode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestShouldColorizeExplicitModes(t *testing.T) {
	if !shouldColorize(colorModeOn) {
		t.Fatalf("on must force color")
	}
	if shouldColorize(colorModeOff) {
		t.Fatalf("off must disable color")
	}
}
