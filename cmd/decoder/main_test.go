package main

import (
	"path/filepath"
	"testing"
)

func TestRecoveredPath(t *testing.T) {
	cases := []struct {
		output, dir, name string
		want              string
	}{
		{"", "out", "secret.txt", filepath.Join("out", "decoded_secret.txt")},
		{"", "out", "../../etc/passwd", filepath.Join("out", "decoded_passwd")},
		{"copy.bin", "out", "secret.txt", "copy.bin"},
	}
	for _, tc := range cases {
		if got := recoveredPath(tc.output, tc.dir, tc.name); got != tc.want {
			t.Fatalf("recoveredPath(%q, %q, %q) = %q, want %q", tc.output, tc.dir, tc.name, got, tc.want)
		}
	}
}
