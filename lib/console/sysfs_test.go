// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadActiveVT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "active")
	if err := os.WriteFile(path, []byte("tty4\n"), 0600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	vt, err := ReadActiveVT(path)
	if err != nil {
		t.Fatalf("ReadActiveVT: %v", err)
	}
	if vt != 4 {
		t.Errorf("vt = %d, want 4", vt)
	}
}

func TestReadActiveVT_MissingFile(t *testing.T) {
	_, err := ReadActiveVT(filepath.Join(t.TempDir(), "absent"))
	if err == nil {
		t.Fatal("ReadActiveVT on missing file: want error, got nil")
	}
}

func TestParseTTYName(t *testing.T) {
	tests := []struct {
		name    string
		want    int
		wantErr bool
	}{
		{"tty1", 1, false},
		{"tty12", 12, false},
		{"tty0", 0, true},    // tty0 is the master alias, not a VT
		{"ttyS0", 0, true},   // serial console
		{"hvc0", 0, true},    // hypervisor console
		{"tty-3", 0, true},
		{"tty", 0, true},
		{"", 0, true},
	}
	for _, test := range tests {
		vt, err := parseTTYName(test.name)
		if test.wantErr {
			if err == nil {
				t.Errorf("parseTTYName(%q): want error, got vt %d", test.name, vt)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseTTYName(%q): %v", test.name, err)
			continue
		}
		if vt != test.want {
			t.Errorf("parseTTYName(%q) = %d, want %d", test.name, vt, test.want)
		}
	}
}
