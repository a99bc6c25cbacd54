package app

import (
	"flag"
	"testing"

	"toruslife/internal/core"
)

func TestCellAt(t *testing.T) {
	tests := []struct {
		name       string
		px, py     int
		wantX      int
		wantY      int
		wantInside bool
	}{
		{"origin", 0, 0, 0, 0, true},
		{"inside cell", 17, 33, 1, 2, true},
		{"last pixel", 799, 799, 49, 49, true},
		{"right of grid", 800, 10, 0, 0, false},
		{"below grid", 10, 800, 0, 0, false},
		{"negative", -1, 5, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := CellAt(tt.px, tt.py, 16, 50)
			if ok != tt.wantInside || x != tt.wantX || y != tt.wantY {
				t.Fatalf("CellAt(%d,%d) = (%d,%d,%v), want (%d,%d,%v)", tt.px, tt.py, x, y, ok, tt.wantX, tt.wantY, tt.wantInside)
			}
		})
	}
	if _, _, ok := CellAt(5, 5, 0, 50); ok {
		t.Fatal("zero scale should never hit a cell")
	}
}

func TestTitle(t *testing.T) {
	if got := Title(core.ModeEdit); got != "Game of Life - Edit" {
		t.Fatalf("Title(Edit) = %q", got)
	}
	if got := Title(core.ModeRunning); got != "Game of Life - Running" {
		t.Fatalf("Title(Running) = %q", got)
	}
}

func TestConfigBindAndValidate(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-size", "64", "-speed", "20", "-min-speed", "5", "-grid=false"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Life.Size != 64 || cfg.Life.Speed != 20 || cfg.Life.MinSpeed != 5 || cfg.Grid {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	cfg.Scale = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("zero scale accepted")
	}
	cfg.Scale = 16
	cfg.Life.Speed = 1
	if err := cfg.Validate(); err == nil {
		t.Fatal("speed below floor accepted")
	}
}
