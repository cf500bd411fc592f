package cmd

import (
	"testing"
)

func TestNewCheckCmd(t *testing.T) {
	cmd := NewCheckCmd()

	if cmd == nil {
		t.Fatal("Expected non-nil command")
	}

	if cmd.Use != "check" {
		t.Errorf("Expected Use to be 'check', got %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("Expected non-empty Short description")
	}

	for _, flag := range []string{"root", "config", "json", "output", "workers"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Expected flag %q to be registered", flag)
		}
	}
}

func TestNewReportCmd(t *testing.T) {
	cmd := NewReportCmd()

	if cmd == nil {
		t.Fatal("Expected non-nil command")
	}

	if cmd.Use != "report" {
		t.Errorf("Expected Use to be 'report', got %q", cmd.Use)
	}

	for _, flag := range []string{"root", "verdict", "output", "ext"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Expected flag %q to be registered", flag)
		}
	}
}

func TestRootCmdHasSubcommands(t *testing.T) {
	found := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		found[sub.Name()] = true
	}

	if !found["check"] {
		t.Error("Expected root command to register 'check'")
	}
	if !found["report"] {
		t.Error("Expected root command to register 'report'")
	}
}
