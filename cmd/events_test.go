package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/iksnae/agent-story/testutil"
)

func TestEventsCommand(t *testing.T) {
	in := testutil.WriteTempFile(t, "system.log",
		"Agent Started\nFinder\nTask: find things\nTool Output\nok\n")
	out := filepath.Join(t.TempDir(), "events.txt")

	if err := runCommand(t, "events", in, "-o", out); err != nil {
		t.Fatalf("events failed: %v", err)
	}

	got := testutil.ReadFile(t, out)
	if !strings.Contains(got, "Event 0\n  Agent Started: Finder\n") {
		t.Errorf("unexpected events output:\n%s", got)
	}
	if strings.Contains(got, "Task:") {
		t.Errorf("excluded marker present without --all:\n%s", got)
	}
}

func TestEventsCommand_All(t *testing.T) {
	in := testutil.WriteTempFile(t, "system.log",
		"Agent Started\nFinder\nTask: find things\n")
	out := filepath.Join(t.TempDir(), "events.txt")

	if err := runCommand(t, "events", in, "-o", out, "--all"); err != nil {
		t.Fatalf("events --all failed: %v", err)
	}

	if !strings.Contains(testutil.ReadFile(t, out), "Task:") {
		t.Error("events --all dropped the excluded marker")
	}
}
