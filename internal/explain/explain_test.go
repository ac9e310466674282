package explain

import (
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	got := strings.Join(Topics(), ",")
	if got != "aql,code-letters,strategies" {
		t.Fatalf("unexpected topics %q", got)
	}
	for _, name := range Topics() {
		text, err := Topic(name)
		if err != nil || text == "" {
			t.Fatalf("topic %s: %q, %v", name, text, err)
		}
	}
}

func TestTopicUnknown(t *testing.T) {
	if _, err := Topic("burn-rate"); err == nil {
		t.Fatalf("expected error for unknown topic")
	}
	if _, err := Topic(" AQL "); err != nil {
		t.Fatalf("expected case-insensitive lookup, got %v", err)
	}
}
