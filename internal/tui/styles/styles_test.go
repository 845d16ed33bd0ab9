package styles

import (
	"strings"
	"testing"
)

func TestStatusColor(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   string
	}{
		{"pending", "pending", string(StatusPending)},
		{"processing", "processing", string(StatusProcessing)},
		{"completed", "completed", string(StatusCompleted)},
		{"failed", "failed", string(StatusFailed)},
		{"absent status defaults to pending", "", string(StatusPending)},
		{"uppercase is normalized", "COMPLETED", string(StatusCompleted)},
		{"unknown label falls back to muted", "verifying", string(MutedColor)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(StatusColor(tt.status)); got != tt.want {
				t.Errorf("StatusColor(%q) = %q, want %q", tt.status, got, tt.want)
			}
		})
	}
}

func TestStatusBadgeDefaultsToPending(t *testing.T) {
	if !strings.Contains(StatusBadge(""), "pending") {
		t.Error("badge for absent status should carry the pending label")
	}
	if !strings.Contains(StatusBadge("Failed"), "failed") {
		t.Error("badge label should be lowercased")
	}
}

func TestStatusIcon(t *testing.T) {
	if StatusIcon("completed") != "✓" {
		t.Errorf("StatusIcon(completed) = %q", StatusIcon("completed"))
	}
	if StatusIcon("") != "○" {
		t.Errorf("absent status should use the pending icon, got %q", StatusIcon(""))
	}
}
