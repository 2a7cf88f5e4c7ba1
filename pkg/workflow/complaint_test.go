package workflow

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleFromMessage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "first sentence",
			message: "The elevator is broken. It has been out for a week.",
			want:    "The elevator is broken",
		},
		{
			name:    "first line",
			message: "Login keeps failing\nI tried resetting my password twice.",
			want:    "Login keeps failing",
		},
		{
			name:    "long message is bounded",
			message: strings.Repeat("a", 80),
			want:    strings.Repeat("a", 50) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titleFromMessage(tt.message))
		})
	}
}

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"My exam grade was never published", CategoryAcademic},
		{"The enrollment payment portal rejected my scholarship", CategoryAdministrative},
		{"The wifi keeps dropping in the dorms", CategoryTechnology},
		{"The elevator in building C is stuck", CategoryInfrastructure},
		{"Something unrelated happened", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, detectCategory(tt.message))
		})
	}
}
