package workflow

import (
	"testing"

	"campus-assistant-be/pkg/retrieval"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResponseConfidence(t *testing.T) {
	passage := func(sim float64) retrieval.Passage {
		return retrieval.Passage{DocumentId: uuid.New(), Similarity: sim}
	}

	tests := []struct {
		name  string
		state State
		want  float64
	}{
		{
			name: "with passages",
			state: State{
				IntentConfidence: 0.9,
				Passages:         []retrieval.Passage{passage(0.92), passage(0.8)},
			},
			want: 0.7*0.9 + 0.3*0.92,
		},
		{
			name:  "without passages",
			state: State{IntentConfidence: 0.9},
			want:  0.8 * 0.9,
		},
		{
			name: "degraded run loses a flat 0.2",
			state: State{
				IntentConfidence: 0.9,
				Errors:           []StepError{{Step: "document_search", Message: "down"}},
			},
			want: 0.8*0.9 - 0.2,
		},
		{
			name: "degraded run is floored at 0.1",
			state: State{
				IntentConfidence: 0.1,
				Errors:           []StepError{{Step: "classification", Message: "down"}},
			},
			want: 0.1,
		},
		{
			name:  "zero intent yields zero",
			state: State{IntentConfidence: 0},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, responseConfidence(&tt.state), 1e-9)
		})
	}
}

func TestDedupeByDocument(t *testing.T) {
	docA := uuid.New()
	docB := uuid.New()

	passages := []retrieval.Passage{
		{DocumentId: docA, Similarity: 0.95},
		{DocumentId: docB, Similarity: 0.9},
		{DocumentId: docA, Similarity: 0.85},
	}

	out := dedupeByDocument(passages)

	assert.Len(t, out, 2)
	assert.Equal(t, docA, out[0].DocumentId)
	assert.Equal(t, 0.95, out[0].Similarity)
	assert.Equal(t, docB, out[1].DocumentId)

	assert.Nil(t, dedupeByDocument(nil))
}
