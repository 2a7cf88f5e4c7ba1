package workflow

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"campus-assistant-be/internal/pkg/logger"
	"campus-assistant-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClassification(t *testing.T) {
	tests := []struct {
		name           string
		response       string
		wantType       string
		wantConfidence float64
		wantErr        bool
	}{
		{
			name:           "clean json",
			response:       `{"query_type": "document_qa", "confidence": 0.92, "reasoning": "asks about rules"}`,
			wantType:       "document_qa",
			wantConfidence: 0.92,
		},
		{
			name:           "json wrapped in prose",
			response:       "Sure, here is the classification:\n{\"query_type\": \"complaint\", \"confidence\": 0.8, \"reasoning\": \"reports a problem\"}\nHope that helps!",
			wantType:       "complaint",
			wantConfidence: 0.8,
		},
		{
			name:     "no json at all",
			response: "I think this is a complaint.",
			wantErr:  true,
		},
		{
			name:     "invalid json",
			response: `{"query_type": }`,
			wantErr:  true,
		},
		{
			name:     "missing query_type",
			response: `{"confidence": 0.5}`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseClassification(tt.response)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrClassificationParse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, result.QueryType)
			assert.Equal(t, tt.wantConfidence, result.Confidence)
		})
	}
}

func TestClassificationNodeRun(t *testing.T) {
	tests := []struct {
		name           string
		reply          scriptedReply
		wantType       QueryType
		wantConfidence float64
		wantErr        bool
	}{
		{
			name:           "known label",
			reply:          scriptedReply{text: `{"query_type": "procedure", "confidence": 0.85}`},
			wantType:       QueryTypeProcedure,
			wantConfidence: 0.85,
		},
		{
			name:           "label outside the closed set maps to unknown",
			reply:          scriptedReply{text: `{"query_type": "banter", "confidence": 0.7}`},
			wantType:       QueryTypeUnknown,
			wantConfidence: 0.7,
		},
		{
			name:           "confidence above one is clamped",
			reply:          scriptedReply{text: `{"query_type": "general_info", "confidence": 1.5}`},
			wantType:       QueryTypeGeneralInfo,
			wantConfidence: 1.0,
		},
		{
			name:           "uppercase label is normalized",
			reply:          scriptedReply{text: `{"query_type": "Document_QA", "confidence": 0.9}`},
			wantType:       QueryTypeDocumentQA,
			wantConfidence: 0.9,
		},
		{
			name:           "provider failure degrades to unknown",
			reply:          scriptedReply{err: llm.ErrUnavailable},
			wantType:       QueryTypeUnknown,
			wantConfidence: 0,
			wantErr:        true,
		},
		{
			name:           "unparseable reply degrades to unknown",
			reply:          scriptedReply{text: "it is a complaint"},
			wantType:       QueryTypeUnknown,
			wantConfidence: 0,
			wantErr:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := NewClassificationNode(&scriptedProvider{generates: []scriptedReply{tt.reply}}, logger.NewNopLogger())
			st := NewState("user-1", "session-1", "message", nil)

			err := node.Run(context.Background(), st)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantType, st.QueryType)
			assert.Equal(t, tt.wantConfidence, st.IntentConfidence)
		})
	}
}

func TestClassificationPromptTruncatesHistoryByRunes(t *testing.T) {
	node := NewClassificationNode(&scriptedProvider{}, logger.NewNopLogger())
	history := []llm.Message{
		{Role: "user", Content: strings.Repeat("ü", 100)},
	}

	prompt := node.buildPrompt("hello", history)

	assert.True(t, utf8.ValidString(prompt))
	assert.Contains(t, prompt, strings.Repeat("ü", 80))
	assert.NotContains(t, prompt, strings.Repeat("ü", 81))
}

func TestClassificationIsDeterministicForSameReply(t *testing.T) {
	reply := scriptedReply{text: `{"query_type": "document_qa", "confidence": 0.9}`}

	for i := 0; i < 3; i++ {
		node := NewClassificationNode(&scriptedProvider{generates: []scriptedReply{reply}}, logger.NewNopLogger())
		st := NewState("user-1", "session-1", "What are the graduation requirements?", nil)
		require.NoError(t, node.Run(context.Background(), st))
		assert.Equal(t, QueryTypeDocumentQA, st.QueryType)
		assert.Equal(t, 0.9, st.IntentConfidence)
	}
}
