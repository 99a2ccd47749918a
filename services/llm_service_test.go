package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"gtm_portal/config"
	"gtm_portal/models"
)

func TestGeminiModelWithoutKey(t *testing.T) {
	cfg := &config.Config{}
	cfg.Gemini.APIKey = "  "

	_, err := NewGeminiModel(cfg).Generate(context.Background(), GenerateRequest{Message: "hi"})
	assert.ErrorIs(t, err, models.ErrAssistantUnavailable)
}

func TestBuildContentsKeepsTurnOrder(t *testing.T) {
	contents := buildContents(GenerateRequest{
		History: []models.ConversationTurn{
			{Role: models.RoleUser, Text: "问题"},
			{Role: models.RoleAssistant, Text: "回答"},
		},
		Message: "追问",
	})

	require.Len(t, contents, 3)
	assert.Equal(t, "user", string(contents[0].Role))
	assert.Equal(t, "model", string(contents[1].Role))
	assert.Equal(t, "user", string(contents[2].Role))
	assert.Equal(t, "追问", contents[2].Parts[0].Text)
}

func TestBuildGenerateConfig(t *testing.T) {
	gc := buildGenerateConfig(GenerateRequest{SystemInstruction: "sys", JSONOutput: true})
	assert.Equal(t, "application/json", gc.ResponseMIMEType)
	require.NotNil(t, gc.SystemInstruction)
	assert.Equal(t, "sys", gc.SystemInstruction.Parts[0].Text)

	plain := buildGenerateConfig(GenerateRequest{})
	assert.Empty(t, plain.ResponseMIMEType)
	assert.Nil(t, plain.SystemInstruction)
}

func TestExtractTextFromResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: `{"text":`}, {Text: `"hi"}`}}},
		}},
	}
	text, err := extractTextFromResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, `{"text":"hi"}`, text)

	_, err = extractTextFromResponse(&genai.GenerateContentResponse{})
	assert.Error(t, err)
}
