package controllers

import (
	"net/http"
	"testing"

	"aurora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type assistantReplyBody struct {
	Reply       string           `json:"reply"`
	Suggestions []models.Product `json:"suggestions"`
}

func TestAssistantSuggestsProducts(t *testing.T) {
	h, _ := newTestAPI(t)

	tests := []struct {
		name    string
		message string
		want    []string
	}{
		{"single hit", "Quero uma cerveja gelada", []string{"1"}},
		{"category words", "algo de alimentação para o churrasco", []string{"3", "4"}},
		{"deduplicated", "carne carne carne", []string{"4"}},
		{"short words ignored", "oi, tem kg?", []string{}},
		{"nothing", "bom dia", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, h, http.MethodPost, "/api/assistant/messages", map[string]string{"message": tt.message})
			require.Equal(t, http.StatusOK, rec.Code)
			body := decodeBody[assistantReplyBody](t, rec)
			assert.Equal(t, assistantReply, body.Reply)
			assert.Equal(t, tt.want, productIDs(body.Suggestions))
		})
	}
}

func TestAssistantCapsSuggestions(t *testing.T) {
	h, _ := newTestAPI(t)
	rec := doRequest(t, h, http.MethodPost, "/api/assistant/messages", map[string]string{
		"message": "cerveja nike maçã carne",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[assistantReplyBody](t, rec).Suggestions, assistantMaxSuggestions)
}

func TestAssistantRequiresMessage(t *testing.T) {
	h, _ := newTestAPI(t)
	rec := doRequest(t, h, http.MethodPost, "/api/assistant/messages", map[string]string{"message": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
