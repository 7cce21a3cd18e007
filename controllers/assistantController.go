package controllers

import (
	"net/http"
	"strings"
	"time"
	"unicode"

	"aurora/models"
	"aurora/utils"

	"golang.org/x/exp/slices"
)

const (
	assistantReply = "Entendi! Posso ajudá-lo a encontrar produtos específicos ou criar uma lista personalizada. O que você gostaria de fazer?"
	// words shorter than this are not used to look up suggestions
	assistantMinTerm        = 4
	assistantMaxSuggestions = 3
)

type assistantResponse struct {
	Reply       string           `json:"reply"`
	Suggestions []models.Product `json:"suggestions"`
	Timestamp   time.Time        `json:"timestamp"`
}

// AssistantMessage answers the "Aurora" virtual assistant. The reply is
// canned; suggestions are catalog hits for the words of the message.
func (c *Controller) AssistantMessage(w http.ResponseWriter, r *http.Request) {
	var req models.AssistantMessageRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.HandleValidationError(w, msgInvalidData, err)
		return
	}

	utils.SendJSONResponse(w, http.StatusOK, assistantResponse{
		Reply:       assistantReply,
		Suggestions: c.suggestProducts(req.Message),
		Timestamp:   time.Now(),
	})
}

func (c *Controller) suggestProducts(message string) []models.Product {
	words := strings.FieldsFunc(message, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	suggestions := []models.Product{}
	for _, word := range words {
		if len([]rune(word)) < assistantMinTerm {
			continue
		}
		for _, p := range c.store.SearchProducts(word) {
			if len(suggestions) == assistantMaxSuggestions {
				return suggestions
			}
			if !slices.ContainsFunc(suggestions, func(s models.Product) bool { return s.ID == p.ID }) {
				suggestions = append(suggestions, p)
			}
		}
	}
	return suggestions
}
