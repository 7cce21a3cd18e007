package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aurora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReportsJSONFieldNames(t *testing.T) {
	err := Validate(&models.AddToCartRequest{ProductID: "1"})
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, ValidationErrors{{Field: "userId", Rule: "required"}}, verrs)
	assert.Equal(t, "invalid fields: userId: required", err.Error())
}

func TestMoneyRule(t *testing.T) {
	tests := []struct {
		total string
		ok    bool
	}{
		{"0", true},
		{"12", true},
		{"19.15", true},
		{"-0.01", false},
		{"R$ 10", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.total, func(t *testing.T) {
			err := Validate(&models.CreateOrderRequest{UserID: "u1", Total: tt.total, PaymentMethod: "pix"})
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestDecodeAndValidate(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.com","password":"123456"}`))
	var login models.LoginRequest
	require.NoError(t, DecodeAndValidate(req, &login))
	assert.Equal(t, "a@b.com", login.Email)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))
	err := DecodeAndValidate(req, &login)
	require.Error(t, err)
	var verrs ValidationErrors
	assert.False(t, errors.As(err, &verrs))
}

func TestHandleValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleValidationError(rec, "Dados inválidos", ValidationErrors{{Field: "email", Rule: "email"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body struct {
		Message string       `json:"message"`
		Errors  []FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Dados inválidos", body.Message)
	assert.Equal(t, []FieldError{{Field: "email", Rule: "email"}}, body.Errors)

	rec = httptest.NewRecorder()
	HandleValidationError(rec, "Dados inválidos", assert.AnError)
	assert.JSONEq(t, `{"message":"Dados inválidos"}`, rec.Body.String())
}

func TestMaxBytesRuleCountsBytes(t *testing.T) {
	reg := models.RegisterRequest{
		Username: "joao", Email: "joao@x.com", FirstName: "João", LastName: "Silva",
	}

	reg.Password = strings.Repeat("ç", 36)
	reg.ConfirmPassword = reg.Password
	assert.NoError(t, Validate(&reg))

	reg.Password = strings.Repeat("ç", 37)
	reg.ConfirmPassword = reg.Password
	var verrs ValidationErrors
	require.ErrorAs(t, Validate(&reg), &verrs)
	assert.Equal(t, ValidationErrors{{Field: "password", Rule: "maxbytes"}}, verrs)
}

func TestDecodeAndValidateCapsBody(t *testing.T) {
	body := `{"message":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))

	var msg models.AssistantMessageRequest
	err := DecodeAndValidate(req, &msg)
	var tooLarge *http.MaxBytesError
	assert.True(t, errors.As(err, &tooLarge))
}
