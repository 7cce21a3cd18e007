package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aurora/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAPI(t *testing.T) (http.Handler, *storage.MemStore) {
	t.Helper()
	store := storage.NewMemStore()
	store.Seed(storage.SampleProducts())
	return New(store, zap.NewNop(), DefaultCheckoutRates()).Routes(), store
}

func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[map[string]interface{}](t, rec)["message"].(string)
}

func joaoRegistration() map[string]interface{} {
	return map[string]interface{}{
		"username":        "joao",
		"email":           "joao@x.com",
		"password":        "123456",
		"confirmPassword": "123456",
		"firstName":       "João",
		"lastName":        "Silva",
	}
}

func TestHealth(t *testing.T) {
	h, _ := newTestAPI(t)
	rec := doRequest(t, h, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody[map[string]string](t, rec)["status"])
}

func TestRegisterThenLogin(t *testing.T) {
	h, _ := newTestAPI(t)

	rec := doRequest(t, h, http.MethodPost, "/api/auth/register", joaoRegistration())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	registered := decodeBody[map[string]map[string]interface{}](t, rec)["user"]
	assert.Equal(t, "joao", registered["username"])
	assert.Equal(t, "pt-BR", registered["preferredLanguage"])
	assert.NotContains(t, registered, "password")

	rec = doRequest(t, h, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "joao@x.com",
		"password": "123456",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	user := decodeBody[map[string]map[string]interface{}](t, rec)["user"]
	assert.Equal(t, "João", user["firstName"])
	assert.Equal(t, registered["id"], user["id"])
	assert.NotContains(t, user, "password")

	rec = doRequest(t, h, http.MethodGet, "/api/users/"+user["id"].(string), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, decodeBody[map[string]interface{}](t, rec), "password")
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	h, store := newTestAPI(t)
	require.Equal(t, http.StatusCreated, doRequest(t, h, http.MethodPost, "/api/auth/register", joaoRegistration()).Code)

	user, ok := store.GetUserByEmail("joao@x.com")
	require.True(t, ok)
	assert.NotEqual(t, "123456", user.Password)
}

func TestLoginFailuresLookAlike(t *testing.T) {
	h, _ := newTestAPI(t)
	require.Equal(t, http.StatusCreated, doRequest(t, h, http.MethodPost, "/api/auth/register", joaoRegistration()).Code)

	wrongPassword := doRequest(t, h, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "joao@x.com", "password": "654321",
	})
	unknownUser := doRequest(t, h, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "maria@x.com", "password": "123456",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
	assert.Equal(t, "Credenciais inválidas", messageOf(t, wrongPassword))
}

func TestLoginValidation(t *testing.T) {
	h, _ := newTestAPI(t)

	rec := doRequest(t, h, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "not-an-email", "password": "123",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[struct {
		Message string `json:"message"`
		Errors  []struct {
			Field string `json:"field"`
			Rule  string `json:"rule"`
		} `json:"errors"`
	}](t, rec)
	assert.Equal(t, "Dados inválidos", body.Message)
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "email", body.Errors[0].Field)
	assert.Equal(t, "password", body.Errors[1].Field)
	assert.Equal(t, "min", body.Errors[1].Rule)

	rec = doRequest(t, h, http.MethodPost, "/api/auth/login", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Dados inválidos", messageOf(t, rec))
}

func TestRegisterConflicts(t *testing.T) {
	h, _ := newTestAPI(t)
	require.Equal(t, http.StatusCreated, doRequest(t, h, http.MethodPost, "/api/auth/register", joaoRegistration()).Code)

	// same email, fresh username
	again := joaoRegistration()
	again["username"] = "joao2"
	rec := doRequest(t, h, http.MethodPost, "/api/auth/register", again)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Email já cadastrado", messageOf(t, rec))

	// same email and same username: email still wins
	rec = doRequest(t, h, http.MethodPost, "/api/auth/register", joaoRegistration())
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Email já cadastrado", messageOf(t, rec))

	other := joaoRegistration()
	other["email"] = "outro@x.com"
	rec = doRequest(t, h, http.MethodPost, "/api/auth/register", other)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Nome de usuário já existe", messageOf(t, rec))
}

func TestRegisterPasswordMismatch(t *testing.T) {
	h, _ := newTestAPI(t)
	reg := joaoRegistration()
	reg["confirmPassword"] = "different"

	rec := doRequest(t, h, http.MethodPost, "/api/auth/register", reg)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"confirmPassword"`)
	assert.Contains(t, rec.Body.String(), `"rule":"eqfield"`)
}

func TestRegisterPasswordRules(t *testing.T) {
	tests := []struct {
		name     string
		password string
		rule     string
	}{
		{"too short to log in with", "12345", "min"},
		{"multibyte over bcrypt limit", strings.Repeat("ç", 40), "maxbytes"},
		{"ascii over bcrypt limit", strings.Repeat("a", 73), "maxbytes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestAPI(t)
			reg := joaoRegistration()
			reg["password"] = tt.password
			reg["confirmPassword"] = tt.password

			rec := doRequest(t, h, http.MethodPost, "/api/auth/register", reg)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), `"field":"password"`)
			assert.Contains(t, rec.Body.String(), `"rule":"`+tt.rule+`"`)
		})
	}

	// 36 two-byte runes fill bcrypt's 72 bytes exactly
	h, _ := newTestAPI(t)
	reg := joaoRegistration()
	reg["password"] = strings.Repeat("ç", 36)
	reg["confirmPassword"] = reg["password"]
	require.Equal(t, http.StatusCreated, doRequest(t, h, http.MethodPost, "/api/auth/register", reg).Code)

	rec := doRequest(t, h, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email": "joao@x.com", "password": reg["password"],
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOversizedBodyRejected(t *testing.T) {
	h, _ := newTestAPI(t)
	rec := doRequest(t, h, http.MethodPost, "/api/assistant/messages", map[string]string{
		"message": strings.Repeat("a", 2<<20),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Dados inválidos", messageOf(t, rec))
}

func TestUnknownUser(t *testing.T) {
	h, _ := newTestAPI(t)
	rec := doRequest(t, h, http.MethodGet, "/api/users/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Usuário não encontrado", messageOf(t, rec))
}
