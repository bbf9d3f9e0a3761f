package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	var p payload
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Дрель"}`))
	require.NoError(t, DecodeJSON(r, &p))
	assert.Equal(t, "Дрель", p.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"id":1,"name":"Дрель+","extra":{"a":1}}`))
	require.NoError(t, DecodeJSON(r, &p))
	assert.Equal(t, "Дрель+", p.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	assert.Error(t, DecodeJSON(r, &p))
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondNotFound(w, "вещь не найдена")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "вещь не найдена", body.Error)
}

func TestPathID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "42", want: 42},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "abc", wantErr: true},
	}

	for _, tt := range tests {
		r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"itemId": tt.raw})
		got, err := PathID(r, "itemId")
		if tt.wantErr {
			assert.Error(t, err, tt.raw)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestQueryInt(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?from=5&size=x", nil)

	from, err := QueryInt(r, "from", 0)
	require.NoError(t, err)
	assert.Equal(t, 5, from)

	_, err = QueryInt(r, "size", 10)
	assert.Error(t, err)

	def, err := QueryInt(r, "missing", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, def)
}

func TestValidate(t *testing.T) {
	type req struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
	}

	assert.NoError(t, Validate(req{Name: "Иван", Email: "ivan@example.com"}))

	err := Validate(req{Email: "not-an-email"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Name: required")
	assert.Contains(t, err.Error(), "Email: email")
}
