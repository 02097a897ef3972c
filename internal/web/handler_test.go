package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	h, err := NewHandler("₹")
	require.NoError(t, err)

	mux := http.NewServeMux()
	h.Register(mux)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func postForm(t *testing.T, server *httptest.Server, form url.Values) (int, string) {
	t.Helper()
	resp, err := http.PostForm(server.URL+"/calculate", form)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestHome(t *testing.T) {
	server := setupTestServer(t)

	resp, err := http.Get(server.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Equal(t, defaultRows, strings.Count(string(body), `name="name"`))
	assert.Contains(t, string(body), `action="/calculate"`)
}

func TestCalculate(t *testing.T) {
	server := setupTestServer(t)

	status, body := postForm(t, server, url.Values{
		"name":   {"A", "B", "C", "D"},
		"amount": {"100", "0", "0", "0"},
	})

	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Total Expense: ₹100.00")
	assert.Contains(t, body, "Equal Share per Person: ₹25.00")
	assert.Contains(t, body, "Total transactions needed: 3")
	assert.Contains(t, body, "<li>B should pay A ₹25.00</li>")
	assert.Contains(t, body, "<li>D should pay A ₹25.00</li>")
	assert.Less(t, strings.Index(body, "B should pay"), strings.Index(body, "C should pay"))
	assert.Contains(t, body, "&#43;75.00", "html/template escapes the plus sign")
}

func TestCalculate_Settled(t *testing.T) {
	server := setupTestServer(t)

	status, body := postForm(t, server, url.Values{
		"name":   {"A", "B"},
		"amount": {"0", "0"},
	})

	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Everyone is settled! No payments needed.")
}

func TestCalculate_EscapesNames(t *testing.T) {
	server := setupTestServer(t)

	status, body := postForm(t, server, url.Values{
		"name":   {"<b>A</b>", "B"},
		"amount": {"10", "0"},
	})

	require.Equal(t, http.StatusOK, status)
	assert.NotContains(t, body, "<b>A</b>")
	assert.Contains(t, body, "&lt;b&gt;A&lt;/b&gt;")
}

func TestCalculate_BadInput(t *testing.T) {
	server := setupTestServer(t)

	tests := []struct {
		name string
		form url.Values
	}{
		{"non-numeric amount", url.Values{"name": {"A"}, "amount": {"ten"}}},
		{"missing amount", url.Values{"name": {"A", "B"}, "amount": {"10"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := postForm(t, server, tt.form)
			assert.Equal(t, http.StatusBadRequest, status)
		})
	}
}

func TestCalculate_WrongMethod(t *testing.T) {
	server := setupTestServer(t)

	resp, err := http.Get(server.URL + "/calculate")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
