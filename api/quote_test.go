package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetQuoteFromService(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"q":"Dream big and dare to fail.","a":"Norman Vaughan"}]`))
	}))
	defer server.Close()

	prev := QuoteURL
	QuoteURL = server.URL
	defer func() { QuoteURL = prev }()

	quote := GetQuote(context.Background())
	assert.Equal(t, "Dream big and dare to fail. — Norman Vaughan", quote)
}

func TestGetQuoteFallsBackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	prev := QuoteURL
	QuoteURL = server.URL
	defer func() { QuoteURL = prev }()

	quote := GetQuote(context.Background())
	assert.NotEmpty(t, quote)
	assert.Contains(t, fallbackQuotes, quote)
}

func TestGetQuoteFallsBackOnUnreachableService(t *testing.T) {
	prev := QuoteURL
	QuoteURL = "http://127.0.0.1:1/nope"
	defer func() { QuoteURL = prev }()

	quote := GetQuote(context.Background())
	assert.Contains(t, fallbackQuotes, quote)
}

func TestGetInsultFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	prev := InsultURL
	InsultURL = server.URL
	defer func() { InsultURL = prev }()

	assert.Equal(t, "you're lucky, the roast machine broke.", GetInsult(context.Background()))
}

func TestGetInsultFromService(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"insult":"A very mild insult."}`))
	}))
	defer server.Close()

	prev := InsultURL
	InsultURL = server.URL
	defer func() { InsultURL = prev }()

	assert.Equal(t, "A very mild insult.", GetInsult(context.Background()))
}

func TestGetComplimentUsesAdviceFallback(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer primary.Close()
	secondary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"slip":{"advice":"Drink water."}}`))
	}))
	defer secondary.Close()

	prevC, prevA := ComplimentURL, AdviceURL
	ComplimentURL = primary.URL
	AdviceURL = secondary.URL
	defer func() { ComplimentURL, AdviceURL = prevC, prevA }()

	got := GetCompliment(context.Background())
	assert.Contains(t, got, "Drink water.")
	assert.Contains(t, got, "you're awesome")
}

func TestGetComplimentLocalFallback(t *testing.T) {
	prevC, prevA := ComplimentURL, AdviceURL
	ComplimentURL = "http://127.0.0.1:1/nope"
	AdviceURL = "http://127.0.0.1:1/nope"
	defer func() { ComplimentURL, AdviceURL = prevC, prevA }()

	assert.Contains(t, fallbackCompliments, GetCompliment(context.Background()))
}
