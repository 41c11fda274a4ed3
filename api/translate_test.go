package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateParsesSegments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "es", r.URL.Query().Get("tl"))
		assert.Equal(t, "auto", r.URL.Query().Get("sl"))
		w.Write([]byte(`[[["Buenos ","Good ",null,null,10],["días","morning",null,null,10]],null,"en"]`))
	}))
	defer server.Close()

	prev := TranslateURL
	TranslateURL = server.URL
	defer func() { TranslateURL = prev }()

	got, err := Translate(context.Background(), "es", "Good morning")
	require.NoError(t, err)
	assert.Equal(t, "Buenos días", got)
}

func TestTranslateSurfacesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	prev := TranslateURL
	TranslateURL = server.URL
	defer func() { TranslateURL = prev }()

	_, err := Translate(context.Background(), "es", "hello")
	assert.Error(t, err)
}

func TestTranslateRejectsEmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[],null,"en"]`))
	}))
	defer server.Close()

	prev := TranslateURL
	TranslateURL = server.URL
	defer func() { TranslateURL = prev }()

	_, err := Translate(context.Background(), "es", "hello")
	assert.Error(t, err)
}
