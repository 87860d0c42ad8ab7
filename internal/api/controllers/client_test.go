package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"safesteps/internal/capability"
)

func TestClientMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(ClientMiddleware())
	var got capability.Client
	r.GET("/", func(c *gin.Context) { got = requestClient(c) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)")
	req.Header.Set(capability.Header, "share, speech-recognition")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, got.IsTouch())
	assert.True(t, got.Has(capability.Share))
	assert.True(t, got.Has(capability.SpeechRecognition))
	assert.False(t, got.Has(capability.SpeechSynthesis))
}

func TestRequestClient_WithoutMiddleware(t *testing.T) {
	r := gin.New()
	var got capability.Client
	r.GET("/", func(c *gin.Context) { got = requestClient(c) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(capability.Header, "share")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.False(t, got.Has(capability.Share))
}
