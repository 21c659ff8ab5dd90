package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestRequestLogGin_LargeBodyReachesHandlerIntact(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// well past maxLogBodySize once encoded
	ids := make([]string, 200)
	for i := range ids {
		ids[i] = uuid.New().String()
	}
	payload := map[string]any{
		"user_ids":    ids,
		"update_data": map[string]any{"full_name": "Asha Rao"},
	}

	r := gin.New()
	r.Use(RequestLogGin(zap.NewNop(), nil))
	r.POST("/users", func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		got, ok := body["user_ids"].([]any)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"ids": len(got)})
	})

	rr := postJSON(t, r, "/users", payload)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		IDs int `json:"ids"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, len(ids), resp.IDs)
}

func TestRequestLogGin_LogFieldCapped(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	ids := make([]string, 200)
	for i := range ids {
		ids[i] = uuid.New().String()
	}

	r := gin.New()
	r.Use(RequestLogGin(logger, nil))
	r.POST("/users", func(c *gin.Context) { c.Status(http.StatusOK) })

	rr := postJSON(t, r, "/users", map[string]any{"user_ids": ids})
	require.Equal(t, http.StatusOK, rr.Code)

	entries := logs.All()
	require.Len(t, entries, 1)
	body, ok := entries[0].ContextMap()["body"].(string)
	require.True(t, ok)
	assert.Len(t, body, maxLogBodySize)
}
