package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set("request_id", "req-1")
	return c, w
}

func TestSuccessWritesEnvelope(t *testing.T) {
	c, w := testContext()

	Success(c, 0, []string{"a"}, "ok", Page{Count: 1})

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "req-1", body["request_id"])
	assert.Equal(t, map[string]any{"count": float64(1)}, body["meta"])
	assert.NotContains(t, body, "error")
}

func TestErrorAborts(t *testing.T) {
	c, w := testContext()

	resp := Error[any](c, 0, "bad", map[string]string{"id": "must be an integer"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.True(t, c.IsAborted())
	assert.JSONEq(t, `{"id":"must be an integer"}`, mustField(t, w, "error"))
}

func mustField(t *testing.T, w *httptest.ResponseRecorder, key string) string {
	t.Helper()
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return string(body[key])
}
