//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"mime"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// AssertSuccessResponse checks the status and, for 2xx responses, decodes the body into target.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String()) {
		return
	}
	if target == nil || expectedStatus < 200 || expectedStatus >= 300 {
		return
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "decode response: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the error message contains msg.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, msg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String())

	var body errorBody
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "decode error response: %s", w.Body.String()) {
		return
	}
	if msg != "" {
		assert.Contains(t, body.Error.Message, msg)
	}
}

// AssertAttachment checks a file download and returns its body.
func AssertAttachment(t *testing.T, w *httptest.ResponseRecorder, contentType, filename string) []byte {
	t.Helper()

	require.Equal(t, 200, w.Code, "response: %s", w.Body.String())
	assert.Equal(t, contentType, w.Header().Get("Content-Type"))

	disposition, params, err := mime.ParseMediaType(w.Header().Get("Content-Disposition"))
	require.NoError(t, err)
	assert.Equal(t, "attachment", disposition)
	if filename != "" {
		assert.Equal(t, filename, params["filename"])
	}
	return w.Body.Bytes()
}
