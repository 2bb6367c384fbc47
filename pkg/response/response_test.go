package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgErrors "timesheet-assistant/pkg/errors"
	"timesheet-assistant/pkg/response"
)

func performRequest(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handler(c)
	return w
}

func TestOK(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		response.OK(c, map[string]string{"hello": "world"})
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if resp.ErrorCode != 0 {
		t.Errorf("expected error_code 0, got %d", resp.ErrorCode)
	}
	if resp.Message != response.MessageSuccess {
		t.Errorf("expected message %q, got %q", response.MessageSuccess, resp.Message)
	}
}

func TestError(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		response.Error(c, errors.New("bad input"), nil)
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if resp.Message != "bad input" {
		t.Errorf("expected message %q, got %q", "bad input", resp.Message)
	}
}

func TestErrorWithHTTPError(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "calendar unavailable"), nil)
	})

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if resp.Message != "calendar unavailable" {
		t.Errorf("expected mapped message, got %q", resp.Message)
	}
}

func TestInternalErrorHidesDetail(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		response.InternalError(c, errors.New("secret db dsn"))
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if resp.Message != response.DefaultErrorMessage {
		t.Errorf("internal error must not leak details, got %q", resp.Message)
	}
}
