package httpkit

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"leadscore_backend/platform/apperr"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	return c, rec
}

func TestHandleErrorNil(t *testing.T) {
	c, _ := testContext(t)

	if HandleError(c, nil) {
		t.Fatal("nil error must not be handled")
	}
}

func TestHandleErrorTypedKinds(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{apperr.Validation("Consent is required"), http.StatusBadRequest},
		{apperr.Unprocessable("unknown age group"), http.StatusUnprocessableEntity},
		{apperr.NotFound("lead not found"), http.StatusNotFound},
		{fmt.Errorf("record: %w", apperr.Validation("Invalid email format")), http.StatusBadRequest},
	}

	for _, tc := range cases {
		c, rec := testContext(t)
		if !HandleError(c, tc.err) {
			t.Fatalf("%v: expected handled", tc.err)
		}
		if rec.Code != tc.status {
			t.Fatalf("%v: expected status %d, got %d", tc.err, tc.status, rec.Code)
		}
	}
}

func TestHandleErrorPreservesDetails(t *testing.T) {
	c, rec := testContext(t)

	err := apperr.Unprocessable("unknown age group").WithDetails(map[string]string{
		"field": "age_group",
		"value": "55+",
	})
	HandleError(c, err)

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	details, ok := resp.Details.(map[string]any)
	if !ok || details["field"] != "age_group" || details["value"] != "55+" {
		t.Fatalf("details not preserved: %#v", resp.Details)
	}
}

func TestHandleErrorUntypedIsInternal(t *testing.T) {
	c, rec := testContext(t)

	HandleError(c, errors.New("dial tcp: connection refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for untyped error, got %d", rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Error != "internal error" {
		t.Fatalf("untyped error message must not leak, got %q", resp.Error)
	}
}
