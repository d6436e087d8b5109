package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func performRequest(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handler(c)
	return w
}

func TestSuccess(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		Success(c, gin.H{"id": 1})
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, muốn %d", w.Code, http.StatusOK)
	}

	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("không parse được body: %v", err)
	}
	if body.Code != 1 {
		t.Errorf("code = %d, muốn 1", body.Code)
	}
	if body.Mess != "Thành công" {
		t.Errorf("mess = %q", body.Mess)
	}
}

func TestConflictDates(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		ConflictDates(c, []string{"2024-03-11", "2024-03-12"})
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, muốn %d", w.Code, http.StatusBadRequest)
	}

	var body struct {
		Code int    `json:"code"`
		Mess string `json:"mess"`
		Data struct {
			ConflictDates []string `json:"conflictDates"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("không parse được body: %v", err)
	}
	if body.Code != 0 {
		t.Errorf("code = %d, muốn 0", body.Code)
	}
	if len(body.Data.ConflictDates) != 2 || body.Data.ConflictDates[0] != "2024-03-11" {
		t.Errorf("conflictDates = %v", body.Data.ConflictDates)
	}
}

func TestErrorHelpers(t *testing.T) {
	cases := []struct {
		name    string
		handler gin.HandlerFunc
		status  int
	}{
		{"server error", func(c *gin.Context) { ServerError(c) }, http.StatusInternalServerError},
		{"unauthorized", func(c *gin.Context) { Unauthorized(c) }, http.StatusUnauthorized},
		{"forbidden", func(c *gin.Context) { Forbidden(c) }, http.StatusForbidden},
		{"not found", func(c *gin.Context) { NotFound(c) }, http.StatusNotFound},
		{"bad request", func(c *gin.Context) { BadRequest(c, "sai dữ liệu") }, http.StatusBadRequest},
		{"conflict", func(c *gin.Context) { Conflict(c) }, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := performRequest(tc.handler)
			if w.Code != tc.status {
				t.Errorf("status = %d, muốn %d", w.Code, tc.status)
			}
		})
	}
}
