package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// RawUser builds a collaborator user object in the wire shape.
func RawUser(id int, firstName, gender string, age int, country string) map[string]interface{} {
	return map[string]interface{}{
		"id":         id,
		"firstName":  firstName,
		"maidenName": "",
		"lastName":   fmt.Sprintf("Last%d", id),
		"gender":     gender,
		"age":        age,
		"image":      fmt.Sprintf("https://example.test/icon/%d", id),
		"company":    map[string]interface{}{"title": "Engineer"},
		"address":    map[string]interface{}{"state": "State", "country": country},
	}
}

// UsersPayload wraps raw users in the collaborator response envelope.
func UsersPayload(users ...map[string]interface{}) map[string]interface{} {
	if users == nil {
		users = []map[string]interface{}{}
	}
	return map[string]interface{}{
		"users": users,
		"total": len(users),
		"skip":  0,
		"limit": len(users),
	}
}

// UsersSource is a fake collaborator that counts the requests it serves.
type UsersSource struct {
	*httptest.Server
	hits atomic.Int64
}

// NewUsersSource serves body with status on every request. A string body is
// written verbatim, anything else is JSON encoded.
func NewUsersSource(t *testing.T, status int, body interface{}) *UsersSource {
	t.Helper()

	src := &UsersSource{}
	src.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		src.hits.Add(1)
		if r.Method != http.MethodGet || r.URL.RawQuery != "" {
			t.Errorf("Expected bare GET, got %s %s", r.Method, r.URL.String())
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if raw, ok := body.(string); ok {
			w.Write([]byte(raw))
			return
		}
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(src.Close)
	return src
}

// Hits returns the number of requests served.
func (s *UsersSource) Hits() int {
	return int(s.hits.Load())
}
