package directory

import (
	"errors"
	"strings"
	"testing"
)

const validUsersBody = `{
  "users": [
    {
      "id": 1,
      "firstName": "Emily",
      "lastName": "Johnson",
      "maidenName": "Smith",
      "age": 28,
      "gender": "female",
      "image": "https://dummyjson.com/icon/emilys/128",
      "address": {"state": "Mississippi", "country": "United States"},
      "company": {"title": "Sales Manager"}
    },
    {
      "id": 2,
      "firstName": "Michael",
      "lastName": "Williams",
      "maidenName": "",
      "age": 35,
      "gender": "male",
      "image": "https://dummyjson.com/icon/michaelw/128",
      "address": {"state": "Alabama", "country": "United States"},
      "company": {"title": "Support Specialist"}
    }
  ],
  "total": 2,
  "skip": 0,
  "limit": 2
}`

func TestDecodeUsers_Success(t *testing.T) {
	records, err := DecodeUsers(strings.NewReader(validUsersBody))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	want := UserRecord{
		ID:         1,
		FirstName:  "Emily",
		MaidenName: "Smith",
		LastName:   "Johnson",
		Gender:     GenderFemale,
		Age:        28,
		Image:      "https://dummyjson.com/icon/emilys/128",
		Title:      "Sales Manager",
		State:      "Mississippi",
		Country:    "United States",
	}
	if records[0] != want {
		t.Errorf("Expected %+v, got %+v", want, records[0])
	}
	if records[1].ID != 2 {
		t.Errorf("Expected collaborator order to be kept, got id %d second", records[1].ID)
	}
}

func TestDecodeUsers_EmptyCollection(t *testing.T) {
	records, err := DecodeUsers(strings.NewReader(`{"users": []}`))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected no records, got %d", len(records))
	}
}

func TestDecodeUsers_MalformedJSON(t *testing.T) {
	_, err := DecodeUsers(strings.NewReader(`{"users": [`))
	if !errors.Is(err, ErrLoadFailure) {
		t.Errorf("Expected ErrLoadFailure, got %v", err)
	}
	if errors.Is(err, ErrDecodeFailure) {
		t.Error("Malformed JSON should not be reported as a decode failure")
	}
}

func TestDecodeUsers_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing users", `{"total": 0}`, "missing users field"},
		{"null users", `{"users": null}`, "missing users field"},
		{"missing id", `{"users":[{"firstName":"A","lastName":"B","gender":"male","age":1,"address":{"country":"X"}}]}`, "id is required"},
		{"missing firstName", `{"users":[{"id":1,"lastName":"B","gender":"male","age":1,"address":{"country":"X"}}]}`, "firstName is required"},
		{"missing lastName", `{"users":[{"id":1,"firstName":"A","gender":"male","age":1,"address":{"country":"X"}}]}`, "lastName is required"},
		{"missing gender", `{"users":[{"id":1,"firstName":"A","lastName":"B","age":1,"address":{"country":"X"}}]}`, "gender is required"},
		{"missing age", `{"users":[{"id":1,"firstName":"A","lastName":"B","gender":"male","address":{"country":"X"}}]}`, "age is required"},
		{"missing address", `{"users":[{"id":1,"firstName":"A","lastName":"B","gender":"male","age":1}]}`, "address.country is required"},
		{"missing country", `{"users":[{"id":1,"firstName":"A","lastName":"B","gender":"male","age":1,"address":{"state":"S"}}]}`, "address.country is required"},
		{"unknown gender", `{"users":[{"id":1,"firstName":"A","lastName":"B","gender":"other","age":1,"address":{"country":"X"}}]}`, `invalid gender "other"`},
		{"negative age", `{"users":[{"id":1,"firstName":"A","lastName":"B","gender":"male","age":-3,"address":{"country":"X"}}]}`, "negative age"},
		{"duplicate id", `{"users":[{"id":1,"firstName":"A","lastName":"B","gender":"male","age":1,"address":{"country":"X"}},{"id":1,"firstName":"C","lastName":"D","gender":"female","age":2,"address":{"country":"Y"}}]}`, "duplicate id 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := DecodeUsers(strings.NewReader(tt.body))
			if !errors.Is(err, ErrDecodeFailure) {
				t.Fatalf("Expected ErrDecodeFailure, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error to mention %q, got %v", tt.want, err)
			}
			if records != nil {
				t.Errorf("Expected no records on failure, got %d", len(records))
			}
		})
	}
}

func TestDecodeUsers_WrongFieldType(t *testing.T) {
	_, err := DecodeUsers(strings.NewReader(`{"users":[{"id":"one"}]}`))
	if !errors.Is(err, ErrLoadFailure) {
		t.Errorf("Expected ErrLoadFailure for a type mismatch, got %v", err)
	}
}
