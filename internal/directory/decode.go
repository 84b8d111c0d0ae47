package directory

import (
	"encoding/json"
	"fmt"
	"io"
)

// usersResponse mirrors the collaborator payload. Required fields are
// pointers so a missing field can be told apart from a zero value.
type usersResponse struct {
	Users *[]rawUser `json:"users"`
}

type rawUser struct {
	ID         *int    `json:"id"`
	FirstName  *string `json:"firstName"`
	MaidenName string  `json:"maidenName"`
	LastName   *string `json:"lastName"`
	Gender     *string `json:"gender"`
	Age        *int    `json:"age"`
	Image      string  `json:"image"`
	Company    struct {
		Title string `json:"title"`
	} `json:"company"`
	Address *struct {
		State   string  `json:"state"`
		Country *string `json:"country"`
	} `json:"address"`
}

// DecodeUsers parses a collaborator response body into typed records.
// Malformed JSON yields ErrLoadFailure; a well-formed body with a missing or
// invalid field yields ErrDecodeFailure and no records.
func DecodeUsers(r io.Reader) ([]UserRecord, error) {
	var resp usersResponse
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, fmt.Errorf("%w: parse response: %v", ErrLoadFailure, err)
	}
	if resp.Users == nil {
		return nil, fmt.Errorf("%w: missing users field", ErrDecodeFailure)
	}

	records := make([]UserRecord, 0, len(*resp.Users))
	seen := make(map[int]bool, len(*resp.Users))
	for i, raw := range *resp.Users {
		record, err := raw.toRecord()
		if err != nil {
			return nil, fmt.Errorf("%w: users[%d]: %v", ErrDecodeFailure, i, err)
		}
		if seen[record.ID] {
			return nil, fmt.Errorf("%w: users[%d]: duplicate id %d", ErrDecodeFailure, i, record.ID)
		}
		seen[record.ID] = true
		records = append(records, record)
	}
	return records, nil
}

func (u rawUser) toRecord() (UserRecord, error) {
	switch {
	case u.ID == nil:
		return UserRecord{}, fmt.Errorf("id is required")
	case u.FirstName == nil:
		return UserRecord{}, fmt.Errorf("firstName is required")
	case u.LastName == nil:
		return UserRecord{}, fmt.Errorf("lastName is required")
	case u.Gender == nil:
		return UserRecord{}, fmt.Errorf("gender is required")
	case u.Age == nil:
		return UserRecord{}, fmt.Errorf("age is required")
	case u.Address == nil || u.Address.Country == nil:
		return UserRecord{}, fmt.Errorf("address.country is required")
	}

	gender := Gender(*u.Gender)
	if !gender.Valid() {
		return UserRecord{}, fmt.Errorf("invalid gender %q", *u.Gender)
	}
	if *u.Age < 0 {
		return UserRecord{}, fmt.Errorf("negative age %d", *u.Age)
	}

	return UserRecord{
		ID:         *u.ID,
		FirstName:  *u.FirstName,
		MaidenName: u.MaidenName,
		LastName:   *u.LastName,
		Gender:     gender,
		Age:        *u.Age,
		Image:      u.Image,
		Title:      u.Company.Title,
		State:      u.Address.State,
		Country:    *u.Address.Country,
	}, nil
}
