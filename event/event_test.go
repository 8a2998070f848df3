package event_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"eventdesk/event"
)

func validCreateRequest() event.CreateRequest {
	return event.CreateRequest{
		Title:       "Launch",
		Description: "",
		Date:        "2025-01-01",
		Location:    "HQ",
		Capacity:    50,
		Organizer:   "Ops",
		Status:      event.StatusDraft,
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range event.Statuses {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []event.Status{"", "bogus", "Draft", "DRAFT"} {
		if s.Valid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestCreateRequestValidate_Valid(t *testing.T) {
	req := validCreateRequest()
	if err := req.Validate(); err != nil {
		t.Errorf("expected valid request, got %v", err)
	}

	// Empty description is allowed; empty eventId is allowed.
	req.Description = ""
	req.EventID = ""
	if err := req.Validate(); err != nil {
		t.Errorf("expected valid request, got %v", err)
	}
}

func TestCreateRequestValidate_SingleViolation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*event.CreateRequest)
		field   string
		message string
	}{
		{
			name:   "empty title",
			mutate: func(r *event.CreateRequest) { r.Title = "" },
			field:  "title",
		},
		{
			name:    "title too long",
			mutate:  func(r *event.CreateRequest) { r.Title = strings.Repeat("x", 201) },
			field:   "title",
			message: "title must be at most 200 characters",
		},
		{
			name:   "description too long",
			mutate: func(r *event.CreateRequest) { r.Description = strings.Repeat("x", 1001) },
			field:  "description",
		},
		{
			name:   "empty date",
			mutate: func(r *event.CreateRequest) { r.Date = "" },
			field:  "date",
		},
		{
			name:   "empty location",
			mutate: func(r *event.CreateRequest) { r.Location = "" },
			field:  "location",
		},
		{
			name:   "location too long",
			mutate: func(r *event.CreateRequest) { r.Location = strings.Repeat("x", 201) },
			field:  "location",
		},
		{
			name:    "zero capacity",
			mutate:  func(r *event.CreateRequest) { r.Capacity = 0 },
			field:   "capacity",
			message: "capacity must be greater than 0",
		},
		{
			name:   "negative capacity",
			mutate: func(r *event.CreateRequest) { r.Capacity = -5 },
			field:  "capacity",
		},
		{
			name:   "empty organizer",
			mutate: func(r *event.CreateRequest) { r.Organizer = "" },
			field:  "organizer",
		},
		{
			name:   "organizer too long",
			mutate: func(r *event.CreateRequest) { r.Organizer = strings.Repeat("x", 101) },
			field:  "organizer",
		},
		{
			name:    "bogus status",
			mutate:  func(r *event.CreateRequest) { r.Status = "bogus" },
			field:   "status",
			message: "status must be one of: draft, published, cancelled, completed, active",
		},
		{
			name:   "empty status",
			mutate: func(r *event.CreateRequest) { r.Status = "" },
			field:  "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			err := req.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}

			var vErr *event.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if vErr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, vErr.Field)
			}
			if !strings.Contains(vErr.Message, tt.field) {
				t.Errorf("expected message to name field %q, got %q", tt.field, vErr.Message)
			}
			if tt.message != "" && vErr.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, vErr.Message)
			}
		})
	}
}

func TestCreateRequestValidate_LengthCountsCharacters(t *testing.T) {
	// Bounds are on character count, not byte count. 100 three-byte runes
	// are 300 bytes but well within the 200-character title limit.
	req := validCreateRequest()
	req.Title = strings.Repeat("日", 100)
	if err := req.Validate(); err != nil {
		t.Errorf("expected 100-character multi-byte title to be valid, got %v", err)
	}

	req.Title = strings.Repeat("日", 201)
	err := req.Validate()
	var vErr *event.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if vErr.Message != "title must be at most 200 characters" {
		t.Errorf("unexpected message %q", vErr.Message)
	}
}

func TestUpdateRequestValidate_Empty(t *testing.T) {
	var req event.UpdateRequest
	if err := req.Validate(); err != nil {
		t.Errorf("expected empty update to be valid, got %v", err)
	}
	if len(req.Fields()) != 0 {
		t.Errorf("expected no fields, got %v", req.Fields())
	}
}

func TestUpdateRequestValidate_OnlySuppliedFieldsChecked(t *testing.T) {
	// Title is invalid but absent fields must not be validated at all.
	title := ""
	req := event.UpdateRequest{Title: &title}

	err := req.Validate()
	var vErr *event.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if vErr.Field != "title" {
		t.Errorf("expected field 'title', got %q", vErr.Field)
	}

	// A single valid supplied field passes even though every other field
	// would fail a full-payload validation.
	capacity := 75
	req = event.UpdateRequest{Capacity: &capacity}
	if err := req.Validate(); err != nil {
		t.Errorf("expected valid update, got %v", err)
	}
}

func TestUpdateRequestFields(t *testing.T) {
	title := "Launch"
	capacity := 75
	status := event.StatusCancelled
	req := event.UpdateRequest{
		Title:    &title,
		Capacity: &capacity,
		Status:   &status,
	}

	fields := req.Fields()
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d: %v", len(fields), fields)
	}
	if fields["title"] != "Launch" {
		t.Errorf("expected title 'Launch', got %v", fields["title"])
	}
	if fields["capacity"] != 75 {
		t.Errorf("expected capacity 75, got %v", fields["capacity"])
	}
	if fields["status"] != "cancelled" {
		t.Errorf("expected status 'cancelled', got %v", fields["status"])
	}
	if _, ok := fields["description"]; ok {
		t.Error("expected absent description to be excluded")
	}
}

func TestUpdateRequestDecode_AbsentAndNullAreUniform(t *testing.T) {
	// JSON cannot distinguish a missing key from an explicit null; both
	// decode to nil and mean "do not update".
	var absent event.UpdateRequest
	if err := json.Unmarshal([]byte(`{"capacity": 75}`), &absent); err != nil {
		t.Fatal(err)
	}

	var null event.UpdateRequest
	if err := json.Unmarshal([]byte(`{"capacity": 75, "title": null}`), &null); err != nil {
		t.Fatal(err)
	}

	if absent.Title != nil || null.Title != nil {
		t.Error("expected nil Title for both absent and null")
	}
	if absent.Capacity == nil || *absent.Capacity != 75 {
		t.Error("expected capacity 75 to be supplied")
	}
	if len(null.Fields()) != 1 {
		t.Errorf("expected a single supplied field, got %v", null.Fields())
	}
}
