// Package event defines the event record shapes and their validation rules.
package event

// Status is the lifecycle state of an event.
type Status string

// Valid event statuses. No transition rules exist between them; any status
// may change to any other.
const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusActive    Status = "active"
)

// Statuses lists all valid statuses in a fixed order, used when reporting
// enum violations.
var Statuses = []Status{
	StatusDraft,
	StatusPublished,
	StatusCancelled,
	StatusCompleted,
	StatusActive,
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Event is the full persisted record as stored in DynamoDB and returned to
// callers. All fields are always populated on a stored record. CreatedAt and
// UpdatedAt are RFC 3339 timestamps stamped by the server, never accepted
// from client input.
type Event struct {
	EventID     string `json:"eventId" dynamodbav:"eventId"`
	Title       string `json:"title" dynamodbav:"title"`
	Description string `json:"description" dynamodbav:"description"`
	Date        string `json:"date" dynamodbav:"date"`
	Location    string `json:"location" dynamodbav:"location"`
	Capacity    int    `json:"capacity" dynamodbav:"capacity"`
	Organizer   string `json:"organizer" dynamodbav:"organizer"`
	Status      Status `json:"status" dynamodbav:"status"`
	CreatedAt   string `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt   string `json:"updatedAt" dynamodbav:"updatedAt"`
}

// CreateRequest is the payload for creating an event. Every field is
// required except EventID; when EventID is empty the store generates one.
// A caller-supplied EventID is honored verbatim, with no collision check
// against existing records.
type CreateRequest struct {
	EventID     string `json:"eventId,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity"`
	Organizer   string `json:"organizer"`
	Status      Status `json:"status"`
}

// Validate checks every field against its constraints, returning the first
// *ValidationError found. EventID is not validated; it is either empty or
// taken verbatim.
func (r CreateRequest) Validate() error {
	if err := checkLength("title", r.Title, 1, 200); err != nil {
		return err
	}
	if err := checkLength("description", r.Description, 0, 1000); err != nil {
		return err
	}
	if err := checkLength("date", r.Date, 1, -1); err != nil {
		return err
	}
	if err := checkLength("location", r.Location, 1, 200); err != nil {
		return err
	}
	if err := checkCapacity(r.Capacity); err != nil {
		return err
	}
	if err := checkLength("organizer", r.Organizer, 1, 100); err != nil {
		return err
	}
	return checkStatus(r.Status)
}

// UpdateRequest is a partial update payload. Nil fields are left untouched
// in storage. JSON cannot distinguish an absent key from an explicit null;
// both decode to nil and uniformly mean "do not update".
type UpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	Capacity    *int    `json:"capacity"`
	Organizer   *string `json:"organizer"`
	Status      *Status `json:"status"`
}

// Validate checks only the fields that were supplied.
func (r UpdateRequest) Validate() error {
	if r.Title != nil {
		if err := checkLength("title", *r.Title, 1, 200); err != nil {
			return err
		}
	}
	if r.Description != nil {
		if err := checkLength("description", *r.Description, 0, 1000); err != nil {
			return err
		}
	}
	if r.Date != nil {
		if err := checkLength("date", *r.Date, 1, -1); err != nil {
			return err
		}
	}
	if r.Location != nil {
		if err := checkLength("location", *r.Location, 1, 200); err != nil {
			return err
		}
	}
	if r.Capacity != nil {
		if err := checkCapacity(*r.Capacity); err != nil {
			return err
		}
	}
	if r.Organizer != nil {
		if err := checkLength("organizer", *r.Organizer, 1, 100); err != nil {
			return err
		}
	}
	if r.Status != nil {
		if err := checkStatus(*r.Status); err != nil {
			return err
		}
	}
	return nil
}

// Fields returns only the supplied fields, keyed by stored attribute name.
// An empty map means the update is a no-op.
func (r UpdateRequest) Fields() map[string]any {
	fields := make(map[string]any)
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Date != nil {
		fields["date"] = *r.Date
	}
	if r.Location != nil {
		fields["location"] = *r.Location
	}
	if r.Capacity != nil {
		fields["capacity"] = *r.Capacity
	}
	if r.Organizer != nil {
		fields["organizer"] = *r.Organizer
	}
	if r.Status != nil {
		fields["status"] = string(*r.Status)
	}
	return fields
}
