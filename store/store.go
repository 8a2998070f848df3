package store

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"eventdesk/event"
)

// DynamoAPI is the subset of the DynamoDB client used by the Store. It is
// satisfied by *dynamodb.Client and lets tests inject a double without
// touching environment configuration.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// Store is the sole writer to the events table. It is reentrant and holds no
// state beyond the client and table handle; concurrent updates to the same
// record are last-write-wins per field set, with DynamoDB's single-item
// atomic update as the only consistency guarantee.
type Store struct {
	client DynamoAPI
	config Config
}

// New creates a new Store instance.
func New(client DynamoAPI, config Config) *Store {
	config.validate()
	return &Store{
		client: client,
		config: config,
	}
}

// eventKey builds the primary key for an event record.
func eventKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"eventId": &types.AttributeValueMemberS{Value: id},
	}
}

// opContext bounds a store operation with the configured timeout.
func (s *Store) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.config.Timeout)
}

// now returns the server timestamp for createdAt/updatedAt stamps.
// Nanosecond precision keeps updatedAt strictly increasing across
// back-to-back mutations.
func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// Create writes a full event record, assigning a generated eventId when the
// request leaves it empty and stamping createdAt = updatedAt. The put is
// unconditional: creating with an existing caller-supplied eventId
// overwrites the record, with no collision check.
func (s *Store) Create(ctx context.Context, req event.CreateRequest) (event.Event, error) {
	if err := req.Validate(); err != nil {
		return event.Event{}, err
	}

	id := req.EventID
	if id == "" {
		id = uuid.NewString()
	}
	ts := now()

	rec := event.Event{
		EventID:     id,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Capacity:    req.Capacity,
		Organizer:   req.Organizer,
		Status:      req.Status,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return event.Event{}, &StorageError{Op: "create", Err: err}
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.config.Table),
		Item:      item,
	})
	if err != nil {
		return event.Event{}, &StorageError{Op: "create", Err: err}
	}

	return rec, nil
}

// Get retrieves an event by id, returning nil when no record exists.
func (s *Store) Get(ctx context.Context, id string) (*event.Event, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.config.Table),
		Key:       eventKey(id),
	})
	if err != nil {
		return nil, &StorageError{Op: "get", Err: err}
	}
	if result.Item == nil {
		return nil, nil
	}

	var rec event.Event
	if err := attributevalue.UnmarshalMap(result.Item, &rec); err != nil {
		return nil, &StorageError{Op: "get", Err: err}
	}
	return &rec, nil
}

// List scans the full table, optionally filtered to records whose status
// equals statusFilter (exact match only). The filter is applied by DynamoDB
// after retrieval, so cost is O(table size) regardless of selectivity; there
// is no secondary index and no pagination surfaced to the caller.
func (s *Store) List(ctx context.Context, statusFilter string) ([]event.Event, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(s.config.Table),
	}
	if statusFilter != "" {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: statusFilter},
		}
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var records []event.Event
	paginator := dynamodb.NewScanPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, &StorageError{Op: "list", Err: err}
		}
		var batch []event.Event
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, &StorageError{Op: "list", Err: err}
		}
		records = append(records, batch...)
	}

	return records, nil
}

// Update applies a partial update to the record identified by id and returns
// the fully-updated record, or nil when no such record exists (the update is
// a no-op in that case, never a partial write). An empty field set behaves
// as Get and does not touch updatedAt. Otherwise the mutation stamps
// updatedAt plus every supplied field in a single atomic UpdateItem.
func (s *Store) Update(ctx context.Context, id string, req event.UpdateRequest) (*event.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return s.Get(ctx, id)
	}

	expr, names, values, err := buildUpdateExpression(fields, now())
	if err != nil {
		return nil, &StorageError{Op: "update", Err: err}
	}
	names["#id"] = "eventId"

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	result, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.config.Table),
		Key:                       eventKey(id),
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return nil, nil
		}
		return nil, &StorageError{Op: "update", Err: err}
	}

	var rec event.Event
	if err := attributevalue.UnmarshalMap(result.Attributes, &rec); err != nil {
		return nil, &StorageError{Op: "update", Err: err}
	}
	return &rec, nil
}

// Delete removes the record if present and reports whether it existed.
// Deleting a non-existent id is not an error.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	result, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(s.config.Table),
		Key:          eventKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, &StorageError{Op: "delete", Err: err}
	}
	return len(result.Attributes) > 0, nil
}
