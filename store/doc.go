// Package store provides the DynamoDB persistence adapter for event records.
//
// The store translates model operations into calls against a single table
// keyed by eventId. Its dense part is the dynamic partial-update mechanism:
// a sparse set of changed fields becomes a SET expression that always stamps
// updatedAt and binds every attribute name and value through placeholders,
// so reserved words in DynamoDB's expression language never need special
// casing.
//
// # Operations
//
//   - [Store.Create] - full-record put, generating eventId when absent
//   - [Store.Get] - point lookup; absent records return nil, not an error
//   - [Store.List] - full scan with an optional status equality filter
//   - [Store.Update] - atomic partial update returning the new record
//   - [Store.Delete] - idempotent hard delete reporting prior existence
//
// # Failure semantics
//
// Underlying DynamoDB failures surface as [*StorageError] carrying the
// store's diagnostic message. The adapter never retries; retries, if
// desired, belong to the caller. A missing record is an explicit nil/false
// outcome at this layer, never an error.
//
// Every operation runs under the bounded timeout in [Config]. The adapter is
// stateless aside from the table handle and coordinates nothing across
// requests; two concurrent updates to the same id race and the store's
// single-record atomic update decides the winner.
package store
