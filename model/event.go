package model

type EventSchema string

const (
	EventSchemaUser          EventSchema = "USER"
	EventSchemaBook          EventSchema = "BOOK"
	EventSchemaPayment       EventSchema = "PAYMENT"
	EventSchemaPaymentMethod EventSchema = "PAYMENT_METHOD"
)

type EventAction string

const (
	EventActionCreate EventAction = "CREATE"
	EventActionRead   EventAction = "READ"
	EventActionUpdate EventAction = "UPDATE"
	EventActionDelete EventAction = "DELETE"
)

// Event is an audit record written after every state-changing operation.
type Event struct {
	DTO
	Schema      EventSchema `json:"schema"`
	Action      EventAction `json:"action"`
	SchemaID    *uint       `json:"schemaId,omitempty"`
	Actor       uint        `json:"actor"`
	Description string      `json:"description"`
}
