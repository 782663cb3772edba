package helper

import (
	"github.com/quantrananh2304/1682-server/database"
	"github.com/quantrananh2304/1682-server/logger"
	"github.com/quantrananh2304/1682-server/model"
)

// RecordEvent writes an audit row. Audit is best effort: a failed write is
// logged and never fails the operation that produced it.
func RecordEvent(schema model.EventSchema, action model.EventAction, schemaID *uint, actor uint, description string) {
	event := model.Event{
		Schema:      schema,
		Action:      action,
		SchemaID:    schemaID,
		Actor:       actor,
		Description: description,
	}
	if err := database.DB.Create(&event).Error; err != nil {
		logger.Errorw("failed to record event",
			"schema", schema, "action", action, "description", description, "error", err)
	}
}
