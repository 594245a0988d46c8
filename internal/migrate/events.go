package migrate

import (
	"context"
	"fmt"
)

type auditEvent map[string]interface{}

func (m *Migrator) newAuditEvent(action string, err error) auditEvent {
	event := auditEvent{}

	event["eventType"] = m.config.Events.EventType
	event["id"] = m.runId.String()
	event["action"] = action
	event["spaceId"] = m.config.Export.SpaceID
	event["error"] = err != nil
	if err != nil {
		event["errorMessage"] = err.Error()
	}

	return event
}

func (m *Migrator) startEventBatch() error {
	err := m.nrClient.Events.BatchMode(
		context.Background(),
		m.config.Events.AccountId,
	)
	if err != nil {
		return fmt.Errorf("start event batch mode: %s", err)
	}

	return nil
}

func (m *Migrator) pushEvent(event auditEvent) {
	if !m.config.Events.Enabled || m.nrClient == nil {
		return
	}

	if err := m.nrClient.Events.EnqueueEvent(context.Background(), event); err != nil {
		m.log.Warnf("failed to push event: %s", err)
	}
}

func (m *Migrator) flushEvents() {
	if !m.config.Events.Enabled || m.nrClient == nil {
		return
	}

	if err := m.nrClient.Events.Flush(); err != nil {
		m.log.Warnf("failed to flush events: %s", err)
	}
}
