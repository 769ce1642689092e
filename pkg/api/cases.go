package api

import "encoding/json"

// Заголовки и параметры запросов REST API кейсов
const (
	// HeaderSessionID идентификатор сессии клиента, передается в каждом запросе
	HeaderSessionID = "X-Session-Id"
	// QueryCaseType фильтр по типу кейса
	QueryCaseType = "caseType"
	// QueryCaseVersion версия кейса, на которой основана запись
	QueryCaseVersion = "caseVersion"
)

// Push topics
const (
	TopicCaseCreate = "case/create"
	TopicCaseUpdate = "case/update"
	TopicCaseDelete = "case/delete"
)

// PushEnvelope кадр push-уведомления, передаваемый по WebSocket
type PushEnvelope struct {
	Topic string          `json:"topic"`
	Body  json.RawMessage `json:"body"`
}

// PushMessage тело push-уведомления о кейсе.
// Case содержит снимок кейса в том же JSON-представлении, что и REST API;
// может отсутствовать, тогда клиент запрашивает кейс по CaseID.
type PushMessage struct {
	Case      json.RawMessage `json:"case,omitempty"`
	CaseID    string          `json:"caseId"`
	SessionID string          `json:"sessionId"`
}
