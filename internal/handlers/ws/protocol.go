package ws

import (
	"encoding/json"

	"github.com/tavernkeep/companion-api/internal/errors"
)

// Request is the client-to-server command envelope. ID is echoed back so
// the client can pair responses with in-flight commands.
type Request struct {
	ID     string          `json:"id,omitempty"`
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data,omitempty"`
}

// Response is the server-to-client reply envelope. Exactly one of Data and
// Error is meaningful, selected by OK.
type Response struct {
	ID     string        `json:"id,omitempty"`
	Action string        `json:"action"`
	OK     bool          `json:"ok"`
	Data   any           `json:"data,omitempty"`
	Error  *ErrorPayload `json:"error,omitempty"`
}

// ErrorPayload carries the error taxonomy over the wire
type ErrorPayload struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

// EventBattleStarted is the unsolicited push sent to every connection when
// a battle broadcast arrives
const EventBattleStarted = "battle.started"

func okResponse(req *Request, data any) *Response {
	return &Response{ID: req.ID, Action: req.Action, OK: true, Data: data}
}

func errResponse(req *Request, err error) *Response {
	payload := &ErrorPayload{
		Code:    errors.GetCode(err).String(),
		Message: errors.GetMessage(err),
	}

	var domainErr *errors.Error
	if errors.As(err, &domainErr) {
		if fields, ok := domainErr.Meta["validation_errors"].(map[string][]string); ok {
			payload.Fields = fields
		}
	}

	return &Response{ID: req.ID, Action: req.Action, OK: false, Error: payload}
}
