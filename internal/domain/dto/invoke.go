package dto

import "encoding/json"

// Status values carried by InvokeReply.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// InvokeMessage is one command call sent over the websocket channel.
//
// ID is echoed back on the reply so the caller can match replies to calls.
type InvokeMessage struct {
	ID      string          `json:"id,omitempty"`
	Cmd     string          `json:"cmd"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// InvokeReply answers one InvokeMessage. Exactly one of Data or Error is set.
type InvokeReply struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

// CommandList is the body of GET /api/v1/commands.
type CommandList struct {
	Commands []string `json:"commands" example:"get_financial_metrics"`
}
