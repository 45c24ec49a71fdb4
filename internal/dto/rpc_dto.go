package dto

// JsonRpcRequest is the inbound envelope. Params stays an open mapping:
// callers disagree on shapes and each handler digs out what it understands.
type JsonRpcRequest struct {
	JsonRpc string                 `json:"jsonrpc"`
	Method  string                 `json:"method"`
	Params  map[string]interface{} `json:"params,omitempty"`
	Id      string                 `json:"id,omitempty"`
}

type RpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type JsonRpcResponse struct {
	JsonRpc string      `json:"jsonrpc"`
	Id      string      `json:"id,omitempty"`
	Result  interface{} `json:"result,omitempty"`
	Error   *RpcError   `json:"error,omitempty"`
}

const (
	RpcErrCodeMethodNotFound = -32601
	RpcErrCodeInvalidParams  = -32602
)

func NewRpcResult(id string, result interface{}) *JsonRpcResponse {
	return &JsonRpcResponse{JsonRpc: "2.0", Id: id, Result: result}
}

func NewRpcError(id string, code int, message string) *JsonRpcResponse {
	return &JsonRpcResponse{JsonRpc: "2.0", Id: id, Error: &RpcError{Code: code, Message: message}}
}

type TaskPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type TaskSendResult struct {
	TaskId string     `json:"task_id"`
	Status string     `json:"status"`
	Parts  []TaskPart `json:"parts"`
	// Pointer so an unsupplied context id serializes as an explicit null.
	ContextId *string `json:"context_id"`
}

type GoalCreatedResult struct {
	Message string `json:"message"`
}

type MessageReply struct {
	Text string `json:"text"`
}

type MessageSendResult struct {
	Message MessageReply `json:"message"`
}

type ProgressUpdateResult struct {
	Status string `json:"status"`
}
