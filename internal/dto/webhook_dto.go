package dto

type TelexRequest struct {
	Id         string `json:"id,omitempty"`
	Message    string `json:"message"`
	Sender     string `json:"sender,omitempty"`
	ChannelId  string `json:"channel_id,omitempty"`
	WorkflowId string `json:"workflow_id,omitempty"`
}

type TelexResponse struct {
	Message string `json:"message"`
}

type AgentCard struct {
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Capabilities []string          `json:"capabilities"`
	A2AVersion   string            `json:"a2a_version"`
	Endpoints    map[string]string `json:"endpoints"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Agent   string `json:"agent"`
	Version string `json:"version,omitempty"`
}
