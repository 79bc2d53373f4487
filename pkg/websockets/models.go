package websockets

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeStatusChange is sent when a record changes status without a client request.
	MessageTypeStatusChange MessageType = "statusChange"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload any         `json:"payload"`
}

// StatusChangePayload is the payload for a statusChange message.
type StatusChangePayload struct {
	Resource  string `json:"resource"`
	Id        string `json:"id"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// StatusChange builds a statusChange message.
func StatusChange(resource, id, status, timestamp string) Message {
	return Message{
		Type:    MessageTypeStatusChange,
		Payload: StatusChangePayload{Resource: resource, Id: id, Status: status, Timestamp: timestamp},
	}
}
