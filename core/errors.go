package core

import "fmt"

// NodeError represents errors that occur during node execution.
type NodeError struct {
	Node    string `json:"node"`              // Name of the node that failed
	Message string `json:"message"`           // Error message
	Code    string `json:"code"`              // Error code for categorization
	Details any    `json:"details,omitempty"` // Additional error details
}

func (e *NodeError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("node error [%s] in %s: %s", e.Code, e.Node, e.Message)
	}
	return fmt.Sprintf("node error in %s: %s", e.Node, e.Message)
}

// NewNodeError creates a new NodeError with the specified details.
func NewNodeError(node, message, code string) *NodeError {
	return &NodeError{
		Node:    node,
		Message: message,
		Code:    code,
	}
}
