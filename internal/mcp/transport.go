package mcp

import "context"

// Transport defines the interface for talking JSON-RPC to an MCP server.
type Transport interface {
	// Send sends a JSON-RPC request and returns the matching response.
	Send(ctx context.Context, req *JSONRPCRequest) (*JSONRPCResponse, error)
	// Notify sends a JSON-RPC notification. Notifications carry no ID and
	// receive no response.
	Notify(ctx context.Context, notif *JSONRPCNotification) error
	// Close releases any resources held by the transport.
	Close() error
}
