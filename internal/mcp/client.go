package mcp

import (
	"context"
	"encoding/json"
	"fmt"
)

// Client is a high-level MCP protocol client that uses a Transport to
// communicate with an MCP server.
type Client struct {
	transport Transport
	nextID    int
}

// NewClient creates a new MCP client using the given transport.
func NewClient(transport Transport) *Client {
	return &Client{
		transport: transport,
		nextID:    1,
	}
}

// allocID returns the next request ID and increments the counter.
func (c *Client) allocID() int {
	id := c.nextID
	c.nextID++
	return id
}

// call sends one request and unmarshals the result into out.
func (c *Client) call(ctx context.Context, method string, params interface{}, out interface{}) error {
	req := &JSONRPCRequest{
		JSONRPC: "2.0",
		ID:      c.allocID(),
		Method:  method,
		Params:  params,
	}

	resp, err := c.transport.Send(ctx, req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	if resp.Error != nil {
		return fmt.Errorf("%s: server error %d: %s", method, resp.Error.Code, resp.Error.Message)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Result, out); err != nil {
		return fmt.Errorf("%s: unmarshal result: %w", method, err)
	}
	return nil
}

// Initialize performs the MCP initialize handshake: an initialize request
// followed by a notifications/initialized notification.
func (c *Client) Initialize(ctx context.Context, clientName, clientVersion string) (*InitializeResult, error) {
	params := InitializeParams{
		ProtocolVersion: "2024-11-05",
		Capabilities:    map[string]any{},
		ClientInfo: ClientInfo{
			Name:    clientName,
			Version: clientVersion,
		},
	}

	var result InitializeResult
	if err := c.call(ctx, "initialize", params, &result); err != nil {
		return nil, err
	}

	notif := &JSONRPCNotification{
		JSONRPC: "2.0",
		Method:  "notifications/initialized",
	}
	if err := c.transport.Notify(ctx, notif); err != nil {
		return nil, fmt.Errorf("notifications/initialized: %w", err)
	}

	return &result, nil
}

// ListTools sends a tools/list request and returns the available tools.
func (c *Client) ListTools(ctx context.Context) ([]Tool, error) {
	var result ToolsListResult
	if err := c.call(ctx, "tools/list", nil, &result); err != nil {
		return nil, err
	}
	return result.Tools, nil
}

// CallTool invokes a tool by name with the given arguments.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]any) (*CallToolResult, error) {
	params := CallToolParams{
		Name:      name,
		Arguments: args,
	}
	var result CallToolResult
	if err := c.call(ctx, "tools/call", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ReadResource fetches a resource by URI.
func (c *Client) ReadResource(ctx context.Context, uri string) (*ReadResourceResult, error) {
	var result ReadResourceResult
	if err := c.call(ctx, "resources/read", ReadResourceParams{URI: uri}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetPrompt renders a prompt template with the given arguments.
func (c *Client) GetPrompt(ctx context.Context, name string, args map[string]string) (*GetPromptResult, error) {
	params := GetPromptParams{
		Name:      name,
		Arguments: args,
	}
	var result GetPromptResult
	if err := c.call(ctx, "prompts/get", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Close closes the underlying transport.
func (c *Client) Close() error {
	return c.transport.Close()
}
