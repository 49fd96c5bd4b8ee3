package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/seoulgreet/seoulgreet/internal/density"
	"github.com/seoulgreet/seoulgreet/internal/greeting"
	"github.com/seoulgreet/seoulgreet/internal/registry"
)

// Tools returns the full tool registry in its canonical order. Handlers
// are pure functions over already-validated arguments; argument failures
// are reported as tool errors, never as Go panics.
func Tools() *registry.Registry {
	reg := registry.New()
	// Names are unique by construction, so Add cannot fail here.
	_ = reg.Add(sayHelloTool(), handleSayHello)
	_ = reg.Add(sayHelloMultipleTool(), handleSayHelloMultiple)
	_ = reg.Add(sayPlaceTool(), handleSayPlace)
	_ = reg.Add(sayPlaceMultipleTool(), handleSayPlaceMultiple)
	return reg
}

func sayHelloTool() mcp.Tool {
	return mcp.NewTool("say_hello",
		mcp.WithDescription("입력한 이름으로 한국어 인사말을 만들어 줍니다."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("인사할 사람의 이름"),
		),
	)
}

func handleSayHello(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(greeting.Single(name)), nil
}

func sayHelloMultipleTool() mcp.Tool {
	return mcp.NewTool("say_hello_multiple",
		mcp.WithDescription("여러 이름에 대해 순서대로 인사말 목록을 만들어 줍니다."),
		mcp.WithArray("names",
			mcp.Required(),
			mcp.Description("인사할 사람들의 이름 목록"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
}

func handleSayHelloMultiple(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := request.RequireStringSlice("names")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(greeting.Multiple(names)), nil
}

func sayPlaceTool() mcp.Tool {
	return mcp.NewTool("say_place",
		mcp.WithDescription("서울 주요 장소의 현재 밀집 정도와 안내 문장을 알려 줍니다."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("조회할 장소 이름 (예: 경복궁)"),
		),
	)
}

func handleSayPlace(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(density.Single(name)), nil
}

func sayPlaceMultipleTool() mcp.Tool {
	return mcp.NewTool("say_place_multiple",
		mcp.WithDescription("여러 장소의 현재 밀집 정도를 순서대로 알려 줍니다."),
		mcp.WithArray("names",
			mcp.Required(),
			mcp.Description("조회할 장소 이름 목록"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
}

func handleSayPlaceMultiple(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := request.RequireStringSlice("names")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(density.Multiple(names)), nil
}
