package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/seoulgreet/seoulgreet/internal/density"
	"github.com/seoulgreet/seoulgreet/internal/greeting"
)

// ExplainPromptName is the prompt that wraps a tool result in an
// explanation request for the client's model.
const ExplainPromptName = "explain_result"

func addExplainPrompt(s *server.MCPServer) {
	s.AddPrompt(
		mcp.NewPrompt(ExplainPromptName,
			mcp.WithPromptDescription("도구 실행 결과를 사용자에게 설명하는 프롬프트 템플릿"),
			mcp.WithArgument("tool_name",
				mcp.ArgumentDescription("실행할 도구 이름 (say_hello 또는 say_place)"),
				mcp.RequiredArgument(),
			),
			mcp.WithArgument("name",
				mcp.ArgumentDescription("도구에 전달할 이름 또는 장소"),
				mcp.RequiredArgument(),
			),
		),
		handleExplainPrompt,
	)
}

func handleExplainPrompt(_ context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	toolName := request.Params.Arguments["tool_name"]
	name := request.Params.Arguments["name"]
	if toolName == "" || name == "" {
		return nil, fmt.Errorf("prompt %s requires tool_name and name arguments", ExplainPromptName)
	}

	var result, summary string
	switch toolName {
	case "say_hello":
		result = greeting.Single(name)
		summary = fmt.Sprintf("%s님을 위한 인사말을 만들었습니다.", name)
	case "say_place":
		result = density.Single(name)
		summary = fmt.Sprintf("%s의 현재 밀집 정도를 조회했습니다.", name)
	default:
		return nil, fmt.Errorf("prompt %s does not support tool %q", ExplainPromptName, toolName)
	}

	text := fmt.Sprintf(`사용자에게 다음 도구 실행 결과를 명확하고 친절하게 설명하세요.

수행된 도구: %s
설명: %s
최종 결과:
%s

메시지에 포함할 내용:
1. 어떤 요청이 처리되었는지 한 문장으로 요약
2. 결과 본문을 그대로 전달
3. 장소 안내라면 방문 시 참고할 점을 짧게 덧붙이기

톤: 친절하고 간결하게
길이: 3-5 문장`, toolName, summary, result)

	return mcp.NewGetPromptResult(
		"도구 결과 설명 프롬프트",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
		},
	), nil
}
