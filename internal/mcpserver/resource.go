package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ReadmeURI identifies the usage guide resource.
const ReadmeURI = "docs://seoulgreet/readme"

const readmeText = `# seoulgreet MCP Server

## 개요
이름 기반 한국어 인사말과 서울 주요 장소의 혼잡도 안내를 제공합니다.

## 사용 가능한 도구

### say_hello
이름 하나를 받아 인사말을 돌려줍니다.
**파라미터:** ` + "`name`" + ` (string, 필수)

### say_hello_multiple
이름 목록을 받아 순서대로 인사말 목록을 돌려줍니다.
**파라미터:** ` + "`names`" + ` (string 배열, 필수)

### say_place
장소 이름 하나를 받아 현재 밀집 정도와 안내 문장을 돌려줍니다.
등록되지 않은 장소는 안내 불가 메시지를 돌려줍니다.
**파라미터:** ` + "`name`" + ` (string, 필수)

### say_place_multiple
장소 이름 목록을 받아 순서대로 밀집 정도 목록을 돌려줍니다.
**파라미터:** ` + "`names`" + ` (string 배열, 필수)

## 밀집 정도 단계
여유 / 보통 / 혼잡. 등록되지 않은 장소는 "알 수 없음"으로 처리됩니다.
`

func addReadmeResource(s *server.MCPServer) {
	s.AddResource(
		mcp.NewResource(ReadmeURI, "readme",
			mcp.WithResourceDescription("seoulgreet 서버 사용 가이드"),
			mcp.WithMIMEType("text/markdown"),
		),
		func(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      ReadmeURI,
					MIMEType: "text/markdown",
					Text:     readmeText,
				},
			}, nil
		},
	)
}
