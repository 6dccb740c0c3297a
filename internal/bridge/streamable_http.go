package bridge

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pixcore/pixbridge/internal/errors"
)

const (
	TransportStdio          = "stdio"
	TransportStreamableHTTP = "streamable_http"
)

const (
	authHeader   = "Authorization"
	bearerPrefix = "Bearer "
)

// NewStreamableHTTPHandler 创建带强制鉴权的 streamable HTTP handler。
// 桥接操作是宿主特权操作，HTTP 传输必须带 token。
func NewStreamableHTTPHandler(server *mcp.Server, authToken string) (http.Handler, error) {
	if server == nil {
		return nil, errors.New(errors.CodeInternal, "bridge server is nil", nil)
	}
	if authToken == "" {
		return nil, errors.New(errors.CodeCfgInvalid, "streamable http auth token is required", nil)
	}
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})
	return requireAuth(handler, authToken), nil
}

func requireAuth(next http.Handler, token string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		auth := strings.TrimSpace(req.Header.Get(authHeader))
		if auth == "" {
			http.Error(w, "authorization header is required", http.StatusUnauthorized)
			return
		}
		if !strings.HasPrefix(auth, bearerPrefix) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		received := strings.TrimPrefix(auth, bearerPrefix)
		if subtle.ConstantTimeCompare([]byte(received), []byte(token)) != 1 {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, req)
	})
}
