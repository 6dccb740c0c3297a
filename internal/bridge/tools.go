// Package bridge 把宿主特权操作（文件 IO、凭据存储、系统信息）
// 作为命名操作暴露给沙箱前端。每个操作是一次独立的同步调用，
// 结果用 {ok, schema_version, data|error} 信封返回。
package bridge

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pixcore/pixbridge/internal/config"
	"github.com/pixcore/pixbridge/internal/credstore"
	"github.com/pixcore/pixbridge/internal/errors"
	"github.com/pixcore/pixbridge/internal/fsops"
	"github.com/pixcore/pixbridge/internal/output"
	"github.com/pixcore/pixbridge/internal/sysinfo"
)

// PathInput 是仅需路径参数的操作输入。
type PathInput struct {
	Path string `json:"path" jsonschema:"Absolute or relative filesystem path"`
}

// WriteFileInput 是 write_file 的输入；文件字节以 base64 跨越 JSON 边界。
type WriteFileInput struct {
	Path          string `json:"path" jsonschema:"Destination file path"`
	ContentBase64 string `json:"content_base64" jsonschema:"File contents, base64-encoded"`
}

// ProviderInput 是凭据操作的输入。
type ProviderInput struct {
	Provider string `json:"provider" jsonschema:"Provider name identifying the secret slot"`
}

// StoreSecretInput 是 store_secret 的输入。
type StoreSecretInput struct {
	Provider string `json:"provider" jsonschema:"Provider name identifying the secret slot"`
	Secret   string `json:"secret" jsonschema:"Secret value to store"`
}

// ToolHandler 持有桥接操作需要的协作方。自身无可变状态，
// 并发调用安全。
type ToolHandler struct {
	store *credstore.Store
	cfg   *config.File
}

// NewToolHandler 创建工具处理器。store 为 nil 时使用平台默认密钥设施。
func NewToolHandler(cfg *config.File, store *credstore.Store) *ToolHandler {
	if store == nil {
		store = credstore.New(credstore.Options{})
	}
	if cfg == nil {
		cfg = &config.File{}
	}
	return &ToolHandler{store: store, cfg: cfg}
}

// ============================================================================
// 文件系统操作
// ============================================================================

func (h *ToolHandler) doDefaultStoragePath() (any, *errors.BridgeError) {
	if h.cfg.Storage.Dir != "" {
		return map[string]any{"path": h.cfg.Storage.Dir}, nil
	}
	path, be := fsops.DefaultStoragePath()
	if be != nil {
		return nil, be
	}
	return map[string]any{"path": path}, nil
}

func (h *ToolHandler) doEnsureDirectory(in PathInput) (any, *errors.BridgeError) {
	if be := fsops.EnsureDirectory(in.Path); be != nil {
		return nil, be
	}
	return map[string]any{"path": in.Path, "ensured": true}, nil
}

func (h *ToolHandler) doCheckWritable(in PathInput) (any, *errors.BridgeError) {
	if be := fsops.CheckWritable(in.Path); be != nil {
		return nil, be
	}
	return map[string]any{"path": in.Path, "writable": true}, nil
}

func (h *ToolHandler) doReadFile(in PathInput) (any, *errors.BridgeError) {
	b, be := fsops.ReadFile(in.Path)
	if be != nil {
		return nil, be
	}
	return map[string]any{
		"path":           in.Path,
		"size":           len(b),
		"content_base64": base64.StdEncoding.EncodeToString(b),
	}, nil
}

func (h *ToolHandler) doWriteFile(in WriteFileInput) (any, *errors.BridgeError) {
	contents, err := base64.StdEncoding.DecodeString(in.ContentBase64)
	if err != nil {
		return nil, errors.Wrap(errors.CodeArgInvalid, "content_base64 is not valid base64", map[string]any{"path": in.Path}, err)
	}
	if be := fsops.WriteFile(in.Path, contents); be != nil {
		return nil, be
	}
	return map[string]any{"path": in.Path, "size": len(contents)}, nil
}

func (h *ToolHandler) doDeleteFile(in PathInput) (any, *errors.BridgeError) {
	if be := fsops.DeleteFile(in.Path); be != nil {
		return nil, be
	}
	return map[string]any{"path": in.Path, "deleted": true}, nil
}

func (h *ToolHandler) doListDirectory(in PathInput) (any, *errors.BridgeError) {
	entries, be := fsops.ListDirectory(in.Path)
	if be != nil {
		return nil, be
	}
	return map[string]any{"path": in.Path, "entries": entries}, nil
}

func (h *ToolHandler) doFileExists(in PathInput) (any, *errors.BridgeError) {
	return map[string]any{"path": in.Path, "exists": fsops.FileExists(in.Path)}, nil
}

func (h *ToolHandler) doFileSize(in PathInput) (any, *errors.BridgeError) {
	size, be := fsops.FileSize(in.Path)
	if be != nil {
		return nil, be
	}
	return map[string]any{"path": in.Path, "size": size}, nil
}

// ============================================================================
// 凭据操作
// ============================================================================

func (h *ToolHandler) doStoreSecret(in StoreSecretInput) (any, *errors.BridgeError) {
	if be := h.store.Set(in.Provider, in.Secret); be != nil {
		return nil, be
	}
	// secret 值不回显
	return map[string]any{"provider": in.Provider}, nil
}

func (h *ToolHandler) doFetchSecret(in ProviderInput) (any, *errors.BridgeError) {
	val, found, be := h.store.Get(in.Provider)
	if be != nil {
		return nil, be
	}
	if !found {
		return map[string]any{"provider": in.Provider, "found": false}, nil
	}
	return map[string]any{"provider": in.Provider, "found": true, "secret": val}, nil
}

func (h *ToolHandler) doRemoveSecret(in ProviderInput) (any, *errors.BridgeError) {
	if be := h.store.Delete(in.Provider); be != nil {
		return nil, be
	}
	return map[string]any{"provider": in.Provider, "removed": true}, nil
}

func (h *ToolHandler) doHasSecret(in ProviderInput) (any, *errors.BridgeError) {
	exists, be := h.store.Has(in.Provider)
	if be != nil {
		return nil, be
	}
	return map[string]any{"provider": in.Provider, "exists": exists}, nil
}

// ============================================================================
// 系统信息
// ============================================================================

func (h *ToolHandler) doSystemInfo() (any, *errors.BridgeError) {
	return sysinfo.Describe(), nil
}

// ============================================================================
// MCP 接线
// ============================================================================

// handlePath 把基于 PathInput 的操作包装成 raw MCP handler。
func (h *ToolHandler) handlePath(fn func(PathInput) (any, *errors.BridgeError)) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in PathInput
		if err := json.Unmarshal(req.Params.Arguments, &in); err != nil {
			return errorResult(errors.Wrap(errors.CodeArgInvalid, "invalid input", nil, err)), nil
		}
		if in.Path == "" {
			return errorResult(errors.New(errors.CodeArgInvalid, "path is required", nil)), nil
		}
		data, be := fn(in)
		if be != nil {
			return errorResult(be), nil
		}
		return okResult(data), nil
	}
}

// handleProvider 把基于 ProviderInput 的操作包装成 raw MCP handler。
// provider 为空的校验留给 credstore（那里是契约归属地）。
func (h *ToolHandler) handleProvider(fn func(ProviderInput) (any, *errors.BridgeError)) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in ProviderInput
		if err := json.Unmarshal(req.Params.Arguments, &in); err != nil {
			return errorResult(errors.Wrap(errors.CodeArgInvalid, "invalid input", nil, err)), nil
		}
		data, be := fn(in)
		if be != nil {
			return errorResult(be), nil
		}
		return okResult(data), nil
	}
}

// RegisterTools 把全部桥接操作注册到 MCP server。
func (h *ToolHandler) RegisterTools(server *mcp.Server) {
	// 无参数操作
	mcp.AddTool[struct{}, any](server, &mcp.Tool{
		Name:        "default_storage_path",
		Description: "Resolve the default storage directory for frontend data",
	}, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
		data, be := h.doDefaultStoragePath()
		if be != nil {
			return errorResult(be), nil, nil
		}
		return okResult(data), nil, nil
	})

	mcp.AddTool[struct{}, any](server, &mcp.Tool{
		Name:        "system_info",
		Description: "Report OS family, CPU architecture and standard directories",
	}, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
		data, be := h.doSystemInfo()
		if be != nil {
			return errorResult(be), nil, nil
		}
		return okResult(data), nil, nil
	})

	// 路径操作
	pathTools := []struct {
		name        string
		description string
		fn          func(PathInput) (any, *errors.BridgeError)
	}{
		{"ensure_directory", "Create a directory and all missing ancestors (idempotent)", h.doEnsureDirectory},
		{"check_writable", "Probe whether a path is writable via a transient sentinel file", h.doCheckWritable},
		{"read_file", "Read a file, returning its bytes base64-encoded", h.doReadFile},
		{"delete_file", "Delete a file", h.doDeleteFile},
		{"list_directory", "List directory children; a missing path yields an empty listing", h.doListDirectory},
		{"file_exists", "Report whether a path exists", h.doFileExists},
		{"file_size", "Report the byte size of a file", h.doFileSize},
	}
	for _, t := range pathTools {
		server.AddTool(&mcp.Tool{
			Name:        t.name,
			Description: t.description,
			InputSchema: pathInputSchema(),
		}, h.handlePath(t.fn))
	}

	server.AddTool(&mcp.Tool{
		Name:        "write_file",
		Description: "Write a file, creating missing parent directories",
		InputSchema: writeFileInputSchema(),
	}, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in WriteFileInput
		if err := json.Unmarshal(req.Params.Arguments, &in); err != nil {
			return errorResult(errors.Wrap(errors.CodeArgInvalid, "invalid input", nil, err)), nil
		}
		if in.Path == "" {
			return errorResult(errors.New(errors.CodeArgInvalid, "path is required", nil)), nil
		}
		data, be := h.doWriteFile(in)
		if be != nil {
			return errorResult(be), nil
		}
		return okResult(data), nil
	})

	// 凭据操作
	server.AddTool(&mcp.Tool{
		Name:        "store_secret",
		Description: "Store a secret for a provider in the OS secret facility (overwrites)",
		InputSchema: storeSecretInputSchema(),
	}, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in StoreSecretInput
		if err := json.Unmarshal(req.Params.Arguments, &in); err != nil {
			return errorResult(errors.Wrap(errors.CodeArgInvalid, "invalid input", nil, err)), nil
		}
		data, be := h.doStoreSecret(in)
		if be != nil {
			return errorResult(be), nil
		}
		return okResult(data), nil
	})

	providerTools := []struct {
		name        string
		description string
		fn          func(ProviderInput) (any, *errors.BridgeError)
	}{
		{"fetch_secret", "Fetch the secret for a provider; a missing entry is found=false, not an error", h.doFetchSecret},
		{"remove_secret", "Remove the secret for a provider (succeeds even if absent)", h.doRemoveSecret},
		{"has_secret", "Report whether a secret exists for a provider", h.doHasSecret},
	}
	for _, t := range providerTools {
		server.AddTool(&mcp.Tool{
			Name:        t.name,
			Description: t.description,
			InputSchema: providerInputSchema(),
		}, h.handleProvider(t.fn))
	}
}

func pathInputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"path"},
		Properties: map[string]*jsonschema.Schema{
			"path": {
				Type:        "string",
				Description: "Filesystem path",
			},
		},
	}
}

func writeFileInputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"path", "content_base64"},
		Properties: map[string]*jsonschema.Schema{
			"path": {
				Type:        "string",
				Description: "Destination file path",
			},
			"content_base64": {
				Type:        "string",
				Description: "File contents, base64-encoded",
			},
		},
	}
}

func providerInputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"provider"},
		Properties: map[string]*jsonschema.Schema{
			"provider": {
				Type:        "string",
				Description: "Provider name identifying the secret slot",
			},
		},
	}
}

func storeSecretInputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"provider", "secret"},
		Properties: map[string]*jsonschema.Schema{
			"provider": {
				Type:        "string",
				Description: "Provider name identifying the secret slot",
			},
			"secret": {
				Type:        "string",
				Description: "Secret value to store",
			},
		},
	}
}

// okResult 把成功数据装入信封并序列化到 text content。
func okResult(data any) *mcp.CallToolResult {
	env := output.Envelope{OK: true, SchemaVersion: output.SchemaVersion, Data: data}
	b, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return errorResult(errors.Wrap(errors.CodeInternal, "failed to marshal result", nil, err))
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(b)}},
	}
}

// errorResult 把失败装入信封；边界上保留人类可读的描述字符串。
func errorResult(be *errors.BridgeError) *mcp.CallToolResult {
	env := output.Envelope{
		OK:            false,
		SchemaVersion: output.SchemaVersion,
		Error:         &output.ErrorObject{Code: be.Code, Message: be.Message, Details: be.Details},
	}
	b, _ := json.MarshalIndent(env, "", "  ")
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: string(b)}},
	}
}

// CreateServer 创建注册了全部桥接操作的 MCP server。
func CreateServer(version string, cfg *config.File, store *credstore.Store) (*mcp.Server, error) {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "pixbridge",
		Version: version,
	}, nil)

	handler := NewToolHandler(cfg, store)
	handler.RegisterTools(server)

	return server, nil
}
