package bridge

import "github.com/pixcore/pixbridge/internal/spec"

// Catalog 返回全部桥接操作的机器可读描述，供 spec 命令导出给前端。
func Catalog() []spec.ToolSpec {
	pathArg := spec.ArgSpec{Name: "path", Type: "string", Required: true, Description: "Filesystem path"}
	providerArg := spec.ArgSpec{Name: "provider", Type: "string", Required: true, Description: "Provider name identifying the secret slot"}

	return []spec.ToolSpec{
		{
			Name:        "default_storage_path",
			Description: "Resolve the default storage directory for frontend data",
		},
		{
			Name:        "ensure_directory",
			Description: "Create a directory and all missing ancestors (idempotent)",
			Args:        []spec.ArgSpec{pathArg},
		},
		{
			Name:        "check_writable",
			Description: "Probe whether a path is writable via a transient sentinel file",
			Args:        []spec.ArgSpec{pathArg},
		},
		{
			Name:        "read_file",
			Description: "Read a file, returning its bytes base64-encoded",
			Args:        []spec.ArgSpec{pathArg},
		},
		{
			Name:        "write_file",
			Description: "Write a file, creating missing parent directories",
			Args: []spec.ArgSpec{
				pathArg,
				{Name: "content_base64", Type: "string", Required: true, Description: "File contents, base64-encoded"},
			},
		},
		{
			Name:        "delete_file",
			Description: "Delete a file",
			Args:        []spec.ArgSpec{pathArg},
		},
		{
			Name:        "list_directory",
			Description: "List directory children; a missing path yields an empty listing",
			Args:        []spec.ArgSpec{pathArg},
		},
		{
			Name:        "file_exists",
			Description: "Report whether a path exists",
			Args:        []spec.ArgSpec{pathArg},
		},
		{
			Name:        "file_size",
			Description: "Report the byte size of a file",
			Args:        []spec.ArgSpec{pathArg},
		},
		{
			Name:        "store_secret",
			Description: "Store a secret for a provider in the OS secret facility (overwrites)",
			Args: []spec.ArgSpec{
				providerArg,
				{Name: "secret", Type: "string", Required: true, Description: "Secret value to store"},
			},
		},
		{
			Name:        "fetch_secret",
			Description: "Fetch the secret for a provider; a missing entry is found=false, not an error",
			Args:        []spec.ArgSpec{providerArg},
		},
		{
			Name:        "remove_secret",
			Description: "Remove the secret for a provider (succeeds even if absent)",
			Args:        []spec.ArgSpec{providerArg},
		},
		{
			Name:        "has_secret",
			Description: "Report whether a secret exists for a provider",
			Args:        []spec.ArgSpec{providerArg},
		},
		{
			Name:        "system_info",
			Description: "Report OS family, CPU architecture and standard directories",
		},
	}
}
