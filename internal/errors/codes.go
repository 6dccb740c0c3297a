package errors

// Code 是稳定错误码（字符串），供前端与脚本判断。
// 只增不改、不复用旧含义。
type Code string

const (
	// 预期缺失：secret 或路径不存在。桥接层不把它当用户错误，
	// 而是映射成 found=false / 空结果。
	CodeNotFound Code = "PIXBRIDGE_NOT_FOUND"

	// 平台拒绝访问（文件权限、keychain 授权）
	CodePermissionDenied Code = "PIXBRIDGE_PERMISSION_DENIED"

	// 密钥设施无法打开/初始化（无 Secret Service 总线、新档案未初始化等）
	CodeStoreUnavailable Code = "PIXBRIDGE_STORE_UNAVAILABLE"

	// 通用读/写/创建/删除失败
	CodeIOFailure Code = "PIXBRIDGE_IO_FAILURE"

	// 参数无效（如空 provider 名）
	CodeArgInvalid Code = "PIXBRIDGE_ARG_INVALID"

	// Config
	CodeCfgNotFound Code = "PIXBRIDGE_CFG_NOT_FOUND"
	CodeCfgInvalid  Code = "PIXBRIDGE_CFG_INVALID"

	// Internal
	CodeInternal Code = "PIXBRIDGE_INTERNAL"
)

func AllCodes() []Code {
	return []Code{
		CodeNotFound,
		CodePermissionDenied,
		CodeStoreUnavailable,
		CodeIOFailure,
		CodeArgInvalid,
		CodeCfgNotFound,
		CodeCfgInvalid,
		CodeInternal,
	}
}
