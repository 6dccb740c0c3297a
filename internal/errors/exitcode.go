package errors

// ExitCode 是进程退出码（稳定契约）。
type ExitCode int

const (
	ExitOK ExitCode = 0

	// 2: 参数/配置错误
	ExitConfig ExitCode = 2

	// 3: 密钥设施不可用
	ExitStore ExitCode = 3

	// 4: 权限拒绝
	ExitPermission ExitCode = 4

	// 5: IO 失败 / 目标不存在
	ExitIO ExitCode = 5

	// 10: 内部错误
	ExitInternal ExitCode = 10
)

func ExitCodeFor(code Code) ExitCode {
	switch code {
	case CodeCfgNotFound, CodeCfgInvalid, CodeArgInvalid:
		return ExitConfig
	case CodeStoreUnavailable:
		return ExitStore
	case CodePermissionDenied:
		return ExitPermission
	case CodeIOFailure, CodeNotFound:
		return ExitIO
	case CodeInternal:
		fallthrough
	default:
		return ExitInternal
	}
}
