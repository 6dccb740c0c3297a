package credstore

// KeyringAPI 是对 OS 密钥设施的最小抽象，便于测试与跨平台。
// service 对应 keyring 的 service name，account 对应 provider 名。
type KeyringAPI interface {
	Get(service, account string) (string, error)
	Set(service, account, value string) error
	Delete(service, account string) error
}

// 默认实现使用 zalando/go-keyring；见 keyring_*.go（按平台编译）。
func defaultKeyring() KeyringAPI {
	return &osKeyring{}
}

type osKeyring struct{}
