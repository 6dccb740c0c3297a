// Package credstore 把 (固定命名空间, provider 名) 映射到 OS 密钥设施里的
// 一个 secret 槽位，并把各平台的"不存在/不可用/失败"信号归一成统一结果。
// 原生 keyring 错误类型不会越过这一层。
package credstore

import (
	stderrors "errors"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/pixcore/pixbridge/internal/errors"
)

// ServiceName 是整个应用的固定密钥命名空间（构建时常量）。
const ServiceName = "com.pixcore.app"

// Store 是 OS 密钥设施之上的凭据存储。自身不持有任何状态，
// 每次调用都往返底层设施，因此并发调用是安全的。
type Store struct {
	ring KeyringAPI
}

// Options 控制 Store 的构造。
type Options struct {
	// Keyring 可注入的实现（nil 则用平台默认）。
	Keyring KeyringAPI
}

func New(opts Options) *Store {
	kr := opts.Keyring
	if kr == nil {
		kr = defaultKeyring()
	}
	return &Store{ring: kr}
}

// Set 存储 provider 的 secret，覆盖已有条目（last-write-wins）。
func (s *Store) Set(provider, secret string) *errors.BridgeError {
	if be := validateProvider(provider, "store_secret"); be != nil {
		return be
	}
	if err := s.ring.Set(ServiceName, provider, secret); err != nil {
		return classify(err, "store_secret", provider)
	}
	return nil
}

// Get 读取 provider 的 secret。
// 条目不存在返回 ("", false, nil) —— 这是正常结果，不是错误；
// 只有真正的平台故障才返回 BridgeError。
func (s *Store) Get(provider string) (string, bool, *errors.BridgeError) {
	if be := validateProvider(provider, "fetch_secret"); be != nil {
		return "", false, be
	}
	val, err := s.ring.Get(ServiceName, provider)
	if err != nil {
		if isNotFound(err) {
			return "", false, nil
		}
		return "", false, classify(err, "fetch_secret", provider)
	}
	return val, true, nil
}

// Delete 删除 provider 的 secret。删除不存在的条目也算成功（幂等）。
func (s *Store) Delete(provider string) *errors.BridgeError {
	if be := validateProvider(provider, "remove_secret"); be != nil {
		return be
	}
	if err := s.ring.Delete(ServiceName, provider); err != nil {
		if isNotFound(err) {
			return nil
		}
		return classify(err, "remove_secret", provider)
	}
	return nil
}

// Has 报告 provider 是否有已存储的 secret。设施的"不存在"映射为 false。
func (s *Store) Has(provider string) (bool, *errors.BridgeError) {
	if be := validateProvider(provider, "has_secret"); be != nil {
		return false, be
	}
	_, err := s.ring.Get(ServiceName, provider)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, classify(err, "has_secret", provider)
	}
	return true, nil
}

func validateProvider(provider, op string) *errors.BridgeError {
	if provider == "" {
		return errors.New(errors.CodeArgInvalid, "provider name is empty", map[string]any{"op": op})
	}
	return nil
}

func isNotFound(err error) bool {
	return stderrors.Is(err, keyring.ErrNotFound)
}

// classify 把底层 keyring 错误归入稳定错误码。
// 错误消息携带操作与 provider 上下文，但绝不携带 secret 值。
func classify(err error, op, provider string) *errors.BridgeError {
	details := map[string]any{"op": op, "provider": provider}
	if isUnavailable(err) {
		return errors.Wrap(errors.CodeStoreUnavailable, "secret facility unavailable", details, err)
	}
	return errors.Wrap(errors.CodeIOFailure, "secret facility operation failed", details, err)
}

// isUnavailable 识别设施不可达：平台不受支持、Secret Service 总线缺失、
// 新用户档案 keychain 尚未初始化等。
func isUnavailable(err error) bool {
	if stderrors.Is(err, keyring.ErrUnsupportedPlatform) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, hint := range []string{
		"dbus",
		"d-bus",
		"secret service",
		"cannot autolaunch",
		"no such interface",
		"connection refused",
		"keychain not available",
	} {
		if strings.Contains(msg, hint) {
			return true
		}
	}
	return false
}
