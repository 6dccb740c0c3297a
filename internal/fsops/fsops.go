// Package fsops 是桥接层的文件系统协作方：无状态直通操作，
// 每个调用独立打开/释放资源，不跨调用持有句柄。
package fsops

import (
	"os"
	"path/filepath"

	"github.com/pixcore/pixbridge/internal/errors"
)

// DefaultStorageDirName 是用户主目录下的默认存储子目录。
const DefaultStorageDirName = "PixcoreStorage"

// sentinelName 是可写性探测用的临时文件名。
const sentinelName = ".pixcore_write_test"

// FileEntry 是目录子项在列举时刻的只读快照，生成后即失效。
type FileEntry struct {
	Name        string `json:"name" yaml:"name"`
	Path        string `json:"path" yaml:"path"`
	IsDirectory bool   `json:"is_directory" yaml:"is_directory"`
	Size        int64  `json:"size" yaml:"size"`
}

// DefaultStoragePath 解析用户主目录下的默认存储路径。
func DefaultStoragePath() (string, *errors.BridgeError) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.CodeIOFailure, "failed to determine home directory", map[string]any{"op": "default_storage_path"}, err)
	}
	return filepath.Join(home, DefaultStorageDirName), nil
}

// EnsureDirectory 创建目录及缺失的所有上级目录；幂等。
func EnsureDirectory(path string) *errors.BridgeError {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return classify(err, "ensure_directory", path, "failed to create directory")
	}
	return nil
}

// CheckWritable 探测路径是否可写：目录不存在则先创建，
// 写入一个哨兵文件再立即删除。哨兵文件无论成败都会被清理。
func CheckWritable(path string) *errors.BridgeError {
	if be := EnsureDirectory(path); be != nil {
		return be
	}

	sentinel := filepath.Join(path, sentinelName)
	if err := os.WriteFile(sentinel, []byte("test"), 0o644); err != nil {
		_ = os.Remove(sentinel)
		return classify(err, "check_writable", path, "path is not writable")
	}
	_ = os.Remove(sentinel)
	return nil
}

// ReadFile 读取文件全部字节。
func ReadFile(path string) ([]byte, *errors.BridgeError) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, classify(err, "read_file", path, "failed to read file")
	}
	return b, nil
}

// WriteFile 写入文件，父目录缺失时自动创建。
func WriteFile(path string, contents []byte) *errors.BridgeError {
	if parent := filepath.Dir(path); parent != "" {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return classify(err, "write_file", path, "failed to create parent directory")
		}
	}
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		return classify(err, "write_file", path, "failed to write file")
	}
	return nil
}

// DeleteFile 删除文件。
func DeleteFile(path string) *errors.BridgeError {
	if err := os.Remove(path); err != nil {
		return classify(err, "delete_file", path, "failed to delete file")
	}
	return nil
}

// ListDirectory 列举目录子项。路径不存在返回空序列而非错误；
// 元数据读不到的子项被跳过（刻意的 best-effort，不让单个坏条目拖垮整个列举）。
func ListDirectory(path string) ([]FileEntry, *errors.BridgeError) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []FileEntry{}, nil
		}
		return nil, classify(err, "list_directory", path, "failed to read directory")
	}

	entries := make([]FileEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		info, err := de.Info()
		if err != nil {
			continue
		}
		entries = append(entries, FileEntry{
			Name:        de.Name(),
			Path:        filepath.Join(path, de.Name()),
			IsDirectory: de.IsDir(),
			Size:        info.Size(),
		})
	}
	return entries, nil
}

// FileExists 报告路径是否存在；从不失败。
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FileSize 返回文件字节数。
func FileSize(path string) (int64, *errors.BridgeError) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, classify(err, "file_size", path, "failed to stat file")
	}
	return info.Size(), nil
}

// classify 把底层 os 错误归入稳定错误码，携带操作与路径上下文。
func classify(err error, op, path, message string) *errors.BridgeError {
	details := map[string]any{"op": op, "path": path}
	switch {
	case os.IsNotExist(err):
		return errors.Wrap(errors.CodeNotFound, message, details, err)
	case os.IsPermission(err):
		return errors.Wrap(errors.CodePermissionDenied, message, details, err)
	default:
		return errors.Wrap(errors.CodeIOFailure, message, details, err)
	}
}
