package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pixcore/pixbridge/internal/config"
	"github.com/pixcore/pixbridge/internal/errors"
	"github.com/pixcore/pixbridge/internal/fsops"
)

// =============================================================================
// 文件系统操作集成测试
// =============================================================================

func TestFileRoundTrip_Integration(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "deep", "config.json")
	payload := []byte(`{"theme":"dark","lang":"zh"}`)

	// 写入自动创建父目录
	if be := fsops.WriteFile(path, payload); be != nil {
		t.Fatalf("WriteFile failed: %v", be)
	}

	got, be := fsops.ReadFile(path)
	if be != nil {
		t.Fatalf("ReadFile failed: %v", be)
	}
	if string(got) != string(payload) {
		t.Errorf("round trip mismatch: got %q", got)
	}

	size, be := fsops.FileSize(path)
	if be != nil {
		t.Fatalf("FileSize failed: %v", be)
	}
	if size != int64(len(payload)) {
		t.Errorf("expected size %d, got %d", len(payload), size)
	}

	if !fsops.FileExists(path) {
		t.Error("expected file to exist")
	}

	if be := fsops.DeleteFile(path); be != nil {
		t.Fatalf("DeleteFile failed: %v", be)
	}
	if fsops.FileExists(path) {
		t.Error("expected file to be gone")
	}
}

func TestListDirectory_Integration(t *testing.T) {
	tmpDir := t.TempDir()

	if be := fsops.WriteFile(filepath.Join(tmpDir, "a.txt"), []byte("aa")); be != nil {
		t.Fatalf("WriteFile failed: %v", be)
	}
	if be := fsops.EnsureDirectory(filepath.Join(tmpDir, "sub")); be != nil {
		t.Fatalf("EnsureDirectory failed: %v", be)
	}

	entries, be := fsops.ListDirectory(tmpDir)
	if be != nil {
		t.Fatalf("ListDirectory failed: %v", be)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	byName := map[string]fsops.FileEntry{}
	for _, e := range entries {
		byName[e.Name] = e
	}
	if e, ok := byName["a.txt"]; !ok || e.IsDirectory || e.Size != 2 {
		t.Errorf("unexpected file entry: %+v", byName["a.txt"])
	}
	if e, ok := byName["sub"]; !ok || !e.IsDirectory {
		t.Errorf("unexpected dir entry: %+v", byName["sub"])
	}

	// 缺失路径是空列表，不是错误
	missing, be := fsops.ListDirectory(filepath.Join(tmpDir, "nope"))
	if be != nil {
		t.Fatalf("ListDirectory(missing) failed: %v", be)
	}
	if len(missing) != 0 {
		t.Errorf("expected empty listing, got %d entries", len(missing))
	}
}

func TestCheckWritable_Integration(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "storage")

	// 目录不存在时先创建再探测
	if be := fsops.CheckWritable(target); be != nil {
		t.Fatalf("CheckWritable failed: %v", be)
	}
	if st, err := os.Stat(target); err != nil || !st.IsDir() {
		t.Fatal("expected directory to be created")
	}

	// 探针文件不残留
	entries, be := fsops.ListDirectory(target)
	if be != nil {
		t.Fatalf("ListDirectory failed: %v", be)
	}
	if len(entries) != 0 {
		t.Errorf("expected no probe residue, got %v", entries)
	}
}

func TestFSErrorCodes_Integration(t *testing.T) {
	tmpDir := t.TempDir()

	_, be := fsops.ReadFile(filepath.Join(tmpDir, "nope.txt"))
	if be == nil || be.Code != errors.CodeNotFound {
		t.Fatalf("expected CodeNotFound, got %v", be)
	}

	_, be = fsops.FileSize(filepath.Join(tmpDir, "nope.txt"))
	if be == nil || be.Code != errors.CodeNotFound {
		t.Fatalf("expected CodeNotFound, got %v", be)
	}

	be = fsops.DeleteFile(filepath.Join(tmpDir, "nope.txt"))
	if be == nil || be.Code != errors.CodeNotFound {
		t.Fatalf("expected CodeNotFound, got %v", be)
	}
}

// =============================================================================
// 配置解析集成测试
// =============================================================================

func TestConfigResolve_Integration(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "pixbridge.yaml")
	configContent := `
format: yaml
storage:
  dir: /srv/pixcore
bridge:
  transport: streamable_http
  http:
    addr: 127.0.0.1:9100
    auth_token: keyring:bridge-token
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	r, be := config.Resolve(config.Options{ConfigPath: configPath})
	if be != nil {
		t.Fatalf("Resolve failed: %v", be)
	}

	if r.Format != "yaml" {
		t.Errorf("expected format yaml, got %s", r.Format)
	}
	if r.File.Storage.Dir != "/srv/pixcore" {
		t.Errorf("expected storage dir override, got %s", r.File.Storage.Dir)
	}
	if r.File.Bridge.Transport != "streamable_http" {
		t.Errorf("expected transport from file, got %s", r.File.Bridge.Transport)
	}
	if r.File.Bridge.HTTP.Addr != "127.0.0.1:9100" {
		t.Errorf("expected addr from file, got %s", r.File.Bridge.HTTP.Addr)
	}

	// CLI > ENV > file
	r, be = config.Resolve(config.Options{
		ConfigPath:   configPath,
		EnvFormat:    "table",
		CLIFormat:    "json",
		CLIFormatSet: true,
	})
	if be != nil {
		t.Fatalf("Resolve failed: %v", be)
	}
	if r.Format != "json" {
		t.Errorf("expected CLI format to win, got %s", r.Format)
	}

	// 显式指定但缺失的配置文件是错误
	_, be = config.Resolve(config.Options{ConfigPath: filepath.Join(tmpDir, "missing.yaml")})
	if be == nil || be.Code != errors.CodeCfgNotFound {
		t.Fatalf("expected CodeCfgNotFound, got %v", be)
	}

	// 未指定时缺省配置可缺失
	r, be = config.Resolve(config.Options{WorkDir: tmpDir + "/empty", HomeDir: tmpDir + "/empty"})
	if be != nil {
		t.Fatalf("Resolve without config failed: %v", be)
	}
	if r.Format != "auto" {
		t.Errorf("expected auto format default, got %s", r.Format)
	}
}
