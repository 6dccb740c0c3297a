package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pixcore/pixbridge/internal/errors"
)

func defaultConfigPaths(workDir, homeDir string) []string {
	paths := make([]string, 0, 2)
	if workDir != "" {
		paths = append(paths, filepath.Join(workDir, "pixbridge.yaml"))
	}
	if homeDir != "" {
		paths = append(paths, filepath.Join(homeDir, ".config", "pixbridge", "pixbridge.yaml"))
	}
	return paths
}

func readFile(path string) (File, *errors.BridgeError) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, errors.New(errors.CodeCfgNotFound, "config file not found", map[string]any{"path": path})
		}
		return File{}, errors.Wrap(errors.CodeCfgInvalid, "failed to read config file", map[string]any{"path": path}, err)
	}
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return File{}, errors.Wrap(errors.CodeCfgInvalid, "invalid config file", map[string]any{"path": path}, err)
	}
	return f, nil
}

// LoadConfig 加载配置文件，返回完整配置和配置文件路径。
// 未找到任何配置文件不是错误（全部走默认值）。
func LoadConfig(opts Options) (File, string, *errors.BridgeError) {
	workDir := opts.WorkDir
	if workDir == "" {
		wd, _ := os.Getwd()
		workDir = wd
	}
	if opts.HomeDir == "" {
		if hd, err := os.UserHomeDir(); err == nil {
			opts.HomeDir = hd
		}
	}

	if opts.ConfigPath != "" {
		abs := opts.ConfigPath
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(workDir, abs)
		}
		f, be := readFile(abs)
		if be != nil {
			return File{}, "", be
		}
		return f, abs, nil
	}

	for _, p := range defaultConfigPaths(workDir, opts.HomeDir) {
		f, be := readFile(p)
		if be != nil {
			if be.Code == errors.CodeCfgNotFound {
				continue
			}
			return File{}, "", be
		}
		return f, p, nil
	}

	return File{}, "", nil
}
