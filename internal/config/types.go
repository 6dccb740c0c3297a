package config

// File 表示 pixbridge.yaml 的配置结构。
// 约束：配置优先级为 CLI > ENV > Config。
type File struct {
	Format string `yaml:"format"`

	Storage Storage `yaml:"storage"`
	Bridge  Bridge  `yaml:"bridge"`
}

// Storage 控制前端数据的落盘位置。
type Storage struct {
	// Dir 覆盖默认存储根目录（默认 $HOME/PixcoreStorage）。
	Dir string `yaml:"dir"`
}

// Bridge 控制 serve 命令的传输方式。
type Bridge struct {
	Transport string     `yaml:"transport"` // stdio | streamable_http
	HTTP      HTTPConfig `yaml:"http"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`

	// AuthToken 支持 keyring:provider 引用；明文仅在
	// AllowPlaintextToken 开启时接受。
	AuthToken           string `yaml:"auth_token"`
	AllowPlaintextToken bool   `yaml:"allow_plaintext_token"`
}

type Resolved struct {
	ConfigPath string
	Format     string
	File       File
}

type Options struct {
	// ConfigPath: 若非空，则只读取该文件（不存在报错）。
	ConfigPath string

	// CLI
	CLIFormat    string
	CLIFormatSet bool

	// ENV（由调用方注入，便于测试）
	EnvFormat string

	// HomeDir 用于默认路径计算（为空则自动探测）。
	HomeDir string

	// WorkDir 用于默认路径（为空则使用进程当前工作目录）。
	WorkDir string
}
