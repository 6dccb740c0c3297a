// Package sysinfo 报告宿主机信息，每次查询都现取，不做缓存。
package sysinfo

import (
	"os"
	"runtime"

	"github.com/adrg/xdg"
)

// Descriptor 描述宿主系统。home/app-data 目录是 best-effort，
// 探测不到时留空（序列化时省略）。
type Descriptor struct {
	OS         string `json:"os" yaml:"os"`
	Arch       string `json:"arch" yaml:"arch"`
	HomeDir    string `json:"home_dir,omitempty" yaml:"home_dir,omitempty"`
	AppDataDir string `json:"app_data_dir,omitempty" yaml:"app_data_dir,omitempty"`
}

// Describe 返回当前系统描述；从不失败。
func Describe() Descriptor {
	d := Descriptor{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}
	if home, err := os.UserHomeDir(); err == nil {
		d.HomeDir = home
	}
	// XDG 数据目录；macOS/Windows 由 xdg 库映射到平台惯例位置
	d.AppDataDir = xdg.DataHome
	return d
}
