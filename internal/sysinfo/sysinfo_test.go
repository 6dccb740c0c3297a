package sysinfo

import (
	"encoding/json"
	"runtime"
	"testing"
)

func TestDescribe(t *testing.T) {
	d := Describe()

	if d.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", d.OS, runtime.GOOS)
	}
	if d.Arch != runtime.GOARCH {
		t.Errorf("Arch = %q, want %q", d.Arch, runtime.GOARCH)
	}
}

func TestDescribe_OmitsEmptyDirs(t *testing.T) {
	b, err := json.Marshal(Descriptor{OS: "linux", Arch: "amd64"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := m["home_dir"]; ok {
		t.Error("empty home_dir should be omitted")
	}
	if _, ok := m["app_data_dir"]; ok {
		t.Error("empty app_data_dir should be omitted")
	}
}

func TestDescribe_FreshEachCall(t *testing.T) {
	a := Describe()
	b := Describe()
	if a != b {
		// 同一进程内两次查询应一致；Descriptor 是值快照
		t.Errorf("descriptors differ: %+v vs %+v", a, b)
	}
}
