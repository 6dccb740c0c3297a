package spec

import "github.com/pixcore/pixbridge/internal/errors"

type FlagSpec struct {
	Name        string `json:"name" yaml:"name"`
	Shorthand   string `json:"shorthand,omitempty" yaml:"shorthand,omitempty"`
	Env         string `json:"env,omitempty" yaml:"env,omitempty"`
	Default     string `json:"default,omitempty" yaml:"default,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type CommandSpec struct {
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Flags       []FlagSpec `json:"flags,omitempty" yaml:"flags,omitempty"`
}

// ArgSpec 描述桥接操作的一个参数。
type ArgSpec struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Required    bool   `json:"required" yaml:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ToolSpec 描述一个可被前端调用的桥接操作。
type ToolSpec struct {
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Args        []ArgSpec `json:"args,omitempty" yaml:"args,omitempty"`
}

type Spec struct {
	SchemaVersion int           `json:"schema_version" yaml:"schema_version"`
	Commands      []CommandSpec `json:"commands" yaml:"commands"`
	Tools         []ToolSpec    `json:"tools" yaml:"tools"`
	ErrorCodes    []errors.Code `json:"error_codes" yaml:"error_codes"`
}
