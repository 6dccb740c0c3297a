package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/pixcore/pixbridge/internal/errors"
)

type Writer struct {
	Out io.Writer
	Err io.Writer
}

func New(out, err io.Writer) Writer {
	return Writer{Out: out, Err: err}
}

func (w Writer) WriteOK(format Format, data any) error {
	return w.write(format, Envelope{OK: true, SchemaVersion: SchemaVersion, Data: data})
}

func (w Writer) WriteError(format Format, be *errors.BridgeError) error {
	errObj := &ErrorObject{Code: be.Code, Message: be.Message, Details: be.Details}
	return w.write(format, Envelope{OK: false, SchemaVersion: SchemaVersion, Error: errObj})
}

func (w Writer) write(format Format, env Envelope) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w.Out)
		enc.SetEscapeHTML(false)
		return enc.Encode(env)
	case FormatYAML:
		b, err := yaml.Marshal(env)
		if err != nil {
			return err
		}
		_, err = w.Out.Write(b)
		if err != nil {
			return err
		}
		if len(b) == 0 || b[len(b)-1] != '\n' {
			_, _ = w.Out.Write([]byte("\n"))
		}
		return nil
	case FormatTable:
		return writeTable(w.Out, env)
	case FormatCSV:
		return writeCSV(w.Out, env)
	default:
		return errors.New(errors.CodeCfgInvalid, "invalid output format", map[string]any{"format": string(format)})
	}
}

// flattenRows 把 data 压平成有序 key/value 行，表格与 CSV 共用。
// 嵌套结构（如目录列表）序列化为紧凑 JSON。
func flattenRows(env Envelope) [][2]string {
	rows := [][2]string{
		{"ok", fmt.Sprintf("%v", env.OK)},
		{"schema_version", fmt.Sprintf("%d", env.SchemaVersion)},
	}
	if !env.OK {
		if env.Error != nil {
			rows = append(rows,
				[2]string{"error.code", string(env.Error.Code)},
				[2]string{"error.message", env.Error.Message},
			)
		}
		return rows
	}
	if env.Data == nil {
		return rows
	}

	b, err := json.Marshal(env.Data)
	if err != nil {
		return rows
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		// data 不是对象（标量或数组），整体作为一行
		rows = append(rows, [2]string{"data", string(b)})
		return rows
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			rows = append(rows, [2]string{"data." + k, v})
		case nil:
			rows = append(rows, [2]string{"data." + k, ""})
		default:
			vb, _ := json.Marshal(v)
			rows = append(rows, [2]string{"data." + k, string(vb)})
		}
	}
	return rows
}

func writeTable(out io.Writer, env Envelope) error {
	tw := tabwriter.NewWriter(out, 0, 2, 2, ' ', 0)
	for _, row := range flattenRows(env) {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1])
	}
	return tw.Flush()
}

func writeCSV(out io.Writer, env Envelope) error {
	// CSV 仅作为人类可读占位；结构化场景建议用 json/yaml。
	cw := csv.NewWriter(out)
	defer cw.Flush()
	for _, row := range flattenRows(env) {
		_ = cw.Write([]string{row[0], row[1]})
	}
	return cw.Error()
}
