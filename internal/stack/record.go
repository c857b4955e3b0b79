package stack

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/ydb-platform/ydb-go-locked/internal/xstring"
)

type call struct {
	function uintptr
	file     string
	line     int
}

func Call(depth int) (c call) {
	c.function, c.file, c.line, _ = runtime.Caller(depth + 1)

	return c
}

// Record formats the caller as `pkg/path.Func(file.go:line)`.
// Generic brackets are dropped from function names.
func (c call) Record() string {
	name := strings.ReplaceAll(runtime.FuncForPC(c.function).Name(), "[...]", "")
	file := c.file
	if i := strings.LastIndex(file, "/"); i > -1 {
		file = file[i+1:]
	}

	b := xstring.Buffer()
	defer b.Free()

	b.WriteString(name)
	b.WriteByte('(')
	b.WriteString(file)
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(c.line))
	b.WriteByte(')')

	return b.String()
}

// FunctionID is a record without file and line, used as operation identity in traces
func (c call) FunctionID() string {
	return strings.ReplaceAll(runtime.FuncForPC(c.function).Name(), "[...]", "")
}

func Record(depth int) string {
	return Call(depth + 1).Record()
}
