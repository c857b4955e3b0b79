package stack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testStruct struct{}

func (s testStruct) TestFunc() string {
	return Record(0)
}

func (s *testStruct) TestPointerFunc() string {
	f := func() string { return Record(1) }

	return f()
}

func TestRecord(t *testing.T) {
	for _, tt := range []struct {
		name string
		act  string
		exp  string
	}{
		{
			name: "Function",
			act:  Record(0),
			exp:  "github.com/ydb-platform/ydb-go-locked/internal/stack.TestRecord(record_test.go:29)",
		},
		{
			name: "Method",
			act:  testStruct{}.TestFunc(),
			exp:  "github.com/ydb-platform/ydb-go-locked/internal/stack.testStruct.TestFunc(record_test.go:12)",
		},
		{
			name: "PointerMethodFromLambda",
			act:  (&testStruct{}).TestPointerFunc(),
			exp:  "github.com/ydb-platform/ydb-go-locked/internal/stack.(*testStruct).TestPointerFunc(record_test.go:18)",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.exp, tt.act)
		})
	}
}

func TestFunctionID(t *testing.T) {
	require.Equal(t,
		"github.com/ydb-platform/ydb-go-locked/internal/stack.TestFunctionID",
		Call(0).FunctionID(),
	)
}
