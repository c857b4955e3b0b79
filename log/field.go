package log

import (
	"github.com/ydb-platform/ydb-go-locked/internal/kv"
)

type (
	Field = kv.KeyValue
)

const (
	IntType      = kv.IntType
	Int64Type    = kv.Int64Type
	StringType   = kv.StringType
	BoolType     = kv.BoolType
	DurationType = kv.DurationType
	StringsType  = kv.StringsType
	ErrorType    = kv.ErrorType
	AnyType      = kv.AnyType
	StringerType = kv.StringerType
)

var (
	String   = kv.String
	Int      = kv.Int
	Int64    = kv.Int64
	Bool     = kv.Bool
	Duration = kv.Duration
	Strings  = kv.Strings
	Error    = kv.Error
	Any      = kv.Any
	Stringer = kv.Stringer
)
