package kv

import (
	"fmt"
	"strconv"
	"time"
)

type FieldType int

const (
	InvalidType FieldType = iota
	IntType
	Int64Type
	StringType
	BoolType
	DurationType
	StringsType
	ErrorType
	AnyType
	StringerType
	endType
)

var fieldTypeNames = [...]string{
	InvalidType:  "invalid",
	IntType:      "int",
	Int64Type:    "int64",
	StringType:   "string",
	BoolType:     "bool",
	DurationType: "time.Duration",
	StringsType:  "[]string",
	ErrorType:    "error",
	AnyType:      "any",
	StringerType: "stringer",
}

func (t FieldType) String() string {
	if t < 0 || t >= endType {
		return fieldTypeNames[InvalidType]
	}

	return fieldTypeNames[t]
}

// KeyValue is a typed log/trace field. Construct it with the helpers below.
type KeyValue struct {
	ftype FieldType
	key   string

	vint int64
	vstr string
	vany interface{}
}

func (f KeyValue) Type() FieldType {
	return f.ftype
}

func (f KeyValue) Key() string {
	return f.key
}

func (f KeyValue) IntValue() int {
	f.mustBe(IntType)

	return int(f.vint)
}

func (f KeyValue) Int64Value() int64 {
	f.mustBe(Int64Type)

	return f.vint
}

func (f KeyValue) StringValue() string {
	f.mustBe(StringType)

	return f.vstr
}

func (f KeyValue) BoolValue() bool {
	f.mustBe(BoolType)

	return f.vint != 0
}

func (f KeyValue) DurationValue() time.Duration {
	f.mustBe(DurationType)

	return time.Duration(f.vint)
}

func (f KeyValue) StringsValue() []string {
	f.mustBe(StringsType)
	if f.vany == nil {
		return nil
	}
	v, _ := f.vany.([]string)

	return v
}

func (f KeyValue) ErrorValue() error {
	f.mustBe(ErrorType)
	if f.vany == nil {
		return nil
	}
	v, _ := f.vany.(error)

	return v
}

func (f KeyValue) AnyValue() interface{} {
	switch f.ftype {
	case IntType:
		return f.IntValue()
	case Int64Type:
		return f.Int64Value()
	case StringType:
		return f.StringValue()
	case BoolType:
		return f.BoolValue()
	case DurationType:
		return f.DurationValue()
	case StringsType:
		return f.StringsValue()
	case ErrorType:
		return f.ErrorValue()
	default:
		return f.vany
	}
}

func (f KeyValue) String() string {
	switch f.ftype {
	case IntType, Int64Type:
		return strconv.FormatInt(f.vint, 10)
	case StringType:
		return f.vstr
	case BoolType:
		return strconv.FormatBool(f.BoolValue())
	case DurationType:
		return f.DurationValue().String()
	case StringsType:
		return fmt.Sprintf("%v", f.StringsValue())
	case ErrorType:
		if f.vany == nil {
			return "<nil>"
		}

		return f.ErrorValue().Error()
	case AnyType:
		if f.vany == nil {
			return "<nil>"
		}

		return fmt.Sprintf("%v", f.vany)
	case StringerType:
		if s, ok := f.vany.(fmt.Stringer); ok && s != nil {
			return s.String()
		}

		return "<nil>"
	default:
		panic("kv: unknown field type " + f.ftype.String())
	}
}

func (f KeyValue) mustBe(t FieldType) {
	if f.ftype != t {
		panic(fmt.Sprintf("kv: field %q is %s, not %s", f.key, f.ftype, t))
	}
}

func Int(k string, v int) KeyValue {
	return KeyValue{ftype: IntType, key: k, vint: int64(v)}
}

func Int64(k string, v int64) KeyValue {
	return KeyValue{ftype: Int64Type, key: k, vint: v}
}

func String(k, v string) KeyValue {
	return KeyValue{ftype: StringType, key: k, vstr: v}
}

func Bool(k string, v bool) KeyValue {
	var i int64
	if v {
		i = 1
	}

	return KeyValue{ftype: BoolType, key: k, vint: i}
}

func Duration(k string, v time.Duration) KeyValue {
	return KeyValue{ftype: DurationType, key: k, vint: v.Nanoseconds()}
}

func Strings(k string, v []string) KeyValue {
	return KeyValue{ftype: StringsType, key: k, vany: v}
}

func NamedError(k string, v error) KeyValue {
	return KeyValue{ftype: ErrorType, key: k, vany: v}
}

func Error(v error) KeyValue {
	return NamedError("error", v)
}

func Any(k string, v interface{}) KeyValue {
	return KeyValue{ftype: AnyType, key: k, vany: v}
}

func Stringer(k string, v fmt.Stringer) KeyValue {
	return KeyValue{ftype: StringerType, key: k, vany: v}
}

// Latency is the elapsed duration since start
func Latency(start time.Time, now time.Time) KeyValue {
	return Duration("latency", now.Sub(start))
}
