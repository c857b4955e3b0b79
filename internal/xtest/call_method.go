package xtest

import (
	"fmt"
	"reflect"
)

// CallMethod calls the method name of object with args and returns its
// results in order. It panics when object has no such exported method.
func CallMethod(object any, name string, args ...any) []any {
	method := reflect.ValueOf(object).MethodByName(name)
	if !method.IsValid() {
		panic(fmt.Sprintf("%T has no method %s", object, name))
	}

	in := make([]reflect.Value, 0, len(args))
	for _, arg := range args {
		in = append(in, reflect.ValueOf(arg))
	}

	out := method.Call(in)
	results := make([]any, 0, len(out))
	for _, v := range out {
		results = append(results, v.Interface())
	}

	return results
}
