package xerrors

import (
	"fmt"

	"github.com/ydb-platform/ydb-go-locked/internal/xstring"
)

// Join collects non-nil errors; it returns nil when nothing left
func Join(errs ...error) error {
	var joined joinErrors
	for _, err := range errs {
		if err != nil {
			joined = append(joined, err)
		}
	}
	if len(joined) == 0 {
		return nil
	}

	return joined
}

type joinErrors []error

func (errs joinErrors) Error() string {
	b := xstring.Buffer()
	defer b.Free()
	b.WriteByte('[')
	for i, err := range errs {
		if i > 0 {
			_ = b.WriteByte(',')
		}
		_, _ = fmt.Fprintf(b, "%q", err.Error())
	}
	b.WriteByte(']')

	return b.String()
}

func (errs joinErrors) Unwrap() []error {
	return errs
}
