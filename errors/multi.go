package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If no error or only nil values were provided, nil is returned. A single
// non-nil error is returned as it is. Error lists are flattened, so the result
// never contains nested lists.
func Append(errs ...error) error {
	var res multiErr
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		if m, ok := e.(multiErr); ok {
			res = append(res, m...)
			continue
		}
		res = append(res, e)
	}
	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

// multiErr is a flat list of errors. Kind tests (Error.Is) succeed if any of
// the contained errors is a match.
type multiErr []error

func (errs multiErr) Error() string {
	points := make([]string, len(errs))
	for i, err := range errs {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf(
		"%d errors occurred:\n\t%s\n",
		len(errs), strings.Join(points, "\n\t"))
}

// Unpack implements the unpacker interface.
func (errs multiErr) Unpack() []error {
	return errs
}
