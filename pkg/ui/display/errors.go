package display

import (
	stderrors "errors"

	"github.com/arthur-debert/doksnet/pkg/errors"
)

// ErrorMessage returns the message of a coded error without its code prefix
func ErrorMessage(err error) string {
	var de *errors.DoksError
	if stderrors.As(err, &de) {
		if de.Wrapped != nil && de.Code != errors.GetErrorCode(de.Wrapped) {
			return de.Message + ": " + de.Wrapped.Error()
		}
		return de.Message
	}
	return err.Error()
}
