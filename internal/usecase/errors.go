package usecase

import (
	"errors"

	xhttp "StockScope/pkg/http"
)

// wrapProviderError keeps an upstream AppError (its status matters, e.g. a
// propagated rate limit) and folds everything else into a generic 500 with a
// caller-facing message.
func wrapProviderError(err error, message string) error {
	var appErr *xhttp.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return xhttp.InternalError(message).WithError(err)
}
