package error

import "errors"

func IsNotFound(err error) bool {
	var e *NotFound
	if errors.As(err, &e) {
		return e.Code == 404
	}
	return false
}

func IsBadRequest(err error) bool {
	var e *BadRequest
	if errors.As(err, &e) {
		return e.Code == 400
	}
	return false
}

func IsUnauthorized(err error) bool {
	var e *Unauthorized
	return errors.As(err, &e)
}
