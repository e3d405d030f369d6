package httperr

import "errors"

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// IsUniqueViolation detecta violação de índice único do Postgres
// (SQLSTATE 23505) sem acoplar o chamador ao driver.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	type sqlState interface{ SQLState() string }
	var se sqlState
	if errors.As(err, &se) {
		return se.SQLState() == "23505"
	}
	return false
}
