package usecase

import "errors"

// DomainError: o caller mandou algo inválido (payload, campos faltando).
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// StoreError: falha do Postgres ao gravar ou ler leads.
type StoreError struct {
	Code    string
	Message string
}

func (e *StoreError) Error() string {
	return e.Message
}

func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
