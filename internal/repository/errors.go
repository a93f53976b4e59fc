package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrDuplicate           = errors.New("duplicate")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrInvalidID           = errors.New("invalid id")
	ErrTxAborted           = errors.New("transaction aborted")
	ErrOverlap             = errors.New("overlapping interval")
	ErrSerialization       = errors.New("serialization failure")
	// ErrInvalidData covers values the schema refuses: data exceptions
	// (class 22, e.g. a string too long for its column) and check violations.
	ErrInvalidData = errors.New("invalid data")
)

// Postgres SQLSTATE codes we translate.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeExclusionViolation  = "23P01"
	codeInvalidText         = "22P02"
	codeInFailedTx          = "25P02"
	codeSerialization       = "40001"
	codeCheckViolation      = "23514"
	classDataException      = "22"
)

var sentinels = []error{
	ErrNotFound, ErrDuplicate, ErrForeignKeyViolation, ErrInvalidID,
	ErrTxAborted, ErrOverlap, ErrSerialization, ErrInvalidData,
}

// Translate maps a raw driver error onto the package sentinels. Retry
// predicates use it to see through pgx errors.
func Translate(err error) error {
	return wrapDBError(err)
}

func wrapDBError(err error) error {
	if err == nil {
		return nil
	}

	for _, s := range sentinels {
		if errors.Is(err, s) {
			return err
		}
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		return errors.Join(ErrDuplicate, err)
	case codeForeignKeyViolation:
		return errors.Join(ErrForeignKeyViolation, err)
	case codeExclusionViolation:
		return errors.Join(ErrOverlap, err)
	case codeInvalidText:
		return errors.Join(ErrInvalidID, err)
	case codeInFailedTx:
		return errors.Join(ErrTxAborted, err)
	case codeSerialization:
		return errors.Join(ErrSerialization, err)
	case codeCheckViolation:
		return errors.Join(ErrInvalidData, err)
	}

	if strings.HasPrefix(pgErr.Code, classDataException) {
		return errors.Join(ErrInvalidData, err)
	}

	return err
}
