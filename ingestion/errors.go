package ingestion

import "errors"

var (
	// ErrManagerRequired is returned when an affix manager is not provided.
	ErrManagerRequired = errors.New("affix manager required")

	// ErrStemRepositoryRequired is returned when a stem repository is not provided.
	ErrStemRepositoryRequired = errors.New("stem repository required")

	// ErrInfoRepositoryRequired is returned when an info repository is not provided.
	ErrInfoRepositoryRequired = errors.New("info repository required")

	// ErrInvalidWordList is returned when a word list line cannot be parsed.
	ErrInvalidWordList = errors.New("invalid word list")
)
