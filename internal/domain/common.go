package domain

import "errors"

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// PaginatedResult wraps a page of rows with paging metadata
type PaginatedResult[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}
