package validation

import (
	"fmt"

	"yt-captions/errors"
)

// PaginationParams are the effective values after defaults have been
// applied; validation happens before any chunking.
type PaginationParams struct {
	ChunkSize  int
	MaxChunks  int
	StartIndex int
}

func ValidatePagination(params PaginationParams) error {
	const op = "validation.ValidatePagination"

	if params.ChunkSize <= 0 {
		return errors.InvalidInput(op, nil, fmt.Sprintf("chunk_size must be greater than 0, got %d", params.ChunkSize))
	}
	if params.MaxChunks <= 0 {
		return errors.InvalidInput(op, nil, fmt.Sprintf("max_chunks must be greater than 0, got %d", params.MaxChunks))
	}
	if params.StartIndex < 0 {
		return errors.InvalidInput(op, nil, fmt.Sprintf("start_index must not be negative, got %d", params.StartIndex))
	}

	return nil
}
