// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fisiocare/fisio-api/internal/logger"
)

// decodeBody decodes the JSON body into dst. An empty body leaves dst zero and
// a syntactically invalid one fails with ErrMalformedBody. Values of the wrong
// type are skipped and the remaining fields are kept, so the database decides
// what is acceptable.
func decodeBody(r *http.Request, dst any, op string) error {
	err := json.NewDecoder(r.Body).Decode(dst)

	var syntaxErr *json.SyntaxError
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	default:
		logger.FromRequest(r).Warn().Err(err).Str("func", op).Msg("request body does not match the expected shape")
		return nil
	}
}

// queryParam returns the first value of the named query parameter. An absent
// parameter is nil, so it binds NULL; "?name=" yields an empty string.
func queryParam(r *http.Request, name string) *string {
	values, ok := r.URL.Query()[name]
	if !ok || len(values) == 0 {
		return nil
	}
	value := values[0]
	return &value
}
