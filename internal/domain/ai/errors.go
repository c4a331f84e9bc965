package ai

import "errors"

// ErrMissingAPIKey indicates no provider credential is configured.
// Every other provider failure (auth rejection, rate limit, transport,
// malformed reply) is returned as a plain wrapped error: the pipeline
// treats them all the same.
var ErrMissingAPIKey = errors.New("api key not configured")
