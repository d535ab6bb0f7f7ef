package fossil

import "errors"

var (
	errLLMUnavailable = errors.New("llm unavailable")
	errMalformedDot   = errors.New("reply is not a digraph")
	errNoRenderer     = errors.New("graph renderer not configured")
)
