package agent

import (
	"errors"
	"time"

	"codeberg.org/vaidya/server/internal/llm"
)

// the single failure kind the gateway reports; handlers substitute the persona fallback
var ErrUpstream = errors.New("model gateway failure")

// receives token counts for each successful model call
type UsageObserver interface {
	ObserveTokens(model string, input, output int)
}

// wraps the external model call with the persona prompt
type Agent struct {
	generator llm.TextGenerator
	persona   *Persona
	timeout   time.Duration
	usage     UsageObserver
}
