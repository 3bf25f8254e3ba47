package port

import (
	"tempest/internal/core/domain"
	"time"
)

type Metrics interface {
	RecordInvocation(command string, outcome domain.Outcome, elapsed time.Duration)
}
