package transcripts

import "time"

//go:generate mockgen -destination=mock/mock_time_provider.go -package=mocktranscripts -source=time_provider.go

// TimeProvider supplies the current time
type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now().UTC() }

// NewTimeProvider returns a provider backed by the system clock
func NewTimeProvider() TimeProvider {
	return realTimeProvider{}
}
