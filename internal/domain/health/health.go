package health

import "context"

type Status string

const (
	StatusOK       Status = "ok"
	StatusDegraded Status = "degraded"
)

type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}
