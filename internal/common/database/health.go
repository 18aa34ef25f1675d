package database

import "context"

// Pinger is implemented by every client checked by the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingAll returns the first failing dependency by name.
func PingAll(ctx context.Context, deps map[string]Pinger) (string, error) {
	for name, dep := range deps {
		if dep == nil {
			continue
		}
		if err := dep.Ping(ctx); err != nil {
			return name, err
		}
	}
	return "", nil
}
