package app

// EventSink receives a copy of every broadcast-scope event, so deployments
// can mirror presence churn to an external bus for sibling nodes or ops
// tooling. Implementations must not block; delivery is best effort.
type EventSink interface {
	Publish(event string, data any)
}
