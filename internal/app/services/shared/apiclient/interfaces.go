package apiclient

import "context"

// Client is the authenticated REST surface of the platform API. Every
// call resolves the credential (memory first, persisted fallback),
// attaches the bearer header, and classifies failures into the agent's
// error taxonomy. A 401 on anything but login/register while a session
// exists hands the decision to the logout coordinator.
type Client interface {
	Get(ctx context.Context, path string, out interface{}) error
	Post(ctx context.Context, path string, body, out interface{}) error
	Put(ctx context.Context, path string, body, out interface{}) error
	Delete(ctx context.Context, path string) error
}
