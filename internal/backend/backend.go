package backend

import (
	"context"

	"github.com/orgball2608/crypto-blog/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=backend.go -destination=mocks/mock.go

// Client is the remote blog backend. Ordering, pagination and retries are
// the backend's business.
type Client interface {
	// GetPosts returns every post in the order the backend sends them.
	GetPosts(ctx context.Context) ([]domain.Post, error)

	// AddPost reports a domain-level refusal through the result and a
	// transport failure through the error.
	AddPost(ctx context.Context, title, body, author string) (domain.AddPostResult, error)
}
