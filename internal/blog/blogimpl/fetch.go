package blogimpl

import (
	"context"

	"github.com/orgball2608/crypto-blog/internal/domain"
)

func (b *BlogImpl) Mount(ctx context.Context) {
	b.mountOnce.Do(func() {
		b.Logger.Info("Mounting blog page")
		b.FetchPosts(ctx)
	})
}

func (b *BlogImpl) FetchPosts(ctx context.Context) {
	b.setLoading(true)
	b.fetchPosts(ctx)
}

// fetchPosts swaps in the backend's list wholesale and always ends with
// loading cleared.
func (b *BlogImpl) fetchPosts(ctx context.Context) {
	posts, err := b.Backend.GetPosts(ctx)
	if err != nil {
		b.Logger.Error("Error fetching posts", "error", err)
		b.setLoading(false)
		return
	}

	b.mu.Lock()
	b.posts = append([]domain.Post{}, posts...)
	b.loading = false
	b.mu.Unlock()

	b.Logger.Debug("Fetched posts", "count", len(posts))
}
