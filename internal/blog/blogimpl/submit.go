package blogimpl

import (
	"context"
	"maps"

	"github.com/orgball2608/crypto-blog/internal/blog"
	"github.com/orgball2608/crypto-blog/internal/domain"
	"github.com/orgball2608/crypto-blog/pkg/errors"
)

func (b *BlogImpl) Submit(ctx context.Context, form domain.PostForm) error {
	fieldErrors := b.validateForm(form)

	b.mu.Lock()
	b.form = form
	b.errors = fieldErrors
	if len(fieldErrors) > 0 {
		b.mu.Unlock()
		return &blog.ValidationError{Fields: maps.Clone(fieldErrors)}
	}
	b.loading = true
	b.mu.Unlock()

	b.addPost(ctx, form)
	b.setLoading(false)

	return nil
}

func (b *BlogImpl) addPost(ctx context.Context, form domain.PostForm) {
	if err := b.add(ctx, form); err != nil {
		if errors.IsRejected(err) {
			b.Logger.Error("Error adding post", "error", err, "reason", errors.GetMessage(err))
		} else {
			b.Logger.Error("Error adding post", "error", err)
		}
		return
	}

	b.Logger.Info("Post added", "title", form.Title, "author", form.Author)

	b.fetchPosts(ctx)
	b.resetForm()
}

// add turns an {err} result into an ErrRejected error carrying the backend's message.
func (b *BlogImpl) add(ctx context.Context, form domain.PostForm) error {
	res, err := b.Backend.AddPost(ctx, form.Title, form.Body, form.Author)
	if err != nil {
		return err
	}
	if !res.OK() {
		return errors.WrapWithCode(errors.ErrRejected, errors.CodeRejected, *res.Err)
	}
	return nil
}

func (b *BlogImpl) resetForm() {
	b.mu.Lock()
	b.form = domain.PostForm{}
	b.errors = nil
	b.mu.Unlock()
}
