package backendimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/orgball2608/crypto-blog/internal/domain"
	"github.com/orgball2608/crypto-blog/pkg/errors"
)

const maxErrorBody = 512

type addPostRequest struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Author string `json:"author"`
}

// GetPosts fetches GET {base}/posts.
func (b *BackendImpl) GetPosts(ctx context.Context) ([]domain.Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.postsURL(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build get posts request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := b.do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get posts")
	}
	defer resp.Body.Close()

	var posts []domain.Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, errors.WrapWithCode(
			fmt.Errorf("%w: %w", errors.ErrBadResponse, err),
			errors.CodeDecode,
			"failed to decode posts",
		)
	}
	if posts == nil {
		posts = []domain.Post{}
	}

	return posts, nil
}

// AddPost sends POST {base}/posts and decodes the {ok}/{err} result.
func (b *BackendImpl) AddPost(ctx context.Context, title, body, author string) (domain.AddPostResult, error) {
	payload, err := json.Marshal(addPostRequest{Title: title, Body: body, Author: author})
	if err != nil {
		return domain.AddPostResult{}, errors.Wrap(err, "failed to encode post")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.postsURL(), bytes.NewReader(payload))
	if err != nil {
		return domain.AddPostResult{}, errors.Wrap(err, "failed to build add post request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := b.do(req)
	if err != nil {
		return domain.AddPostResult{}, errors.Wrap(err, "failed to add post")
	}
	defer resp.Body.Close()

	var tagged map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&tagged); err != nil {
		return domain.AddPostResult{}, errors.WrapWithCode(
			fmt.Errorf("%w: %w", errors.ErrBadResponse, err),
			errors.CodeDecode,
			"failed to decode add post result",
		)
	}

	if _, ok := tagged["ok"]; ok {
		return domain.AddPostOK(), nil
	}
	if raw, ok := tagged["err"]; ok {
		var message string
		if err := json.Unmarshal(raw, &message); err != nil {
			return domain.AddPostResult{}, errors.WrapWithCode(
				fmt.Errorf("%w: %w", errors.ErrBadResponse, err),
				errors.CodeDecode,
				"add post error is not a string",
			)
		}
		return domain.AddPostErr(message), nil
	}

	return domain.AddPostResult{}, errors.WrapWithCode(
		errors.ErrBadResponse,
		errors.CodeDecode,
		"add post result has neither ok nor err",
	)
}

// do sends req and turns connection failures and non-2xx answers into errors.
// On success the caller owns resp.Body.
func (b *BackendImpl) do(req *http.Request) (*http.Response, error) {
	resp, err := b.HTTP.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(
			fmt.Errorf("%w: %w", errors.ErrServiceUnavailable, err),
			errors.CodeTransport,
			fmt.Sprintf("%s %s", req.Method, req.URL.Path),
		)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, errors.WrapWithCode(
			errors.ErrBadResponse,
			errors.CodeStatus,
			fmt.Sprintf("%s %s: unexpected status %d: %s", req.Method, req.URL.Path, resp.StatusCode, bytes.TrimSpace(snippet)),
		)
	}

	return resp, nil
}
