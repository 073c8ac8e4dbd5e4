package blogimpl

import (
	"bytes"
	"context"
	stderrors "errors"
	"testing"

	mock_backend "github.com/orgball2608/crypto-blog/internal/backend/mocks"
	"github.com/orgball2608/crypto-blog/internal/blog"
	"github.com/orgball2608/crypto-blog/internal/domain"
	"github.com/orgball2608/crypto-blog/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var ctx = context.Background()

var (
	halving = domain.Post{ID: "1", Title: "Halving", Body: "Supply shock.", Author: "satoshi", Timestamp: 1700000000000000000}
	gasFees = domain.Post{ID: "2", Title: "Gas fees", Body: "Too high.", Author: "vitalik", Timestamp: 1690000000000000000}
	staking = domain.Post{ID: "3", Title: "Staking", Body: "Lock it up.", Author: "gavin", Timestamp: 1710000000000000000}

	validForm = domain.PostForm{Title: "Staking", Body: "Lock it up.", Author: "gavin"}
)

type fixture struct {
	backend *mock_backend.MockClient
	blog    *BlogImpl
	logs    *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	backend := mock_backend.NewMockClient(ctrl)
	logs := &bytes.Buffer{}

	return &fixture{
		backend: backend,
		blog: New(Opts{
			Backend: backend,
			Logger:  logger.New(logger.Opts{Env: logger.EnvProduction, Output: logs}),
		}),
		logs: logs,
	}
}

// mounted returns a fixture whose first fetch already returned posts.
func mounted(t *testing.T, posts ...domain.Post) *fixture {
	t.Helper()

	f := newFixture(t)
	f.backend.EXPECT().GetPosts(gomock.Any()).Return(posts, nil)
	f.blog.Mount(ctx)
	require.False(t, f.blog.State().Loading)
	return f
}

func TestNewStartsLoadingWithNoPosts(t *testing.T) {
	f := newFixture(t)

	state := f.blog.State()

	require.True(t, state.Loading)
	require.Empty(t, state.Posts)
	require.True(t, state.Form.IsZero())
	require.Empty(t, state.Errors)
}

func TestMountFetchesExactlyOnce(t *testing.T) {
	f := newFixture(t)
	f.backend.EXPECT().GetPosts(gomock.Any()).Return([]domain.Post{halving}, nil).Times(1)

	f.blog.Mount(ctx)
	f.blog.Mount(ctx)

	require.Equal(t, []domain.Post{halving}, f.blog.State().Posts)
}

func TestFetchPostsReplacesWholeList(t *testing.T) {
	f := mounted(t, halving, gasFees)
	f.backend.EXPECT().GetPosts(gomock.Any()).Return([]domain.Post{staking, halving, halving}, nil)

	f.blog.FetchPosts(ctx)

	state := f.blog.State()
	require.Equal(t, []domain.Post{staking, halving, halving}, state.Posts)
	require.False(t, state.Loading)
}

func TestFetchPostsFailureKeepsStaleList(t *testing.T) {
	f := mounted(t, halving, gasFees)
	f.backend.EXPECT().GetPosts(gomock.Any()).Return(nil, stderrors.New("connection refused"))

	f.blog.FetchPosts(ctx)

	state := f.blog.State()
	require.Equal(t, []domain.Post{halving, gasFees}, state.Posts)
	require.False(t, state.Loading)
	require.Contains(t, f.logs.String(), "Error fetching posts")
	require.Contains(t, f.logs.String(), "connection refused")
}

func TestMountFailureLeavesEmptyList(t *testing.T) {
	f := newFixture(t)
	f.backend.EXPECT().GetPosts(gomock.Any()).Return(nil, stderrors.New("connection refused"))

	f.blog.Mount(ctx)

	state := f.blog.State()
	require.NotNil(t, state.Posts)
	require.Empty(t, state.Posts)
	require.False(t, state.Loading)
}

func TestFetchPostsShowsLoadingOnlyWhileInFlight(t *testing.T) {
	f := mounted(t, halving)
	f.backend.EXPECT().GetPosts(gomock.Any()).DoAndReturn(func(context.Context) ([]domain.Post, error) {
		require.True(t, f.blog.State().Loading)
		return []domain.Post{gasFees}, nil
	})

	require.False(t, f.blog.State().Loading)
	f.blog.FetchPosts(ctx)
	require.False(t, f.blog.State().Loading)
}

func TestSubmitWithMissingFieldsNeverCallsBackend(t *testing.T) {
	tests := []struct {
		name string
		form domain.PostForm
		want domain.FieldErrors
	}{
		{
			name: "all empty",
			form: domain.PostForm{},
			want: domain.FieldErrors{
				domain.FieldTitle:  "Title is required",
				domain.FieldBody:   "Body is required",
				domain.FieldAuthor: "Author is required",
			},
		},
		{
			name: "missing title",
			form: domain.PostForm{Body: "b", Author: "a"},
			want: domain.FieldErrors{domain.FieldTitle: "Title is required"},
		},
		{
			name: "missing body",
			form: domain.PostForm{Title: "t", Author: "a"},
			want: domain.FieldErrors{domain.FieldBody: "Body is required"},
		},
		{
			name: "missing author",
			form: domain.PostForm{Title: "t", Body: "b"},
			want: domain.FieldErrors{domain.FieldAuthor: "Author is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// AddPost has no expectation: any call fails the test.
			f := mounted(t, halving)

			err := f.blog.Submit(ctx, tt.form)

			var verr *blog.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tt.want, verr.Fields)

			state := f.blog.State()
			require.Equal(t, tt.want, state.Errors)
			require.Equal(t, tt.form, state.Form)
			require.False(t, state.Loading)
			require.Equal(t, []domain.Post{halving}, state.Posts)
		})
	}
}

func TestSubmitAcceptsWhitespaceValues(t *testing.T) {
	f := mounted(t)
	form := domain.PostForm{Title: " ", Body: "\n", Author: "\t"}
	f.backend.EXPECT().AddPost(gomock.Any(), " ", "\n", "\t").Return(domain.AddPostErr("blank"), nil)

	require.NoError(t, f.blog.Submit(ctx, form))
}

func TestSubmitOKRefetchesAndClearsForm(t *testing.T) {
	f := mounted(t, halving)
	gomock.InOrder(
		f.backend.EXPECT().
			AddPost(gomock.Any(), validForm.Title, validForm.Body, validForm.Author).
			DoAndReturn(func(context.Context, string, string, string) (domain.AddPostResult, error) {
				require.True(t, f.blog.State().Loading)
				return domain.AddPostOK(), nil
			}),
		f.backend.EXPECT().GetPosts(gomock.Any()).DoAndReturn(func(context.Context) ([]domain.Post, error) {
			state := f.blog.State()
			require.True(t, state.Loading)
			require.Equal(t, validForm, state.Form)
			return []domain.Post{halving, staking}, nil
		}),
	)

	require.NoError(t, f.blog.Submit(ctx, validForm))

	state := f.blog.State()
	require.Equal(t, []domain.Post{halving, staking}, state.Posts)
	require.True(t, state.Form.IsZero())
	require.Empty(t, state.Errors)
	require.False(t, state.Loading)
}

func TestSubmitClearsPreviousFieldErrors(t *testing.T) {
	f := mounted(t)
	require.Error(t, f.blog.Submit(ctx, domain.PostForm{Title: "Staking"}))
	f.backend.EXPECT().AddPost(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, string, string) (domain.AddPostResult, error) {
			require.Empty(t, f.blog.State().Errors)
			return domain.AddPostErr("x"), nil
		})

	require.NoError(t, f.blog.Submit(ctx, validForm))
}

func TestSubmitErrResultKeepsFormAndSkipsRefetch(t *testing.T) {
	f := mounted(t, halving)
	f.backend.EXPECT().AddPost(gomock.Any(), validForm.Title, validForm.Body, validForm.Author).
		Return(domain.AddPostErr("duplicate title"), nil)

	require.NoError(t, f.blog.Submit(ctx, validForm))

	state := f.blog.State()
	require.Equal(t, validForm, state.Form)
	require.Equal(t, []domain.Post{halving}, state.Posts)
	require.False(t, state.Loading)
	require.Contains(t, f.logs.String(), "Error adding post")
	require.Contains(t, f.logs.String(), `"reason":"duplicate title"`)
}

func TestSubmitTransportErrorKeepsForm(t *testing.T) {
	f := mounted(t, halving)
	f.backend.EXPECT().AddPost(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.AddPostResult{}, stderrors.New("connection reset"))

	require.NoError(t, f.blog.Submit(ctx, validForm))

	state := f.blog.State()
	require.Equal(t, validForm, state.Form)
	require.False(t, state.Loading)
	require.Contains(t, f.logs.String(), "connection reset")
	require.NotContains(t, f.logs.String(), `"reason"`)
}

func TestSubmitOKWithFailedRefetchStillClearsForm(t *testing.T) {
	f := mounted(t, halving)
	f.backend.EXPECT().AddPost(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.AddPostOK(), nil)
	f.backend.EXPECT().GetPosts(gomock.Any()).Return(nil, stderrors.New("timeout"))

	require.NoError(t, f.blog.Submit(ctx, validForm))

	state := f.blog.State()
	require.True(t, state.Form.IsZero())
	require.Equal(t, []domain.Post{halving}, state.Posts)
	require.False(t, state.Loading)
}

func TestStateReturnsCopies(t *testing.T) {
	f := mounted(t, halving)
	require.Error(t, f.blog.Submit(ctx, domain.PostForm{}))

	state := f.blog.State()
	state.Posts[0].Title = "changed"
	state.Errors[domain.FieldTitle] = "changed"

	fresh := f.blog.State()
	require.Equal(t, "Halving", fresh.Posts[0].Title)
	require.Equal(t, "Title is required", fresh.Errors[domain.FieldTitle])
}

func TestValidationErrorMessage(t *testing.T) {
	err := &blog.ValidationError{Fields: domain.FieldErrors{
		domain.FieldTitle:  "Title is required",
		domain.FieldAuthor: "Author is required",
	}}

	require.Equal(t, "invalid post form: author, title", err.Error())
}
