package blogimpl

import (
	"maps"
	"slices"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/orgball2608/crypto-blog/internal/backend"
	"github.com/orgball2608/crypto-blog/internal/blog"
	"github.com/orgball2608/crypto-blog/internal/domain"
	"github.com/orgball2608/crypto-blog/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Backend backend.Client
	Logger  logger.Logger
}

type BlogImpl struct {
	Backend backend.Client
	Logger  logger.Logger

	validate  *validator.Validate
	mountOnce sync.Once

	mu      sync.RWMutex
	posts   []domain.Post
	loading bool
	form    domain.PostForm
	errors  domain.FieldErrors
}

// New returns a controller in the loading state with no posts, matching a
// page that has not finished its first fetch.
func New(opts Opts) *BlogImpl {
	return &BlogImpl{
		Backend:  opts.Backend,
		Logger:   opts.Logger.WithComponent("BlogController"),
		validate: newValidator(),
		posts:    []domain.Post{},
		loading:  true,
	}
}

var _ blog.Controller = (*BlogImpl)(nil)

func (b *BlogImpl) State() blog.State {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return blog.State{
		Posts:   slices.Clone(b.posts),
		Loading: b.loading,
		Form:    b.form,
		Errors:  maps.Clone(b.errors),
	}
}

func (b *BlogImpl) setLoading(loading bool) {
	b.mu.Lock()
	b.loading = loading
	b.mu.Unlock()
}
