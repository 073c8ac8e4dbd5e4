package domain

const (
	FieldTitle  = "title"
	FieldBody   = "body"
	FieldAuthor = "author"
)

// PostForm holds what the user typed into the "Add New Post" form.
type PostForm struct {
	Title  string `form:"title" validate:"required"`
	Body   string `form:"body" validate:"required"`
	Author string `form:"author" validate:"required"`
}

func (f PostForm) IsZero() bool {
	return f == PostForm{}
}

// FieldErrors maps a form field name to the message shown next to its input.
type FieldErrors map[string]string

// AddPostResult is the tagged result of the backend's addPost operation:
// {ok} when Err is nil, {err: *Err} otherwise.
type AddPostResult struct {
	Err *string
}

func AddPostOK() AddPostResult {
	return AddPostResult{}
}

func AddPostErr(message string) AddPostResult {
	return AddPostResult{Err: &message}
}

func (r AddPostResult) OK() bool {
	return r.Err == nil
}
