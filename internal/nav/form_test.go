package nav

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/threds/internal/route"
	"github.com/five82/threds/internal/threds"
)

func boardController(t *testing.T, backend *fakeBackend) *Controller {
	t.Helper()
	backend.lists["w"] = []threds.Thread{sampleThread("w", "1", "one")}
	c := New(route.NewHistory("/board/w"))
	c.Apply(Load(context.Background(), backend, c.Init()))
	require.Len(t, c.Threds(), 1)
	return c
}

func TestCreateThread_Success(t *testing.T) {
	backend := newFakeBackend()
	c := boardController(t, backend)
	require.True(t, c.StartThread())

	sub, err := c.BeginCreateThread(Draft{Subject: " hello ", Content: "world"})
	require.NoError(t, err)
	assert.True(t, c.Form().Busy)

	res := Submit(context.Background(), backend, sub)
	require.NoError(t, res.Err)
	c.FinishSubmit(res)

	assert.Equal(t, Form{}, c.Form())
	require.Len(t, c.Threds(), 2)
	assert.Equal(t, threds.ID("new1"), c.Threds()[0].ID, "created thread is prepended")
	assert.Equal(t, threds.BoardWork, c.Threds()[0].BoardID)
	assert.Equal(t, "hello", backend.created[0].Subject)
}

func TestCreateThread_FailureKeepsListAndDraft(t *testing.T) {
	backend := newFakeBackend()
	c := boardController(t, backend)
	require.True(t, c.StartThread())
	backend.failCreate = true

	sub, err := c.BeginCreateThread(Draft{Subject: "subj", Content: "body"})
	require.NoError(t, err)
	res := Submit(context.Background(), backend, sub)
	require.Error(t, res.Err)
	c.FinishSubmit(res)

	form := c.Form()
	assert.False(t, form.Busy)
	assert.True(t, form.Composing)
	assert.Equal(t, "subj", form.Subject)
	assert.Equal(t, "body", form.Content)
	assert.Contains(t, form.Err, "backend unavailable")
	require.Len(t, c.Threds(), 1)
	assert.Equal(t, threds.ID("1"), c.Threds()[0].ID)
}

func TestBegin_RejectsWhileBusy(t *testing.T) {
	backend := newFakeBackend()
	c := boardController(t, backend)

	_, err := c.BeginCreateThread(Draft{Subject: "a", Content: "b"})
	require.NoError(t, err)
	_, err = c.BeginCreateThread(Draft{Subject: "a", Content: "b"})
	assert.ErrorIs(t, err, ErrBusy)
	assert.False(t, c.CancelForm(), "busy form cannot be cancelled")
}

func TestBegin_Validation(t *testing.T) {
	backend := newFakeBackend()
	c := boardController(t, backend)

	_, err := c.BeginCreateThread(Draft{Subject: "  ", Content: "x"})
	assert.ErrorIs(t, err, ErrSubjectRequired)
	assert.Equal(t, ErrSubjectRequired.Error(), c.Form().Err)
	assert.False(t, c.Form().Busy)

	_, err = c.BeginCreateThread(Draft{Subject: "s", Content: "\n"})
	assert.ErrorIs(t, err, ErrContentRequired)

	_, err = c.BeginReply(Draft{Content: "x"})
	assert.ErrorIs(t, err, ErrNoThread)

	c.GoHome()
	_, err = c.BeginCreateThread(Draft{Subject: "s", Content: "c"})
	assert.ErrorIs(t, err, ErrNoBoard)
	assert.False(t, c.StartThread())
}

func TestReply_SuccessRefreshesThread(t *testing.T) {
	backend := newFakeBackend()
	backend.threads["1"] = &threds.Thread{ID: "1", BoardID: "w", Posts: []threds.Post{{ID: "op"}}}
	c := New(route.NewHistory("/board/w/thread/1"))
	c.Apply(Load(context.Background(), backend, c.Init()))
	require.True(t, c.ReplyTo("op"))

	sub, err := c.BeginReply(Draft{Content: "agreed"})
	require.NoError(t, err)
	assert.Equal(t, threds.ID("op"), sub.ReplyTo)

	res := Submit(context.Background(), backend, sub)
	require.NoError(t, res.Err)
	c.FinishSubmit(res)

	require.NotNil(t, c.ActiveThread())
	assert.Len(t, c.ActiveThread().Posts, 2)
	assert.Equal(t, Form{}, c.Form())
	assert.Equal(t, threds.ID("op"), backend.posts[0].ReplyToID)
}

func TestReply_WithImageUploadsFirst(t *testing.T) {
	backend := newFakeBackend()
	backend.threads["1"] = &threds.Thread{ID: "1", BoardID: "w"}
	c := New(route.NewHistory("/board/w/thread/1"))

	path := filepath.Join(t.TempDir(), "pic.png")
	require.NoError(t, os.WriteFile(path, []byte("pixels"), 0o600))

	sub, err := c.BeginReply(Draft{Content: "look", ImagePath: path})
	require.NoError(t, err)
	res := Submit(context.Background(), backend, sub)
	require.NoError(t, res.Err)

	assert.Equal(t, []string{"upload", "post:1", "thread:1"}, backend.calls)
	assert.Equal(t, "https://cdn.example/pixels", backend.posts[0].ImageURL)
}

func TestSubmit_UploadFailureStopsBeforeCreate(t *testing.T) {
	backend := newFakeBackend()
	c := boardController(t, backend)
	backend.calls = nil

	sub, err := c.BeginCreateThread(Draft{Subject: "s", Content: "c", ImagePath: filepath.Join(t.TempDir(), "missing.png")})
	require.NoError(t, err)
	res := Submit(context.Background(), backend, sub)
	assert.ErrorIs(t, res.Err, threds.ErrImageUpload)
	assert.Empty(t, backend.calls)

	path := filepath.Join(t.TempDir(), "ok.png")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	backend.failUpload = true
	res = Submit(context.Background(), backend, Submission{Kind: SubmitThread, Board: "w", Draft: Draft{Subject: "s", Content: "c", ImagePath: path}})
	assert.ErrorIs(t, res.Err, threds.ErrImageUpload)
	assert.Equal(t, []string{"upload"}, backend.calls)

	c.FinishSubmit(res)
	assert.True(t, c.Form().Busy, "result of a different submission leaves the form alone")
}

func TestFinishSubmit_AfterNavigationAppliesDataOnly(t *testing.T) {
	backend := newFakeBackend()
	c := boardController(t, backend)

	sub, err := c.BeginCreateThread(Draft{Subject: "s", Content: "c"})
	require.NoError(t, err)
	c.SelectBoard(threds.BoardRandom)
	assert.Equal(t, Form{}, c.Form())

	c.FinishSubmit(SubmitResult{Submission: sub, Err: errors.New("late failure")})
	assert.Empty(t, c.Form().Err)
}

func TestFormHelpers(t *testing.T) {
	c := New(route.NewHistory("/board/w/thread/1"))
	assert.False(t, c.ReplyTo(""))
	require.True(t, c.ReplyTo("p1"))
	c.ClearReplyTarget()
	assert.Empty(t, c.Form().ReplyTo)

	_, _ = c.BeginReply(Draft{})
	assert.NotEmpty(t, c.Form().Err)
	c.DismissFormError()
	assert.Empty(t, c.Form().Err)
	assert.True(t, c.CancelForm())
}

func TestEditDraft_IgnoredWhileBusy(t *testing.T) {
	backend := newFakeBackend()
	c := boardController(t, backend)

	require.True(t, c.EditDraft(Draft{Subject: "s", Content: "typed"}))
	assert.Equal(t, "typed", c.Form().Content)

	_, err := c.BeginCreateThread(Draft{Subject: "s", Content: "typed"})
	require.NoError(t, err)
	assert.False(t, c.EditDraft(Draft{Content: "changed"}))
	assert.Equal(t, "typed", c.Form().Content)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "", ErrorMessage(nil, "fallback"))
	assert.Equal(t, "boom", ErrorMessage(errors.New("boom"), "fallback"))
	assert.Equal(t, "fallback", ErrorMessage(errors.New("  "), "fallback"))
}
