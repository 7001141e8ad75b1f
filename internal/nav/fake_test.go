package nav

import (
	"context"
	"errors"
	"sync"

	"github.com/five82/threds/internal/threds"
)

var errFake = errors.New("backend unavailable")

type fakeBackend struct {
	mu sync.Mutex

	lists   map[threds.BoardID][]threds.Thread
	threads map[threds.ID]*threds.Thread

	failLists  map[threds.BoardID]bool
	failThread bool
	failCreate bool
	failUpload bool

	calls   []string
	created []threds.NewThread
	posts   []threds.NewPost
	uploads []string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		lists:     map[threds.BoardID][]threds.Thread{},
		threads:   map[threds.ID]*threds.Thread{},
		failLists: map[threds.BoardID]bool{},
	}
}

func (f *fakeBackend) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeBackend) FetchThreds(_ context.Context, board threds.BoardID) ([]threds.Thread, error) {
	f.record("list:" + string(board))
	if f.failLists[board] {
		return nil, errFake
	}
	return f.lists[board], nil
}

func (f *fakeBackend) FetchThread(_ context.Context, id threds.ID) (*threds.Thread, error) {
	f.record("thread:" + string(id))
	if f.failThread {
		return nil, errFake
	}
	t, ok := f.threads[id]
	if !ok {
		return nil, errors.New("not found")
	}
	dup := *t
	return &dup, nil
}

func (f *fakeBackend) CreateThread(_ context.Context, board threds.BoardID, payload threds.NewThread) (*threds.Thread, error) {
	f.record("create:" + string(board))
	if f.failCreate {
		return nil, errFake
	}
	f.created = append(f.created, payload)
	return &threds.Thread{
		ID:      "new1",
		Subject: payload.Subject,
		Posts:   []threds.Post{{ID: "p-new", Content: payload.Content, ImageURL: payload.ImageURL}},
	}, nil
}

func (f *fakeBackend) CreatePost(_ context.Context, threadID threds.ID, payload threds.NewPost) (*threds.Post, error) {
	f.record("post:" + string(threadID))
	if f.failCreate {
		return nil, errFake
	}
	f.posts = append(f.posts, payload)
	post := threds.Post{ID: "reply1", Content: payload.Content, ReplyToID: payload.ReplyToID, ImageURL: payload.ImageURL}
	if t, ok := f.threads[threadID]; ok {
		t.Posts = append(t.Posts, post)
	}
	return &post, nil
}

func (f *fakeBackend) UploadImage(_ context.Context, filename string, data []byte) (string, error) {
	f.record("upload")
	if f.failUpload {
		return "", threds.ErrImageUpload
	}
	f.uploads = append(f.uploads, filename)
	return "https://cdn.example/" + string(data), nil
}

func sampleThread(board threds.BoardID, id threds.ID, subject string) threds.Thread {
	return threds.Thread{
		ID:      id,
		BoardID: board,
		Subject: subject,
		Posts:   []threds.Post{{ID: id + "-op", Content: "opener"}},
	}
}
