package nav

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/five82/threds/internal/route"
	"github.com/five82/threds/internal/threds"
)

// Poster performs the create actions behind the thread and reply forms.
// *threds.Client implements it.
type Poster interface {
	CreateThread(ctx context.Context, board threds.BoardID, payload threds.NewThread) (*threds.Thread, error)
	CreatePost(ctx context.Context, threadID threds.ID, payload threds.NewPost) (*threds.Post, error)
	UploadImage(ctx context.Context, filename string, data []byte) (string, error)
	FetchThread(ctx context.Context, id threds.ID) (*threds.Thread, error)
}

// Form is the state of the thread composer and the reply bar. Only one of
// them is visible at a time, so they share fields.
type Form struct {
	Composing bool
	Subject   string
	Content   string
	ImagePath string
	ReplyTo   threds.ID
	Busy      bool
	Err       string

	seq int
}

// Draft is the user's input at submit time.
type Draft struct {
	Subject   string
	Content   string
	ImagePath string
}

var (
	ErrBusy            = errors.New("a submission is already in progress")
	ErrSubjectRequired = errors.New("subject is required")
	ErrContentRequired = errors.New("content is required")
	ErrNoBoard         = errors.New("no board selected")
	ErrNoThread        = errors.New("no thread open")
)

const (
	threadFallback = "An error occurred while creating the thread"
	replyFallback  = "An error occurred while creating the reply"
)

// SubmitKind distinguishes thread creation from replies.
type SubmitKind int

const (
	SubmitThread SubmitKind = iota
	SubmitReply
)

// Submission is an accepted create request. The form stays busy until the
// matching FinishSubmit.
type Submission struct {
	Kind     SubmitKind
	Board    threds.BoardID
	ThreadID threds.ID
	ReplyTo  threds.ID
	Draft    Draft

	seq int
}

// SubmitResult is the outcome of Submit.
type SubmitResult struct {
	Submission Submission
	Thread     *threds.Thread
	Err        error
	RefreshErr error
}

// Form returns the current form state.
func (c *Controller) Form() Form { return c.form }

// StartThread opens the thread composer. Only valid on a board view.
func (c *Controller) StartThread() bool {
	if c.state.Kind() != route.KindBoard {
		return false
	}
	c.form.Composing = true
	return true
}

// ReplyTo targets postID with the reply bar. Only valid on a thread view.
func (c *Controller) ReplyTo(postID threds.ID) bool {
	if c.state.Kind() != route.KindThread || postID == "" {
		return false
	}
	c.form.ReplyTo = postID
	return true
}

// ClearReplyTarget drops the reply target, keeping the draft.
func (c *Controller) ClearReplyTarget() {
	c.form.ReplyTo = ""
}

// CancelForm discards the form. A busy form cannot be cancelled.
func (c *Controller) CancelForm() bool {
	if c.form.Busy {
		return false
	}
	c.resetForm()
	return true
}

// EditDraft records in-progress input. It is ignored while a submission is
// in flight.
func (c *Controller) EditDraft(d Draft) bool {
	if c.form.Busy {
		return false
	}
	c.storeDraft(d)
	return true
}

// DismissFormError clears the form's error text.
func (c *Controller) DismissFormError() {
	c.form.Err = ""
}

// BeginCreateThread validates d and marks the composer busy.
func (c *Controller) BeginCreateThread(d Draft) (Submission, error) {
	if c.form.Busy {
		return Submission{}, ErrBusy
	}
	c.storeDraft(d)
	switch {
	case c.state.Kind() != route.KindBoard:
		return c.reject(ErrNoBoard)
	case strings.TrimSpace(d.Subject) == "":
		return c.reject(ErrSubjectRequired)
	case strings.TrimSpace(d.Content) == "":
		return c.reject(ErrContentRequired)
	}
	return c.accept(Submission{Kind: SubmitThread, Board: c.Board(), Draft: d}), nil
}

// BeginReply validates d and marks the reply bar busy.
func (c *Controller) BeginReply(d Draft) (Submission, error) {
	if c.form.Busy {
		return Submission{}, ErrBusy
	}
	c.storeDraft(d)
	switch {
	case c.state.Kind() != route.KindThread:
		return c.reject(ErrNoThread)
	case strings.TrimSpace(d.Content) == "":
		return c.reject(ErrContentRequired)
	}
	return c.accept(Submission{
		Kind:     SubmitReply,
		Board:    c.Board(),
		ThreadID: c.ActiveThreadID(),
		ReplyTo:  c.form.ReplyTo,
		Draft:    d,
	}), nil
}

// FinishSubmit applies the outcome of Submit. A failure keeps the draft and
// shows the error; a success adds the confirmed data and clears the form.
// If navigation already discarded the form, only the data is applied.
func (c *Controller) FinishSubmit(res SubmitResult) {
	current := c.form.Busy && c.form.seq == res.Submission.seq
	if current {
		c.form.Busy = false
	}

	if res.Err != nil {
		if current {
			fallback := threadFallback
			if res.Submission.Kind == SubmitReply {
				fallback = replyFallback
			}
			c.form.Err = ErrorMessage(res.Err, fallback)
		}
		return
	}

	switch res.Submission.Kind {
	case SubmitThread:
		if res.Thread != nil {
			c.threds = append([]threds.Thread{*res.Thread}, c.threds...)
		}
	case SubmitReply:
		if res.Thread != nil && c.ActiveThreadID() == res.Submission.ThreadID {
			c.active = res.Thread
		}
		if res.RefreshErr != nil {
			c.loadErr = res.RefreshErr
		}
	}
	if current {
		c.resetForm()
	}
}

// Submit uploads the draft's image if any, then performs the create call.
// Replies refetch the thread so the new post shows in context.
func Submit(ctx context.Context, p Poster, sub Submission) SubmitResult {
	res := SubmitResult{Submission: sub}

	imageURL := ""
	if path := strings.TrimSpace(sub.Draft.ImagePath); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			res.Err = fmt.Errorf("%w: %w", threds.ErrImageUpload, err)
			return res
		}
		imageURL, err = p.UploadImage(ctx, path, data)
		if err != nil {
			res.Err = err
			return res
		}
	}

	switch sub.Kind {
	case SubmitThread:
		created, err := p.CreateThread(ctx, sub.Board, threds.NewThread{
			Subject:  strings.TrimSpace(sub.Draft.Subject),
			Content:  sub.Draft.Content,
			ImageURL: imageURL,
		})
		if err != nil {
			res.Err = fmt.Errorf("create thread: %w", err)
			return res
		}
		if created.BoardID == "" {
			created.BoardID = sub.Board
		}
		res.Thread = created
	case SubmitReply:
		if _, err := p.CreatePost(ctx, sub.ThreadID, threds.NewPost{
			Content:   sub.Draft.Content,
			ReplyToID: sub.ReplyTo,
			ImageURL:  imageURL,
		}); err != nil {
			res.Err = fmt.Errorf("create reply: %w", err)
			return res
		}
		updated, err := p.FetchThread(ctx, sub.ThreadID)
		if err != nil {
			res.RefreshErr = fmt.Errorf("reload thread %s: %w", sub.ThreadID, err)
			return res
		}
		res.Thread = updated
	}
	return res
}

// ErrorMessage returns err's text, or fallback when there is none.
func ErrorMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return fallback
}

func (c *Controller) storeDraft(d Draft) {
	c.form.Subject = d.Subject
	c.form.Content = d.Content
	c.form.ImagePath = d.ImagePath
}

func (c *Controller) reject(err error) (Submission, error) {
	c.form.Err = err.Error()
	return Submission{}, err
}

func (c *Controller) accept(sub Submission) Submission {
	c.submitSeq++
	c.form.seq = c.submitSeq
	c.form.Busy = true
	c.form.Err = ""
	sub.seq = c.submitSeq
	return sub
}
