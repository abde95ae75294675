package composer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestComposer(br *fakeBridge, opts Options) *Composer {
	if opts.OnSend == nil {
		opts.OnSend = func(context.Context, string) error { return nil }
	}
	if opts.OnSendFile == nil {
		opts.OnSendFile = func(context.Context, string) error { return nil }
	}
	if opts.TypingIdle == 0 {
		opts.TypingIdle = 20 * time.Millisecond
	}
	opts.RemoveDelay = time.Millisecond
	opts.PruneDelay = time.Minute
	return New(br, nil, nil, opts)
}

func TestExtractPaths(t *testing.T) {
	tests := []struct {
		name    string
		payload DropPayload
		want    []string
	}{
		{
			"native paths win",
			DropPayload{
				Paths:   []string{"/home/a.txt"},
				URIList: "file:///home/b.txt",
				Text:    "file:///home/c.txt",
			},
			[]string{"/home/a.txt"},
		},
		{
			"uri list before text",
			DropPayload{
				URIList: "# dragged\r\nfile:///home/b%20c.txt\r\n",
				Text:    "file:///home/c.txt",
			},
			[]string{"/home/b c.txt"},
		},
		{
			"plain text file lines",
			DropPayload{Text: "file:///home/c.txt\nfile:///d/e.png"},
			[]string{"/home/c.txt", "/d/e.png"},
		},
		{
			"windows uri",
			DropPayload{URIList: "file:///C:/Users/a.txt"},
			[]string{"C:/Users/a.txt"},
		},
		{"nothing", DropPayload{Text: "just words"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPaths(tt.payload)
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractPaths() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("path[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestHandleDropPaths(t *testing.T) {
	br := &fakeBridge{}
	c := newTestComposer(br, Options{})

	err := c.HandleDrop(context.Background(), DropPayload{
		URIList: "file:///home/x.png\r\nfile:///home/y.pdf",
	})
	if err != nil {
		t.Fatalf("HandleDrop() error = %v", err)
	}
	if got := c.Attachments().Paths(); len(got) != 2 {
		t.Errorf("attachments = %v, want 2 entries", got)
	}
}

func TestHandleDropBlobs(t *testing.T) {
	br := &fakeBridge{}
	c := newTestComposer(br, Options{})

	err := c.HandleDrop(context.Background(), DropPayload{Blobs: []Blob{
		{Name: "shot.png", MIME: "image/png", Size: 4, Reader: bytes.NewReader([]byte("data"))},
		{Name: "notes.pdf", MIME: "application/pdf", Reader: strings.NewReader("pdfdata")},
	}})
	if err != nil {
		t.Fatalf("HandleDrop() error = %v", err)
	}

	if len(br.savedExts) != 1 || br.savedExts[0] != "png" {
		t.Errorf("savedExts = %v, want [png]", br.savedExts)
	}
	if len(br.savedNames) != 1 || br.savedNames[0] != "notes.pdf" {
		t.Errorf("savedNames = %v, want [notes.pdf]", br.savedNames)
	}
	if got := c.Attachments().Count(); got != 2 {
		t.Errorf("attachment count = %d, want 2", got)
	}
}

func TestHandleDropEmpty(t *testing.T) {
	br := &fakeBridge{}
	c := newTestComposer(br, Options{})

	err := c.HandleDrop(context.Background(), DropPayload{Text: "hello there"})
	if !errors.Is(err, ErrNothingToAttach) {
		t.Errorf("HandleDrop() error = %v, want ErrNothingToAttach", err)
	}
}

func TestIngestBlobsFailureIsolated(t *testing.T) {
	br := &fakeBridge{}
	c := newTestComposer(br, Options{})

	c.IngestBlobs(context.Background(), []Blob{
		{Name: "broken", MIME: "image/png"}, // nil reader
		{Name: "ok.png", MIME: "image/png", Reader: strings.NewReader("x")},
	})

	if got := c.Attachments().Count(); got != 1 {
		t.Errorf("attachment count = %d, want 1", got)
	}
	snap := c.Imports().Snapshot()
	if len(snap) != 2 {
		t.Fatalf("imports = %d, want 2", len(snap))
	}
	if snap[0].Stage != StageError {
		t.Errorf("first import stage = %s, want error", snap[0].Stage)
	}
	if snap[1].Stage != StageDone {
		t.Errorf("second import stage = %s, want done", snap[1].Stage)
	}
}

func TestIngestBlobSaveError(t *testing.T) {
	br := &fakeBridge{saveErr: errors.New("disk full")}
	c := newTestComposer(br, Options{})

	c.IngestBlobs(context.Background(), []Blob{
		{Name: "shot.png", MIME: "image/png", Reader: strings.NewReader("x")},
	})

	if got := c.Attachments().Count(); got != 0 {
		t.Errorf("attachment count = %d, want 0", got)
	}
	if got := c.Imports().Snapshot()[0].Stage; got != StageError {
		t.Errorf("import stage = %s, want error", got)
	}
}

func TestHandlePasteText(t *testing.T) {
	t.Run("plain text passes through", func(t *testing.T) {
		c := newTestComposer(&fakeBridge{}, Options{})
		if c.HandlePasteText(context.Background(), "hello") {
			t.Error("plain text should not be consumed")
		}
	})

	t.Run("file lines use bridge paths", func(t *testing.T) {
		br := &fakeBridge{clipPaths: []string{"/real/a.txt"}}
		c := newTestComposer(br, Options{})
		if !c.HandlePasteText(context.Background(), "file:///stale/a.txt") {
			t.Fatal("file lines should be consumed")
		}
		if got := c.Attachments().Paths(); len(got) != 1 || got[0] != "/real/a.txt" {
			t.Errorf("attachments = %v, want [/real/a.txt]", got)
		}
	})

	t.Run("falls back to decoded lines", func(t *testing.T) {
		br := &fakeBridge{}
		c := newTestComposer(br, Options{})
		if !c.HandlePasteText(context.Background(), "file:///home/a%20b.txt") {
			t.Fatal("file lines should be consumed")
		}
		if got := c.Attachments().Paths(); len(got) != 1 || got[0] != "/home/a b.txt" {
			t.Errorf("attachments = %v, want [/home/a b.txt]", got)
		}
	})

	t.Run("attachments disabled", func(t *testing.T) {
		br := &fakeBridge{}
		c := New(br, nil, nil, Options{
			OnSend: func(context.Context, string) error { return nil },
		})
		if c.HandlePasteText(context.Background(), "file:///home/a.txt") {
			t.Error("paste should pass through when attachments are disabled")
		}
	})
}

func TestPasteFromMenu(t *testing.T) {
	t.Run("file data attaches", func(t *testing.T) {
		br := &fakeBridge{hasFileData: true, clipPaths: []string{"/c/a.png"}}
		c := newTestComposer(br, Options{})
		if !c.PasteFromMenu(context.Background()) {
			t.Fatal("PasteFromMenu() = false, want true")
		}
		if got := c.Attachments().Paths(); len(got) != 1 || got[0] != "/c/a.png" {
			t.Errorf("attachments = %v, want [/c/a.png]", got)
		}
	})

	t.Run("text clipboard falls through", func(t *testing.T) {
		br := &fakeBridge{}
		c := newTestComposer(br, Options{})
		if c.PasteFromMenu(context.Background()) {
			t.Error("PasteFromMenu() = true, want false for text clipboard")
		}
	})
}
