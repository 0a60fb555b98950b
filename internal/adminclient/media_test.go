package adminclient

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"planora/internal/dto"
)

func TestMediaUploadStreamsMultipartWithProgress(t *testing.T) {
	var gotFolder, gotName, gotContent string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		gotFolder = r.FormValue("folder")
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
		} else {
			defer file.Close()
			b, _ := io.ReadAll(file)
			gotContent = string(b)
			gotName = header.Filename
		}
		writeOK(w, dto.UploadMediaResponse{MediaID: "media-42"})
	}))

	content := strings.Repeat("x", 1000)
	var reports []int
	id, err := NewMediaService(c).Upload(context.Background(), "customers", "logo.png",
		strings.NewReader(content), int64(len(content)),
		func(pct int) { reports = append(reports, pct) })
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if id != "media-42" {
		t.Errorf("mediaId = %q", id)
	}
	if gotFolder != "customers" {
		t.Errorf("folder field = %q", gotFolder)
	}
	if gotName != "logo.png" {
		t.Errorf("file name = %q", gotName)
	}
	if gotContent != content {
		t.Errorf("file content length = %d, want %d", len(gotContent), len(content))
	}

	if len(reports) == 0 {
		t.Fatal("no progress reports")
	}
	for i := 1; i < len(reports); i++ {
		if reports[i] < reports[i-1] {
			t.Errorf("progress went backwards: %v", reports)
		}
	}
	if last := reports[len(reports)-1]; last != 100 {
		t.Errorf("final progress = %d, want 100", last)
	}
}

func TestMediaUploadUnknownSizeSkipsProgress(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		writeOK(w, dto.UploadMediaResponse{MediaID: "media-43"})
	}))

	var reports []int
	id, err := NewMediaService(c).Upload(context.Background(), "gallery", "photo.jpg",
		strings.NewReader("jpg-bytes"), 0,
		func(pct int) { reports = append(reports, pct) })
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if id != "media-43" {
		t.Errorf("mediaId = %q", id)
	}
	if len(reports) != 0 {
		t.Errorf("progress reported without a known size: %v", reports)
	}
}
