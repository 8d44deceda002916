package file

import (
	"reflect"
	"testing"
)

func TestGetFileType(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		wantType FileType
		wantExt  string
	}{
		{"PDF document", "report.pdf", FileTypeDocument, "pdf"},
		{"Uppercase extension", "SCAN.PDF", FileTypeDocument, "pdf"},
		{"JPEG image", "photo.jpeg", FileTypeImage, "jpeg"},
		{"MP4 video", "clip.mp4", FileTypeVideo, "mp4"},
		{"MP3 audio", "song.mp3", FileTypeAudio, "mp3"},
		{"Unknown extension", "archive.zip", FileTypeOther, "zip"},
		{"No extension", "Makefile", FileTypeOther, ""},
		{"Trailing dot", "weird.", FileTypeOther, ""},
		{"Multiple dots", "backup.tar.gz", FileTypeOther, "gz"},
		{"Markdown document", "notes.md", FileTypeDocument, "md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotExt := GetFileType(tt.fileName)
			if gotType != tt.wantType {
				t.Errorf("GetFileType(%q) type = %v, want %v", tt.fileName, gotType, tt.wantType)
			}
			if gotExt != tt.wantExt {
				t.Errorf("GetFileType(%q) ext = %q, want %q", tt.fileName, gotExt, tt.wantExt)
			}
		})
	}
}

func TestResolveTypeFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter string
		want   []FileType
	}{
		{"Empty selects all", "", nil},
		{"Documents", "documents", []FileType{FileTypeDocument}},
		{"Images", "images", []FileType{FileTypeImage}},
		{"Media selects video and audio", "media", []FileType{FileTypeVideo, FileTypeAudio}},
		{"Others", "others", []FileType{FileTypeOther}},
		{"Unrecognized degrades to documents", "bogus-route-segment", []FileType{FileTypeDocument}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTypeFilter(tt.filter)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveTypeFilter(%q) = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}

func TestDedupeGrants(t *testing.T) {
	tests := []struct {
		name    string
		granted []string
		owner   string
		want    []string
	}{
		{"Plain batch passes through", []string{"a", "b"}, "own", []string{"a", "b"}},
		{"Owner never enters the set", []string{"own", "b"}, "own", []string{"b"}},
		{"Duplicates inside the batch", []string{"a", "a", "b"}, "own", []string{"a", "b"}},
		{"Owner-only batch is empty", []string{"own"}, "own", []string{}},
		{"Empty batch stays empty", nil, "own", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dedupeGrants(tt.granted, tt.owner)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("dedupeGrants(%v, %q) = %v, want %v", tt.granted, tt.owner, got, tt.want)
			}
		})
	}
}
