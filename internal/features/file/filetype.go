package file

import "strings"

// extensionTypes maps a lowercase extension to its media category. Anything
// absent from the map lands in FileTypeOther.
var extensionTypes = map[string]FileType{
	// document
	"pdf": FileTypeDocument, "doc": FileTypeDocument, "docx": FileTypeDocument,
	"txt": FileTypeDocument, "xls": FileTypeDocument, "xlsx": FileTypeDocument,
	"csv": FileTypeDocument, "rtf": FileTypeDocument, "ods": FileTypeDocument,
	"ppt": FileTypeDocument, "pptx": FileTypeDocument, "odp": FileTypeDocument,
	"md": FileTypeDocument, "html": FileTypeDocument, "htm": FileTypeDocument,
	"epub": FileTypeDocument, "pages": FileTypeDocument,
	// image
	"jpg": FileTypeImage, "jpeg": FileTypeImage, "png": FileTypeImage,
	"gif": FileTypeImage, "bmp": FileTypeImage, "svg": FileTypeImage,
	"webp": FileTypeImage,
	// video
	"mp4": FileTypeVideo, "avi": FileTypeVideo, "mov": FileTypeVideo,
	"mkv": FileTypeVideo, "webm": FileTypeVideo,
	// audio
	"mp3": FileTypeAudio, "wav": FileTypeAudio, "ogg": FileTypeAudio,
	"flac": FileTypeAudio,
}

// GetFileType derives the media category and extension from a file name.
// The mapping is pure and deterministic; it is re-applied on every create.
func GetFileType(name string) (FileType, string) {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return FileTypeOther, ""
	}

	ext := strings.ToLower(name[idx+1:])
	if t, ok := extensionTypes[ext]; ok {
		return t, ext
	}
	return FileTypeOther, ext
}

// ResolveTypeFilter maps a route-level filter segment to the set of file
// types it selects. Empty means all types; an unrecognized segment degrades
// to documents so arbitrary route values never become errors.
func ResolveTypeFilter(filter string) []FileType {
	switch filter {
	case "":
		return nil
	case "documents":
		return []FileType{FileTypeDocument}
	case "images":
		return []FileType{FileTypeImage}
	case "media":
		return []FileType{FileTypeVideo, FileTypeAudio}
	case "others":
		return []FileType{FileTypeOther}
	default:
		return []FileType{FileTypeDocument}
	}
}
