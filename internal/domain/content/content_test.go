package content

import (
	"strings"
	"testing"
)

func TestExtractHashtagsDedupes(t *testing.T) {
	tags := ExtractHashtags("Launch day! #AI #growth #ai #marketing_tips")
	if len(tags) != 3 {
		t.Fatalf("expected 3 tags, got %v", tags)
	}
	if tags[0] != "#AI" || tags[1] != "#growth" || tags[2] != "#marketing_tips" {
		t.Fatalf("unexpected tags: %v", tags)
	}
}

func TestExtractHashtagsIgnoresHeadings(t *testing.T) {
	tags := ExtractHashtags("# Intro\n\nSome text\n\n## Details")
	if tags != nil {
		t.Fatalf("expected no tags from headings, got %v", tags)
	}
}

func TestBuildMetadataStripsMarkup(t *testing.T) {
	md := "# Title\n\nSome **bold** words here.\n\n- one\n- two\n"
	meta := BuildMetadata(md)
	if meta.WordCount != 7 {
		t.Fatalf("expected 7 words, got %d", meta.WordCount)
	}
	if meta.ReadingTimeMinutes != 1 {
		t.Fatalf("expected 1 minute, got %d", meta.ReadingTimeMinutes)
	}
}

func TestBuildMetadataReadingTime(t *testing.T) {
	md := strings.Repeat("word ", 450)
	meta := BuildMetadata(md)
	if meta.WordCount != 450 {
		t.Fatalf("expected 450 words, got %d", meta.WordCount)
	}
	if meta.ReadingTimeMinutes != 3 {
		t.Fatalf("expected 3 minutes, got %d", meta.ReadingTimeMinutes)
	}
}

func TestParseContentTypeRejectsUnknown(t *testing.T) {
	if _, err := ParseContentType("newsletter"); err == nil {
		t.Fatal("expected error for unknown content type")
	}
}

func TestParseContentLengthDefaultsToMedium(t *testing.T) {
	length, err := ParseContentLength("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if length != LengthMedium {
		t.Fatalf("expected medium, got %s", length)
	}
}

func TestValidateSubtopicsRequiresMainTopic(t *testing.T) {
	req := &GenerationRequest{Type: TypeSubtopics}
	if err := req.Validate(); err == nil {
		t.Fatal("expected validation error")
	}

	req.MainTopic = "sustainable packaging"
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.ContentLength != LengthMedium {
		t.Fatalf("expected defaulted length, got %q", req.ContentLength)
	}
}
