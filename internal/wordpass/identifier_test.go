package wordpass

import (
	"errors"
	"testing"

	"github.com/postalsys/toc/internal/wordlist"
)

func TestGenerateIsWithinRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		id, err := Generate()
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if id.Prefix >= prefixSpan {
			t.Fatalf("prefix %d out of range", id.Prefix)
		}
		for _, w := range id.Words {
			if int(w) >= len(wordlist.Words) {
				t.Fatalf("word index %d out of range", w)
			}
		}
	}
}

func TestStringAndParseRoundTrip(t *testing.T) {
	id, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	s := id.String()
	got, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", s, err)
	}
	if got != id {
		t.Fatalf("Parse(String(id)) = %+v, want %+v", got, id)
	}
}

func TestBytesMatchesString(t *testing.T) {
	id, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if string(id.Bytes()) != id.String() {
		t.Fatalf("Bytes() = %q, want %q", id.Bytes(), id.String())
	}
}

func TestParseExact(t *testing.T) {
	id, err := Parse("0005-bafraish-baifeat-baigreang-baikair")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if id.Prefix != 5 {
		t.Fatalf("Prefix = %d, want 5", id.Prefix)
	}
	want := [4]uint16{0, 1, 2, 3}
	if id.Words != want {
		t.Fatalf("Words = %v, want %v", id.Words, want)
	}
	if id.String() != "0005-bafraish-baifeat-baigreang-baikair" {
		t.Fatalf("String() = %q", id.String())
	}
}

func TestParseRejectsTypo(t *testing.T) {
	if _, err := Parse("0005-bafroish-baifat-baigreang-baikai"); err == nil {
		t.Fatalf("Parse() unexpectedly accepted mistyped words")
	}
}

func TestParseFuzzyTypo(t *testing.T) {
	id, err := ParseFuzzy("0005-bafroish-baifat-baigreang-baikai")
	if err != nil {
		t.Fatalf("ParseFuzzy() error = %v", err)
	}
	if id.Prefix != 5 {
		t.Fatalf("Prefix = %d, want 5", id.Prefix)
	}
	want := [4]uint16{0, 1, 2, 3}
	if id.Words != want {
		t.Fatalf("Words = %v, want %v", id.Words, want)
	}
}

func TestParseFuzzyAcceptsExact(t *testing.T) {
	id, err := ParseFuzzy("0005-bafraish-baifeat-baigreang-baikair")
	if err != nil {
		t.Fatalf("ParseFuzzy() error = %v", err)
	}
	want := [4]uint16{0, 1, 2, 3}
	if id.Words != want {
		t.Fatalf("Words = %v, want %v", id.Words, want)
	}
}

func TestParseFuzzyRejectsUnmatchableWord(t *testing.T) {
	_, err := ParseFuzzy("0005-zzyzzyva-ability-able-about")
	if !errors.Is(err, ErrUnknownWord) {
		t.Fatalf("ParseFuzzy() error = %v, want ErrUnknownWord", err)
	}
}

func TestParseRejectsWrongFieldCount(t *testing.T) {
	if _, err := Parse("0005-abandon-ability-able"); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("Parse() error = %v, want ErrInvalidFormat", err)
	}
	if _, err := Parse("0005-abandon-ability-able-about-extra"); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("Parse() error = %v, want ErrInvalidFormat", err)
	}
}

func TestParseRejectsBadPrefix(t *testing.T) {
	if _, err := Parse("abcd-abandon-ability-able-about"); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("Parse() error = %v, want ErrInvalidFormat", err)
	}
}
