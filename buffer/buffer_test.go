package buffer

import "testing"

func TestBuffer_LinesAndOffsets(t *testing.T) {
	b := New("ab\n\tcd\n\nÿz")
	if got, want := b.LineCount(), 4; got != want {
		t.Fatalf("line count: got %d, want %d", got, want)
	}
	if got, want := b.Len(), 10; got != want {
		t.Fatalf("len: got %d, want %d", got, want)
	}

	want := []Line{
		{Number: 1, From: 0, To: 2, Text: "ab"},
		{Number: 2, From: 3, To: 6, Text: "\tcd"},
		{Number: 3, From: 7, To: 7, Text: ""},
		{Number: 4, From: 8, To: 10, Text: "ÿz"},
	}
	for i, w := range want {
		if got := b.Line(i + 1); got != w {
			t.Fatalf("line %d: got %+v, want %+v", i+1, got, w)
		}
	}
	if got := b.Line(0); got != want[0] {
		t.Fatalf("line 0 clamps to first: got %+v", got)
	}
	if got := b.Line(99); got != want[3] {
		t.Fatalf("line 99 clamps to last: got %+v", got)
	}
}

func TestBuffer_LineAt(t *testing.T) {
	b := New("ab\n\tcd\n\nxyz")
	cases := []struct {
		pos  int
		want int
	}{
		{pos: -5, want: 1},
		{pos: 0, want: 1},
		{pos: 2, want: 1},
		{pos: 3, want: 2},
		{pos: 6, want: 2},
		{pos: 7, want: 3},
		{pos: 8, want: 4},
		{pos: 11, want: 4},
		{pos: 100, want: 4},
	}
	for _, tc := range cases {
		if got := b.LineAt(tc.pos).Number; got != tc.want {
			t.Fatalf("LineAt(%d): got line %d, want %d", tc.pos, got, tc.want)
		}
	}
}

func TestBuffer_CarriageReturnStaysInLine(t *testing.T) {
	b := New("a\r\n\r\tb")
	if got, want := b.Line(1).Text, "a\r"; got != want {
		t.Fatalf("line 1 text: got %q, want %q", got, want)
	}
	if got, want := b.Line(2).Text, "\r\tb"; got != want {
		t.Fatalf("line 2 text: got %q, want %q", got, want)
	}
}

func TestBuffer_EditsBumpVersion(t *testing.T) {
	b := New("hello")
	if b.Version() != 0 {
		t.Fatalf("initial version: got %d, want 0", b.Version())
	}

	if b.SetText("hello") {
		t.Fatalf("SetText with identical text reported a change")
	}
	if b.Version() != 0 {
		t.Fatalf("version after no-op: got %d, want 0", b.Version())
	}

	if !b.Replace(0, 0, "\t") {
		t.Fatalf("Replace insert reported no change")
	}
	if got, want := b.Text(), "\thello"; got != want {
		t.Fatalf("text after insert: got %q, want %q", got, want)
	}
	if b.Version() != 1 {
		t.Fatalf("version after insert: got %d, want 1", b.Version())
	}

	if !b.Replace(6, 1, "\n") {
		t.Fatalf("Replace with swapped bounds reported no change")
	}
	if got, want := b.Text(), "\t\n"; got != want {
		t.Fatalf("text after replace: got %q, want %q", got, want)
	}
	if b.Replace(1, 1, "") {
		t.Fatalf("empty replace reported a change")
	}
	if got, want := b.LineCount(), 2; got != want {
		t.Fatalf("line count: got %d, want %d", got, want)
	}
}

func TestBuffer_Empty(t *testing.T) {
	b := New("")
	if b.LineCount() != 1 || b.Len() != 0 {
		t.Fatalf("empty buffer: lines=%d len=%d", b.LineCount(), b.Len())
	}
	if got := b.LineAt(0); got != (Line{Number: 1}) {
		t.Fatalf("empty LineAt: got %+v", got)
	}
}
