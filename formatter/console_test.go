package formatter

import (
	"bytes"
	"errors"
	"testing"

	"github.com/npillmayer/fwdlist"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
)

func mklist(from, to int) *fwdlist.List[int] {
	l := fwdlist.New[int]()
	for i := to - 1; i >= from; i-- {
		l.PushFront(i)
	}
	return l
}

func TestFormatShortList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fwdlist")
	defer teardown()
	//
	config := &Config{Plain: true}
	var bf bytes.Buffer
	if err := Fprint(&bf, mklist(0, 4), 2, config); err != nil {
		t.Fatal(err)
	}
	if s := bf.String(); s != "[0 1 | 2 3]" {
		t.Errorf("output = %q, want %q", s, "[0 1 | 2 3]")
	}
	if s := Sprint(mklist(0, 3), 3, nil); s != "[0 1 2 |]" {
		t.Errorf("output = %q, want %q", s, "[0 1 2 |]")
	}
	if s := Sprint(mklist(0, 3), -1, nil); s != "[0 1 2]" {
		t.Errorf("output = %q, want %q", s, "[0 1 2]")
	}
	if s := Sprint(fwdlist.New[string](), 0, &Config{Marker: "^"}); s != "[^]" {
		t.Errorf("output = %q, want %q", s, "[^]")
	}
}

func TestFormatWindow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fwdlist")
	defer teardown()
	//
	config := &Config{
		LineWidth: 20,
		Plain:     true,
		Context:   uax11.LatinContext,
	}
	s := Sprint(mklist(0, 20), 10, config)
	t.Logf("\n%s", s)
	if s != "[… 8 9 | 10 11 12 …]" {
		t.Errorf("output = %q, want %q", s, "[… 8 9 | 10 11 12 …]")
	}
	s = Sprint(mklist(0, 20), 0, config)
	if s != "[| 0 1 2 3 4 5 …]" {
		t.Errorf("output = %q, want %q", s, "[| 0 1 2 3 4 5 …]")
	}
}

func TestFormatColors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fwdlist")
	defer teardown()
	//
	var bf bytes.Buffer
	if err := Fprint(&bf, mklist(0, 3), 1, &Config{}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(bf.Bytes(), []byte("0")) || !bytes.Contains(bf.Bytes(), []byte("|")) {
		t.Errorf("output misses values: %q", bf.String())
	}
}

func TestFormatPositionOutOfRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fwdlist")
	defer teardown()
	//
	var bf bytes.Buffer
	err := Fprint(&bf, mklist(0, 3), 4, nil)
	if !errors.Is(err, fwdlist.ErrIndexOutOfBounds) {
		t.Errorf("error = %v, want ErrIndexOutOfBounds", err)
	}
}

func TestFormatASCIIWidths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fwdlist")
	defer teardown()
	//
	config := normalize(&Config{Context: uax11.LatinContext})
	for _, s := range []string{"|", "9", "10", "abc", "-42"} {
		if w := config.token(s, false).width; w != len(s) {
			t.Errorf("width of %q = %d, want %d", s, w, len(s))
		}
	}
}
