package textfile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/fwdlist"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// Some constants for prefetch size defaults
const (
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// SplitMode tells the loader how to cut a text into fragments.
type SplitMode int

const (
	SplitLines    SplitMode = iota // one fragment per line, without line terminator
	SplitSegments                  // one fragment per UAX#14 line-wrap segment
)

// Options control loading of text. A nil *Options is valid and selects
// line splitting with a prefetch depending on the size of the input.
type Options struct {
	Split    SplitMode
	Prefetch uint // number of fragments read ahead of the list builder
}

// Load reads a file, which must be a text file, and loads it as a list of
// fragments. Opening of the file is always done synchronously, reading is done
// by a background goroutine, but this is transparent to the client: Load
// returns when the list is complete.
func Load(name string, opts *Options) (*fwdlist.List[string], error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("textfile: %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	defer file.Close()
	o := Options{}
	if opts != nil {
		o = *opts
	}
	if o.Prefetch == 0 {
		o.Prefetch = prefetchFor(fi.Size())
	}
	tracer().Debugf("textfile: loading %s (%d bytes), prefetch = %d", name, fi.Size(), o.Prefetch)
	return LoadReader(context.Background(), file, &o)
}

func prefetchFor(size int64) uint {
	switch {
	case size < tenKb:
		return 16
	case size < hundredKb:
		return 64
	case size < oneMb:
		return 256
	}
	return 1024
}

// LoadReader reads text from r and returns it as a list of fragments.
// Reading stops early if ctx is cancelled, returning an error.
//
// A reader blocked in Read cannot be interrupted by cancelling ctx. If r is an
// io.Closer, LoadReader closes it on cancellation to unblock the reading
// goroutine; otherwise that goroutine lingers until Read returns.
func LoadReader(ctx context.Context, r io.Reader, opts *Options) (*fwdlist.List[string], error) {
	if r == nil {
		return nil, fmt.Errorf("textfile: reader is nil: %w", fwdlist.ErrIllegalArguments)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	o := Options{}
	if opts != nil {
		o = *opts
	}
	if o.Prefetch == 0 {
		o.Prefetch = 16
	}
	cast := caster.New(ctx) // we will broadcast messages when fragments are read
	frags, ok := cast.Sub(ctx, o.Prefetch)
	if !ok {
		cast.Close()
		return nil, fmt.Errorf("textfile: cannot subscribe to fragment broadcast: %w", ctx.Err())
	}
	if closer, ok := r.(io.Closer); ok {
		stop := context.AfterFunc(ctx, func() {
			tracer().Debugf("textfile: loading cancelled, closing reader")
			closer.Close()
		})
		defer stop()
	}
	go produce(cast, r, o.Split)
	//
	list := fwdlist.New[string]()
	cursor := list.Cursor()
	for msg := range frags {
		switch m := msg.(type) {
		case fragment:
			cursor.Insert(string(m))
		case endOfText:
			tracer().Debugf("textfile: loaded %d fragments", list.Len())
			return list, m.err
		}
	}
	// broadcast closed without end-of-text
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("textfile: fragment broadcast closed prematurely")
}

// --- Reading goroutine -----------------------------------------------------

type fragment string

type endOfText struct {
	err error // remember I/O error, if any
}

// produce reads fragments from r and publishes them. It will close the caster
// after publishing end-of-text.
func produce(cast *caster.Caster, r io.Reader, mode SplitMode) {
	defer cast.Close()
	var err error
	switch mode {
	case SplitSegments:
		err = readSegments(cast, r)
	default:
		err = readLines(cast, r)
	}
	if err != nil {
		tracer().Errorf("textfile: %v", err)
		err = fmt.Errorf("textfile: error loading text: %w", err)
	}
	cast.Pub(endOfText{err: err})
}

func readLines(cast *caster.Caster, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), oneMb)
	for scanner.Scan() {
		if !cast.Pub(fragment(scanner.Text())) {
			return nil // caster closed, i.e. loading has been cancelled
		}
	}
	return scanner.Err()
}

func readSegments(cast *caster.Caster, r io.Reader) error {
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(r))
	for segmenter.Next() {
		if !cast.Pub(fragment(segmenter.Bytes())) {
			return nil
		}
	}
	return segmenter.Err()
}
