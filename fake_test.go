package errcode

// fakeSource is a scripted Source for exercising categories without the OS.
type fakeSource struct {
	last    Int
	text    map[Int]string
	errs    map[Int]error
	symbols map[Int]string
}

func (f *fakeSource) LastError() Int { return f.last }

// FormatMessage copies the scripted text byte for byte and reports the full
// native length, the way a C lookup would.
func (f *fakeSource) FormatMessage(code Int, buf *MessageBuf) (int, error) {
	text, ok := f.text[code]
	if err, failed := f.errs[code]; failed {
		return copy(buf[:], text), err
	}
	if !ok {
		return 0, ErrUnknownCode
	}
	copy(buf[:], text)
	return len(text), nil
}

func (f *fakeSource) Symbol(code Int) string { return f.symbols[code] }

func newFakeSource() *fakeSource {
	return &fakeSource{
		last: 11,
		text: map[Int]string{
			2:  "No such file or directory",
			11: "Resource temporarily unavailable",
		},
		errs: map[Int]error{},
		symbols: map[Int]string{
			2:  "ENOENT",
			11: "EAGAIN",
		},
	}
}

// newFakePosix returns a posix category named FakeError over a fake source.
func newFakePosix(src *fakeSource) Category {
	return NewPosixCategory(
		WithName("FakeError"),
		WithSource(src),
		WithWouldBlock(11, 35),
	)
}
