package errcode

// Posix is the category of POSIX errno values, backed by the platform C
// library where one exists. It must not be reassigned.
var Posix Category = NewPosixCategory()

// posixCategory describes errno values through a Source.
type posixCategory struct {
	name       string
	src        Source
	wouldBlock []Int
}

// NewPosixCategory builds a category with posix semantics. Without options it
// is configured like Posix but is a distinct category: codes created with it
// never compare equal to Posix codes.
func NewPosixCategory(opts ...Option) Category {
	cfg := newConfig(config{
		name:       "PosixError",
		source:     nativePosixSource(),
		wouldBlock: posixWouldBlock,
	}, opts)

	return &posixCategory{
		name:       cfg.name,
		src:        cfg.source,
		wouldBlock: cfg.wouldBlock,
	}
}

func (c *posixCategory) Name() string { return c.name }

// Message asks the source for the native text. Any lookup failure yields
// UnknownError and text that is not UTF-8 yields FailErrorFormat.
func (c *posixCategory) Message(code Int, buf *MessageBuf) []byte {
	if c.src == nil {
		return WriteMessage(buf, UnknownError)
	}
	n, err := c.src.FormatMessage(code, buf)
	if err != nil && !isInsufficient(err) {
		return WriteMessage(buf, UnknownError)
	}
	return validMessage(buf, n)
}

func (c *posixCategory) Equivalent(code Int, other ErrorCode) bool {
	return sameCode(c, code, other)
}

func (c *posixCategory) IsWouldBlock(code Int) bool {
	return containsCode(c.wouldBlock, code)
}

func (c *posixCategory) Symbol(code Int) string {
	if s, ok := c.src.(Symbolizer); ok {
		return s.Symbol(code)
	}
	return ""
}

func (c *posixCategory) source() Source { return c.src }
