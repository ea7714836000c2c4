package errcode

import "errors"

// System is the category of the operating system's native error codes. On
// Unix-like systems these are errno values and System behaves exactly like
// Posix. On Windows they are GetLastError values described by FormatMessage.
// It must not be reassigned.
var System Category = NewSystemCategory()

// systemCategory describes native codes through a Source and hands codes the
// source does not know to a fallback category.
type systemCategory struct {
	name       string
	src        Source
	fallback   Category
	wouldBlock []Int
}

// NewSystemCategory builds a category with system semantics. Without options
// it is configured like System, with Posix as the fallback, but is a distinct
// category.
func NewSystemCategory(opts ...Option) Category {
	cfg := newConfig(config{
		name:       "SystemError",
		source:     nativeSystemSource(),
		fallback:   Posix,
		wouldBlock: systemWouldBlock,
	}, opts)

	return &systemCategory{
		name:       cfg.name,
		src:        cfg.source,
		fallback:   cfg.fallback,
		wouldBlock: cfg.wouldBlock,
	}
}

func (c *systemCategory) Name() string { return c.name }

// Message resolves code in three tiers: text the source wrote (including a
// truncated write), then the fallback category for codes the source does not
// know, then FailErrorFormat for any other failure.
func (c *systemCategory) Message(code Int, buf *MessageBuf) []byte {
	if c.src == nil {
		return c.fallbackMessage(code, buf)
	}
	n, err := c.src.FormatMessage(code, buf)
	switch {
	case err == nil || isInsufficient(err):
		return validMessage(buf, n)
	case errors.Is(err, ErrUnknownCode), errors.Is(err, ErrUnavailable):
		return c.fallbackMessage(code, buf)
	default:
		return WriteMessage(buf, FailErrorFormat)
	}
}

func (c *systemCategory) fallbackMessage(code Int, buf *MessageBuf) []byte {
	if c.fallback == nil {
		return WriteMessage(buf, UnknownError)
	}
	return c.fallback.Message(code, buf)
}

func (c *systemCategory) Equivalent(code Int, other ErrorCode) bool {
	return sameCode(c, code, other)
}

// IsWouldBlock accepts the category's own would-block codes and anything the
// fallback category classifies as would-block.
func (c *systemCategory) IsWouldBlock(code Int) bool {
	if containsCode(c.wouldBlock, code) {
		return true
	}
	return c.fallback != nil && c.fallback.IsWouldBlock(code)
}

func (c *systemCategory) Symbol(code Int) string {
	if s, ok := c.src.(Symbolizer); ok {
		return s.Symbol(code)
	}
	return ""
}

func (c *systemCategory) source() Source { return c.src }

func isInsufficient(err error) bool {
	return errors.Is(err, ErrInsufficientBuffer)
}
