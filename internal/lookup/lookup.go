// Package lookup resolves error codes and symbolic names within a category
// and searches their messages.
package lookup

import (
	"strconv"
	"strings"

	platformerrors "github.com/jmgilman/go/errors"

	"github.com/jmgilman/go/errcode"
)

// DefaultLimit is the number of codes scanned, starting at 0, when listing a
// category or resolving a symbolic name.
const DefaultLimit = 4096

// Resolver looks up codes of a single category.
type Resolver struct {
	category errcode.Category
	limit    errcode.Int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLimit sets how many codes List, Search and name resolution scan.
// Non-positive values are ignored.
func WithLimit(limit int) Option {
	return func(r *Resolver) {
		if limit > 0 {
			r.limit = errcode.Int(min(limit, int(^uint32(0)>>1)))
		}
	}
}

// New returns a Resolver for category.
func New(category errcode.Category, opts ...Option) *Resolver {
	r := &Resolver{
		category: category,
		limit:    DefaultLimit,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Category returns the category the resolver works in.
func (r *Resolver) Category() errcode.Category {
	return r.category
}

// Describe renders code, whether or not the category knows it.
func (r *Resolver) Describe(code errcode.Int) errcode.Response {
	return *errcode.NewResponse(errcode.New(code, r.category))
}

// Resolve accepts a decimal, hex (0x) or octal (0o) code, or a symbolic name
// such as "ENOENT" (case-insensitive).
func (r *Resolver) Resolve(arg string) (errcode.Response, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return errcode.Response{}, platformerrors.New(platformerrors.CodeInvalidInput, "empty error code")
	}

	if isNumeric(arg) {
		n, err := strconv.ParseInt(arg, 0, 32)
		if err != nil {
			return errcode.Response{}, platformerrors.Wrapf(err, platformerrors.CodeInvalidInput, "invalid error code %q", arg)
		}
		return r.Describe(errcode.Int(n)), nil
	}

	name := strings.ToUpper(arg)
	for code := errcode.Int(0); code < r.limit; code++ {
		if errcode.New(code, r.category).Symbol() == name {
			return r.Describe(code), nil
		}
	}
	return errcode.Response{}, platformerrors.Newf(platformerrors.CodeNotFound, "unknown error name %q", arg)
}

// List returns every code below the limit that has a symbolic name or a
// message other than errcode.UnknownError.
func (r *Resolver) List() []errcode.Response {
	var out []errcode.Response
	for code := errcode.Int(0); code < r.limit; code++ {
		if e := r.Describe(code); known(e) {
			out = append(out, e)
		}
	}
	return out
}

// Search returns the known codes whose message contains every word,
// ignoring case. With no words it is List.
func (r *Resolver) Search(words ...string) []errcode.Response {
	lowered := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			lowered = append(lowered, strings.ToLower(w))
		}
	}

	var out []errcode.Response
	for _, e := range r.List() {
		if matchesAll(strings.ToLower(e.Message), lowered) {
			out = append(out, e)
		}
	}
	return out
}

func known(e errcode.Response) bool {
	return e.Symbol != "" || e.Message != errcode.UnknownError
}

func matchesAll(text string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(text, w) {
			return false
		}
	}
	return true
}

// isNumeric reports whether arg looks like a number rather than a name.
func isNumeric(arg string) bool {
	if arg[0] == '-' || arg[0] == '+' {
		arg = arg[1:]
	}
	return arg != "" && arg[0] >= '0' && arg[0] <= '9'
}
