package lookup

import (
	"testing"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/errcode"
)

// tableSource serves a fixed errno table.
type tableSource map[errcode.Int][2]string

func (t tableSource) LastError() errcode.Int { return 0 }

func (t tableSource) FormatMessage(code errcode.Int, buf *errcode.MessageBuf) (int, error) {
	entry, ok := t[code]
	if !ok {
		return 0, errcode.ErrUnknownCode
	}
	return len(errcode.WriteMessage(buf, entry[1])), nil
}

func (t tableSource) Symbol(code errcode.Int) string { return t[code][0] }

func newTestResolver(opts ...Option) *Resolver {
	category := errcode.NewPosixCategory(
		errcode.WithName("TestError"),
		errcode.WithSource(tableSource{
			1:  {"EPERM", "Operation not permitted"},
			2:  {"ENOENT", "No such file or directory"},
			11: {"EAGAIN", "Resource temporarily unavailable"},
			20: {"ENOTDIR", "Not a directory"},
			21: {"EISDIR", "Is a directory"},
		}),
		errcode.WithWouldBlock(11),
	)
	return New(category, append([]Option{WithLimit(64)}, opts...)...)
}

func TestResolve(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name       string
		arg        string
		wantCode   errcode.Int
		wantSymbol string
		wantErr    platformerrors.ErrorCode
	}{
		{name: "decimal", arg: "2", wantCode: 2, wantSymbol: "ENOENT"},
		{name: "hex", arg: "0xb", wantCode: 11, wantSymbol: "EAGAIN"},
		{name: "padded", arg: " 20 ", wantCode: 20, wantSymbol: "ENOTDIR"},
		{name: "negative", arg: "-1", wantCode: -1},
		{name: "unknown number", arg: "63", wantCode: 63},
		{name: "symbol", arg: "EISDIR", wantCode: 21, wantSymbol: "EISDIR"},
		{name: "lower case symbol", arg: "eperm", wantCode: 1, wantSymbol: "EPERM"},
		{name: "unknown symbol", arg: "ENOTREAL", wantErr: platformerrors.CodeNotFound},
		{name: "overflow", arg: "99999999999", wantErr: platformerrors.CodeInvalidInput},
		{name: "malformed number", arg: "12abc", wantErr: platformerrors.CodeInvalidInput},
		{name: "empty", arg: "", wantErr: platformerrors.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.arg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, platformerrors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantSymbol, got.Symbol)
			assert.Equal(t, "TestError", got.Category)
		})
	}
}

func TestResolve_UnknownNumberDescribed(t *testing.T) {
	got, err := newTestResolver().Resolve("63")
	require.NoError(t, err)
	assert.Equal(t, errcode.UnknownError, got.Message)
	assert.Empty(t, got.Symbol)
}

func TestResolve_SymbolBeyondLimit(t *testing.T) {
	r := newTestResolver(WithLimit(5))

	_, err := r.Resolve("EAGAIN")
	require.Error(t, err)
	assert.Equal(t, platformerrors.CodeNotFound, platformerrors.GetCode(err))

	// Numbers are never limited.
	got, err := r.Resolve("11")
	require.NoError(t, err)
	assert.Equal(t, "EAGAIN", got.Symbol)
}

func TestList(t *testing.T) {
	entries := newTestResolver().List()

	codes := make([]errcode.Int, 0, len(entries))
	for _, e := range entries {
		codes = append(codes, e.Code)
	}
	assert.Equal(t, []errcode.Int{1, 2, 11, 20, 21}, codes)

	assert.Equal(t, "RETRYABLE", entries[2].Classification)
	assert.Equal(t, "PERMANENT", entries[0].Classification)
}

func TestSearch(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name  string
		words []string
		want  []string
	}{
		{name: "single word", words: []string{"directory"}, want: []string{"ENOENT", "ENOTDIR", "EISDIR"}},
		{name: "all words required", words: []string{"not", "directory"}, want: []string{"ENOTDIR"}},
		{name: "case insensitive", words: []string{"RESOURCE"}, want: []string{"EAGAIN"}},
		{name: "no match", words: []string{"printer"}, want: nil},
		{name: "no words lists all", words: nil, want: []string{"EPERM", "ENOENT", "EAGAIN", "ENOTDIR", "EISDIR"}},
		{name: "blank words ignored", words: []string{" ", "permitted"}, want: []string{"EPERM"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, e := range r.Search(tt.words...) {
				got = append(got, e.Symbol)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithLimit(t *testing.T) {
	assert.Equal(t, errcode.Int(DefaultLimit), New(errcode.Posix).limit)
	assert.Equal(t, errcode.Int(DefaultLimit), New(errcode.Posix, WithLimit(0)).limit)
	assert.Equal(t, errcode.Int(10), New(errcode.Posix, WithLimit(10)).limit)
	assert.Same(t, errcode.Posix, New(errcode.Posix).Category())
}
