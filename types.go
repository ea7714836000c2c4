package errcode

// Int is the underlying type of a raw error code.
// It matches the width of C int on every target Go supports.
type Int = int32

// Uint is the unsigned counterpart of Int, used for native codes that the
// platform defines as unsigned (for example the Windows DWORD error id).
type Uint = uint32
