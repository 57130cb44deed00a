package lc3

import "bytes"

// fakeConsole is an in-memory Console: Ready reports whatever bytes are
// still buffered in, with no actual blocking semantics to fake.
type fakeConsole struct {
	in  *bytes.Buffer
	out *bytes.Buffer
}

func newFakeConsole(input string) *fakeConsole {
	return &fakeConsole{in: bytes.NewBufferString(input), out: &bytes.Buffer{}}
}

func (f *fakeConsole) Read(p []byte) (int, error)  { return f.in.Read(p) }
func (f *fakeConsole) Write(p []byte) (int, error) { return f.out.Write(p) }
func (f *fakeConsole) Ready() (bool, error)        { return f.in.Len() > 0, nil }
