//go:build unix

// Package term is the terminal-mode controller: the thin, host-specific
// glue that puts the controlling TTY into raw, no-echo mode for the
// lifetime of the emulator and restores it on exit, and that answers
// whether a byte can be read from stdin without blocking.
package term

import (
	"os"

	"golang.org/x/sys/unix"
	xterm "golang.org/x/term"
)

// Console wraps the process's standard input and output as an
// lc3.Console, owning the terminal's raw-mode lifecycle.
type Console struct {
	in    *os.File
	out   *os.File
	state *xterm.State
}

// Open puts stdin into raw mode -- disabling canonical mode and local
// echo -- so the emulator's GETC/IN traps and KBSR poll see individual
// keystrokes. If stdin isn't a terminal (piped input, as in tests or a
// non-interactive run), Open leaves it untouched.
func Open() (*Console, error) {
	c := &Console{in: os.Stdin, out: os.Stdout}

	fd := int(c.in.Fd())
	if !xterm.IsTerminal(fd) {
		return c, nil
	}

	state, err := xterm.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	c.state = state
	return c, nil
}

// Close restores the terminal to the state it was in before Open, if
// Open put it into raw mode at all.
func (c *Console) Close() error {
	if c.state == nil {
		return nil
	}
	return xterm.Restore(int(c.in.Fd()), c.state)
}

func (c *Console) Read(p []byte) (int, error)  { return c.in.Read(p) }
func (c *Console) Write(p []byte) (int, error) { return c.out.Write(p) }

// Ready reports whether a byte can be read from stdin without blocking,
// via a zero-timeout select(2) on its file descriptor.
func (c *Console) Ready() (bool, error) {
	fd := int(c.in.Fd())

	var fds unix.FdSet
	fdSet(&fds, fd)

	tv := unix.Timeval{}
	n, err := unix.Select(fd+1, &fds, nil, nil, &tv)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func fdSet(set *unix.FdSet, fd int) {
	set.Bits[fd/64] |= 1 << (uint(fd) % 64)
}
