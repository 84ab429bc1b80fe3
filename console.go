package main

import (
	"bufio"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Console is the capability the machine uses to reach the host
// terminal. The production implementation wraps stdin/stdout in raw
// mode; tests substitute an in-memory implementation.
type Console interface {
	// Raw disables line buffering and local echo. Restore puts the
	// terminal back the way Raw found it.
	Raw()
	Restore()

	// Poll reports whether at least one byte is waiting on input,
	// without consuming it.
	Poll() bool

	// ReadByte blocks for one byte of input.
	ReadByte() byte

	WriteByte(b byte)
	Flush()
}

type hostConsole struct {
	in    *os.File
	out   *bufio.Writer
	saved unix.Termios
	istty bool
}

func newHostConsole() *hostConsole {
	return &hostConsole{
		in:  os.Stdin,
		out: bufio.NewWriter(os.Stdout),
	}
}

func (c *hostConsole) Raw() {
	if !term.IsTerminal(int(c.in.Fd())) {
		// piped input arrives unbuffered and unechoed already
		return
	}
	if err := termios.Tcgetattr(c.in.Fd(), &c.saved); err != nil {
		return
	}
	raw := c.saved
	raw.Lflag &^= unix.ICANON | unix.ECHO
	termios.Tcsetattr(c.in.Fd(), termios.TCSANOW, &raw)
	c.istty = true
}

func (c *hostConsole) Restore() {
	if !c.istty {
		return
	}
	termios.Tcsetattr(c.in.Fd(), termios.TCSANOW, &c.saved)
}

func (c *hostConsole) Poll() bool {
	fd := int(c.in.Fd())
	var fds unix.FdSet
	fds.Set(fd)
	n, err := unix.Select(fd+1, &fds, nil, nil, &unix.Timeval{})
	return err == nil && n > 0
}

func (c *hostConsole) ReadByte() byte {
	var buf [1]byte
	n, err := c.in.Read(buf[:])
	if err != nil || n == 0 {
		// end of input reads as 0xff
		return 0xff
	}
	return buf[0]
}

func (c *hostConsole) WriteByte(b byte) {
	c.out.WriteByte(b)
}

func (c *hostConsole) Flush() {
	c.out.Flush()
}
