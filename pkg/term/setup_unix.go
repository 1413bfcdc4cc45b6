//go:build unix

package term

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

func setup(in, out *os.File) (func() error, error) {
	// On Unix, use the input file for changing termios. All fds pointing to
	// the same terminal are equivalent.
	fd := int(in.Fd())
	termios, err := unix.IoctlGetTermios(fd, getTermiosReq)
	if err != nil {
		return nil, fmt.Errorf("can't get terminal attribute: %w", err)
	}
	saved := *termios

	// Turning off ICANON gives us raw, unbuffered input; turning off ECHO
	// stops the kernel from echoing what we are about to render ourselves.
	termios.Lflag &^= unix.ICANON | unix.ECHO
	// Translate carriage returns from the Enter key into newlines. This
	// assumes the user hasn't set inlcr or -onlcr.
	termios.Iflag |= unix.ICRNL
	// Reads return as soon as one byte is available.
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, setTermiosReq, termios); err != nil {
		return nil, fmt.Errorf("can't set terminal attribute: %w", err)
	}

	// Disable the terminal's own line wrapping; the writer tracks column
	// positions itself.
	_, errVT := out.WriteString("\033[?7l")

	restore := func() error {
		_, errWrap := out.WriteString("\033[?7h")
		errTermios := unix.IoctlSetTermios(fd, setTermiosReq, &saved)
		if errTermios != nil {
			return errTermios
		}
		return errWrap
	}
	return restore, errVT
}
