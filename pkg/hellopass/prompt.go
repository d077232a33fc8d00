package hellopass

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"golang.org/x/term"
)

// ttyPrompter talks to the controlling terminal directly. Stdout stays
// reserved for the released secret, which is all the SSH client reads.
type ttyPrompter struct{}

// NewTTYPrompter returns a Prompter that prompts on the controlling terminal.
func NewTTYPrompter() Prompter {
	return ttyPrompter{}
}

func consolePaths() (in, out string) {
	if runtime.GOOS == "windows" {
		return "CONIN$", "CONOUT$"
	}
	return "/dev/tty", "/dev/tty"
}

func openConsole() (in, out *os.File, err error) {
	inPath, outPath := consolePaths()
	in, err = os.OpenFile(inPath, os.O_RDWR, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("opening terminal: %w", err)
	}
	out, err = os.OpenFile(outPath, os.O_WRONLY, 0)
	if err != nil {
		in.Close()
		return nil, nil, fmt.Errorf("opening terminal: %w", err)
	}
	return in, out, nil
}

func (ttyPrompter) Password(message string) (string, bool, error) {
	in, out, err := openConsole()
	if err != nil {
		return "", false, err
	}
	defer in.Close()
	defer out.Close()

	fmt.Fprintf(out, "%s ", message)
	pass, err := term.ReadPassword(int(in.Fd()))
	fmt.Fprintln(out)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(pass), true, nil
}

func (ttyPrompter) Confirm(message string) (bool, bool, error) {
	in, out, err := openConsole()
	if err != nil {
		return false, false, err
	}
	defer in.Close()
	defer out.Close()

	fmt.Fprintf(out, "%s [y/N] ", message)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		if errors.Is(err, io.EOF) {
			return false, false, nil
		}
		return false, false, err
	}
	return parseConfirmAnswer(line), true, nil
}

func parseConfirmAnswer(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	}
	return false
}
