//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

// maxOutput caps the captured terminal output; older bytes are dropped
const maxOutput = 1 << 20

var binPath = "zoomcanvas_e2e"

const (
	KeyEnter   = "\r"
	KeyEsc     = "\x1b"
	KeyCtrlC   = "\x03"
	KeyQuit    = "q"
	KeyExport  = "s"
	KeyZoomIn  = "+"
	KeyZoomOut = "-"
)

// SGR mouse button codes
const (
	mouseLeft   = 0
	mouseMiddle = 1
	mouseMotion = 32
)

var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` + // CSI
		`(?:\x1b\][^\x07]*\x07)|` + // OSC
		`(?:\x1b[\(\)][A-Za-z])|` + // charset
		`(?:\x1b=|\x1b>)|` + // keypad mode
		`\r`,
)

// canvasApp drives one zoom-canvas process through a PTY
type canvasApp struct {
	t         *testing.T
	pty       *os.File
	cmd       *exec.Cmd
	workspace string

	mu  sync.Mutex
	out []byte
}

func newCanvasApp(t *testing.T) *canvasApp {
	return &canvasApp{t: t}
}

// CreateTestWorkspace creates an isolated directory used as $HOME, config
// and export directory
func (a *canvasApp) CreateTestWorkspace() (string, error) {
	dir, err := os.MkdirTemp("", "zoomcanvas-e2e-*")
	if err != nil {
		return "", err
	}
	a.workspace = dir
	return dir, nil
}

// StartApp launches zoom-canvas on a 120x40 terminal. The config and data
// file live in the workspace, which must exist.
func (a *canvasApp) StartApp(args ...string) error {
	if a.workspace == "" {
		return fmt.Errorf("no workspace, call CreateTestWorkspace first")
	}

	cmdArgs := append([]string{
		"-config", filepath.Join(a.workspace, "config.toml"),
		"-data", filepath.Join(a.workspace, "canvas.db"),
	}, args...)
	a.cmd = exec.Command(binPath, cmdArgs...)
	a.cmd.Dir = a.workspace
	a.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+a.workspace,
		"XDG_CONFIG_HOME="+filepath.Join(a.workspace, ".config"),
		"ZOOMCANVAS_E2E_TEST=1",
	)

	f, err := pty.StartWithSize(a.cmd, &pty.Winsize{Rows: 40, Cols: 120})
	if err != nil {
		return fmt.Errorf("failed to start %s: %w", binPath, err)
	}
	a.pty = f

	go a.capture()
	return nil
}

func (a *canvasApp) capture() {
	buf := make([]byte, 8192)
	for {
		n, err := a.pty.Read(buf)
		if n > 0 {
			a.mu.Lock()
			a.out = append(a.out, buf[:n]...)
			if extra := len(a.out) - maxOutput; extra > 0 {
				a.out = a.out[extra:]
			}
			a.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// SendKeys writes raw input to the terminal
func (a *canvasApp) SendKeys(keys string) error {
	a.t.Helper()
	_, err := a.pty.Write([]byte(keys))
	return err
}

func (a *canvasApp) SendEnter() error { return a.SendKeys(KeyEnter) }

func (a *canvasApp) SendCtrlC() error { return a.SendKeys(KeyCtrlC) }

func (a *canvasApp) Quit() error { return a.SendKeys(KeyQuit) }

// Export writes the JSON snapshot
func (a *canvasApp) Export() error { return a.SendKeys(KeyExport) }

// Mouse sends an SGR encoded mouse event at the zero-based cell (x, y)
func (a *canvasApp) Mouse(button, x, y int, release bool) error {
	a.t.Helper()
	final := "M"
	if release {
		final = "m"
	}
	return a.SendKeys(fmt.Sprintf("\x1b[<%d;%d;%d%s", button, x+1, y+1, final))
}

// Click presses and releases the left button
func (a *canvasApp) Click(x, y int) error {
	a.t.Helper()
	if err := a.Mouse(mouseLeft, x, y, false); err != nil {
		return err
	}
	return a.Mouse(mouseLeft, x, y, true)
}

func (a *canvasApp) DoubleClick(x, y int) error {
	a.t.Helper()
	if err := a.Click(x, y); err != nil {
		return err
	}
	return a.Click(x, y)
}

// Ready waits for the marker printed before the UI starts
func (a *canvasApp) Ready() bool {
	a.t.Helper()
	return a.waitFor(func(s string) bool { return strings.Contains(s, "__READY__") }, 5*time.Second)
}

// SeePlain waits up to three seconds for text in the ANSI-stripped output
func (a *canvasApp) SeePlain(text string) bool {
	a.t.Helper()
	return a.OutputContainsPlain(text, 3*time.Second)
}

func (a *canvasApp) OutputContainsPlain(text string, timeout time.Duration) bool {
	a.t.Helper()
	return a.waitFor(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), text)
	}, timeout)
}

func (a *canvasApp) waitFor(pred func(string) bool, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if pred(a.output()) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

func (a *canvasApp) output() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return string(a.out)
}

// DumpTailOnFail saves the last n bytes of plain output for debugging
func (a *canvasApp) DumpTailOnFail(t *testing.T, name string, n int) {
	s := ansiRe.ReplaceAllString(a.output(), "")
	if len(s) > n {
		s = s[len(s)-n:]
	}
	p := filepath.Join(t.TempDir(), name+".txt")
	_ = os.WriteFile(p, []byte(s), 0644)
	t.Logf("Saved tail to %s", p)
}

// Cleanup closes the PTY, kills the process and removes the workspace
func (a *canvasApp) Cleanup() {
	if a.pty != nil {
		_ = a.pty.Close()
		a.pty = nil
	}
	if a.cmd != nil && a.cmd.Process != nil {
		_ = a.cmd.Process.Kill()
		_, _ = a.cmd.Process.Wait()
		a.cmd = nil
	}
	if a.workspace != "" {
		_ = os.RemoveAll(a.workspace)
		a.workspace = ""
	}
}
