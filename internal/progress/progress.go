// Package progress renders download progress for the command line.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Bar is an io.Writer that advances a byte progress bar by the number of
// bytes written to it.
type Bar struct {
	bar *progressbar.ProgressBar
	out io.Writer
}

// NewBar creates a bar writing to out. A negative total renders a spinner.
func NewBar(total int64, description string, out io.Writer) *Bar {
	if f, ok := out.(*os.File); ok {
		enableANSI(f)
	}

	return &Bar{
		out: out,
		bar: progressbar.NewOptions64(total,
			progressbar.OptionSetDescription(description),
			progressbar.OptionSetWriter(out),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionThrottle(100),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprint(out, "\n")
			}),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetRenderBlankState(true),
		),
	}
}

// Write implements io.Writer.
func (b *Bar) Write(p []byte) (int, error) {
	return b.bar.Write(p)
}

// Finish completes the bar.
func (b *Bar) Finish() {
	_ = b.bar.Finish()
}

// Fail stops the bar and prints err below it.
func (b *Bar) Fail(err error) {
	_ = b.bar.Exit()
	if err != nil {
		fmt.Fprintf(b.out, "\nError: %v\n", err)
	}
}

// LogWriter returns a writer for log lines that clears the bar first, so
// a log line never lands in the middle of it. The bar redraws on the next
// Write.
func (b *Bar) LogWriter() io.Writer {
	return logWriter{b}
}

type logWriter struct{ b *Bar }

func (w logWriter) Write(p []byte) (int, error) {
	_ = w.b.bar.Clear()
	return w.b.out.Write(p)
}
