package console

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
)

const (
	tableWidth  = 100
	nameColumn  = 40
	statusWidth = 30
)

var (
	headerColor = color.New(color.FgHiMagenta, color.Bold)
	stampColor  = color.New(color.FgHiCyan)
	nameColor   = color.New(color.FgHiBlue, color.Bold)
	okColor     = color.New(color.FgHiGreen, color.Bold)
	failColor   = color.New(color.FgHiRed, color.Bold)
)

// Header prints the progress table header, once per batch.
func Header() {
	headerColor.Printf("| %s | %s | %s |\n",
		center("Timestamp", 19), center("Filename", nameColumn), center("Status", statusWidth))
	headerColor.Println(strings.Repeat("-", tableWidth))
}

// Success prints a row for a generated artifact.
func Success(filename string) {
	row(filename, okColor.Sprint("✔ Invoice Generated Successfully"))
}

// Failure prints a row for a bill group that could not be processed.
func Failure(filename string, err error) {
	row(filename, failColor.Sprintf("✘ %v", err))
}

func row(filename, status string) {
	if len(filename) > nameColumn {
		filename = filename[:nameColumn-3] + "..."
	}
	fmt.Printf("| %s | %s | %-*s |\n",
		stampColor.Sprint(time.Now().Format("2006-01-02 15:04:05")),
		nameColor.Sprintf("%-*s", nameColumn, filename),
		statusWidth, status)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}
