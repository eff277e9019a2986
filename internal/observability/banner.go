package observability

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"golang.org/x/term"
)

const (
	colorReset = "\033[0m"
	colorCyan  = "\033[36m"
	colorBold  = "\033[1m"
)

func termWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

// PrintBanner prints the startup banner for the CLI.
func PrintBanner(version string, toolCount int) {
	width := termWidth()
	line := strings.Repeat("─", min(width, 60))

	fmt.Println(colorCyan + line + colorReset)
	fmt.Println(colorBold + center("atomic-tools "+version, min(width, 60)) + colorReset)
	fmt.Println(center(fmt.Sprintf("%d tools registered · %s/%s", toolCount, runtime.GOOS, runtime.GOARCH), min(width, 60)))
	fmt.Println(colorCyan + line + colorReset)
}
