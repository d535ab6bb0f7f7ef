package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"fossil-api/pkg/fossil"

	"github.com/charmbracelet/lipgloss"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	reportStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	dotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

const quitCommand = "q"

// RunChat is the terminal loop: describe, identify, then optionally print the cladogram source.
func RunChat(ctx context.Context, assistant *fossil.Assistant, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	scanner := bufio.NewScanner(in)
	readLine := func(prompt string) (string, bool) {
		fmt.Fprint(out, promptStyle.Render(prompt))
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	fmt.Fprintln(out, bannerStyle.Render("化石鑑定助理 (輸入 q 離開)"))
	for {
		description, ok := readLine("\n請描述你的化石： ")
		if !ok || strings.EqualFold(description, quitCommand) {
			break
		}
		if description == "" {
			continue
		}

		reply := assistant.Identify(ctx, description)
		fmt.Fprintln(out, reportStyle.Render(reply.Text))
		for _, image := range reply.Images {
			fmt.Fprintf(out, "圖片：%s\n", image.Url)
		}

		answer, ok := readLine("要產生演化圖的 Graphviz DOT 代碼嗎？(y/n) ")
		if !ok {
			break
		}
		if !strings.EqualFold(answer, "y") {
			continue
		}

		source, err := assistant.GraphSource(ctx, reply.Text)
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render("無法產生演化圖："+err.Error()))
			continue
		}
		fmt.Fprintln(out, dotStyle.Render(source))
	}

	fmt.Fprintln(out, bannerStyle.Render("再見！"))
	return scanner.Err()
}
