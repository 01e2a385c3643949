package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aamad-labs/aamad/internal/config"
	"github.com/aamad-labs/aamad/internal/integrations"
	"github.com/mattn/go-isatty"
)

// stdinIsTerminal is replaced in tests.
var stdinIsTerminal = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// resolveIDE picks the IDE from the flag, then the configured default, then
// an interactive menu when stdin is a terminal, then the built-in default.
func resolveIDE(flag string, in io.Reader, out io.Writer) (integrations.ToolName, error) {
	if flag != "" {
		return parseIDE(flag)
	}
	if configured := config.Get(config.KeyIDE); configured != "" {
		return parseIDE(configured)
	}
	if stdinIsTerminal() {
		return chooseIDE(bufio.NewReader(in), out)
	}
	return integrations.Default, nil
}

func parseIDE(name string) (integrations.ToolName, error) {
	tool, ok := integrations.ParseToolName(name)
	if !ok {
		return "", fmt.Errorf("unknown IDE %q: choose one of %s", name, ideChoices())
	}
	return tool, nil
}

func ideChoices() string {
	var names []string
	for _, t := range integrations.AllTools() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

func chooseIDE(reader *bufio.Reader, w io.Writer) (integrations.ToolName, error) {
	tools := integrations.AllTools()
	labels := make([]string, len(tools))
	for i, t := range tools {
		labels[i] = fmtTool(t)
	}

	idx, err := selectFromList(reader, w, "Select target IDE:", labels)
	if err != nil {
		return "", err
	}
	return tools[idx], nil
}

// selectFromList presents a numbered list and returns the selected index.
// An empty answer selects the first item.
func selectFromList(reader *bufio.Reader, w io.Writer, prompt string, items []string) (int, error) {
	fmt.Fprintf(w, "\n%s\n", prompt)
	for i, item := range items {
		fmt.Fprintf(w, "  %d) %s\n", i+1, item)
	}
	fmt.Fprintf(w, "Enter number [1-%d]: ", len(items))

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return 0, fmt.Errorf("reading selection: %w", err)
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return 0, nil
	}
	num, err := strconv.Atoi(answer)
	if err != nil || num < 1 || num > len(items) {
		return 0, fmt.Errorf("invalid selection %q: choose 1-%d", answer, len(items))
	}
	return num - 1, nil
}
