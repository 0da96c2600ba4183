// Package prompt provides the interactive terminal prompts used by
// the toc CLI: passphrase entry, upload identifier entry, and
// yes/no confirmation (used before extracting into a non-empty
// directory).
package prompt

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Passphrase asks for a passphrase, masking input as it's typed.
// When stdin isn't a terminal it falls back to reading an unmasked
// line, so piped input still works in scripts.
func Passphrase(label string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return readLine()
	}

	var value string
	field := huh.NewInput().
		Title(label).
		EchoMode(huh.EchoModePassword).
		Validate(func(s string) error {
			if s == "" {
				return fmt.Errorf("passphrase must not be empty")
			}
			return nil
		}).
		Value(&value)

	if err := huh.NewForm(huh.NewGroup(field)).Run(); err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}
	return value, nil
}

// ConfirmPassphrase asks for a passphrase twice and returns an error
// if the two entries don't match.
func ConfirmPassphrase(label string) (string, error) {
	first, err := Passphrase(label)
	if err != nil {
		return "", err
	}
	second, err := Passphrase("Confirm " + label)
	if err != nil {
		return "", err
	}
	if first != second {
		return "", fmt.Errorf("prompt: passphrases did not match")
	}
	return first, nil
}

// Identifier asks for an upload's wordpass identifier.
func Identifier(label string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return readLine()
	}

	var value string
	field := huh.NewInput().
		Title(label).
		Placeholder("0005-bafraish-baifeat-baigreang-baikair").
		Value(&value)

	if err := huh.NewForm(huh.NewGroup(field)).Run(); err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}
	return value, nil
}

// Confirm asks a yes/no question, defaulting to no.
func Confirm(question string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, nil
	}

	value := false
	field := huh.NewConfirm().
		Title(question).
		Affirmative("Yes").
		Negative("No").
		Value(&value)

	if err := huh.NewForm(huh.NewGroup(field)).Run(); err != nil {
		return false, fmt.Errorf("prompt: %w", err)
	}
	return value, nil
}

// Info prints an informational line.
func Info(format string, args ...any) {
	fmt.Fprintln(os.Stderr, infoStyle.Render(fmt.Sprintf(format, args...)))
}

// Success prints a success line.
func Success(format string, args ...any) {
	fmt.Fprintln(os.Stderr, successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error line.
func Error(format string, args ...any) {
	fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf(format, args...)))
}

// readLine reads one whitespace-free token from a line of stdin
// without echo control, for non-interactive contexts (pipes, CI). A
// line holding more than one space-separated word is an error.
func readLine() (string, error) {
	var line string
	_, err := fmt.Scanln(&line)
	if err != nil {
		return "", fmt.Errorf("prompt: read stdin: %w", err)
	}
	return line, nil
}
