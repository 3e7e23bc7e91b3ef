package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bnema/rememble/internal/domain"
	"github.com/bnema/rememble/internal/ports"
)

// DefaultCommand is used when no pass-compatible binary is configured.
const DefaultCommand = "pass"

var (
	ErrUnavailable = errors.New("pass command unavailable")

	errInvalidEntry = errors.New("invalid pass entry name")
	errEmptySecret  = errors.New("refusing to store an empty secret")
)

type runner func(ctx context.Context, command string, stdin string, args ...string) (stdout string, stderr string, err error)

// Store keeps rememble secrets, such as the assistant API key, as entries in
// a pass-compatible password store (pass or gopass). The secret is the first
// line of the entry so users can keep notes like a console URL below it.
type Store struct {
	command string
	run     runner
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(command string) *Store {
	command = strings.TrimSpace(command)
	if command == "" {
		command = DefaultCommand
	}

	return &Store{command: command, run: runEntryCommand}
}

func (s *Store) Put(ctx context.Context, entry string, secret string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateEntry(entry); err != nil {
		return err
	}

	secret = strings.TrimSpace(secret)
	if secret == "" {
		return fmt.Errorf("%s insert %q: %w", s.command, entry, errEmptySecret)
	}

	_, stderr, err := s.run(ctx, s.command, secret+"\n", "insert", "--multiline", "--force", "--", entry)
	if err != nil {
		return s.commandError("insert", entry, err, stderr)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, entry string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := validateEntry(entry); err != nil {
		return "", err
	}

	stdout, stderr, err := s.run(ctx, s.command, "", "show", "--", entry)
	if err != nil {
		if entryMissing(stderr) {
			return "", fmt.Errorf("%s show %q: %w", s.command, entry, domain.ErrSecretNotFound)
		}
		return "", s.commandError("show", entry, err, stderr)
	}

	secret, _, _ := strings.Cut(stdout, "\n")
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return "", fmt.Errorf("%s show %q: empty first line: %w", s.command, entry, domain.ErrSecretNotFound)
	}

	return secret, nil
}

// Delete removes the entry. A missing entry is not an error.
func (s *Store) Delete(ctx context.Context, entry string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateEntry(entry); err != nil {
		return err
	}

	_, stderr, err := s.run(ctx, s.command, "", "rm", "--force", "--", entry)
	if err != nil && !entryMissing(stderr) {
		return s.commandError("rm", entry, err, stderr)
	}

	return nil
}

func (s *Store) commandError(verb string, entry string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("%s %s %q: %w", s.command, verb, entry, err)
	}

	return fmt.Errorf("%s %s %q: %w: %s", s.command, verb, entry, err, stderr)
}

// validateEntry accepts slash separated entry names like
// rememble/genai/api_key and nothing that could escape the store.
func validateEntry(entry string) error {
	if entry == "" || strings.HasPrefix(entry, "/") || strings.HasPrefix(entry, "-") {
		return fmt.Errorf("%w: %q", errInvalidEntry, entry)
	}
	for _, segment := range strings.Split(entry, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return fmt.Errorf("%w: %q", errInvalidEntry, entry)
		}
	}

	return nil
}

func entryMissing(stderr string) bool {
	return strings.Contains(stderr, "is not in the password store")
}

func runEntryCommand(ctx context.Context, command string, stdin string, args ...string) (string, string, error) {
	path, err := exec.LookPath(command)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", fmt.Errorf("%w: %s", ErrUnavailable, command)
		}
		return "", "", fmt.Errorf("locate %s: %w", command, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}
