package prompts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/deepsoc/deepsoc/ent"
	"github.com/deepsoc/deepsoc/ent/prompt"
	"github.com/deepsoc/deepsoc/pkg/models"
)

// ErrUnknownPrompt is returned for a name outside the known prompt set.
var ErrUnknownPrompt = errors.New("unknown prompt name")

// defaults maps prompt row names to compiled-in content.
var defaults = map[string]string{
	NameCaptain:             defaultCaptain,
	NameManager:             defaultManager,
	NameOperator:            defaultOperator,
	NameExpert:              defaultExpert,
	NameBackgroundSecurity:  defaultBackgroundSecurity,
	NameBackgroundPlaybooks: defaultBackgroundPlaybooks,
}

// roleNames maps role tokens to their prompt row. The executor runs no
// LLM and has no prompt.
var roleNames = map[string]string{
	models.RoleCaptain:  NameCaptain,
	models.RoleManager:  NameManager,
	models.RoleOperator: NameOperator,
	models.RoleExpert:   NameExpert,
}

// Names lists the known prompt names in a stable order.
func Names() []string {
	return []string{
		NameCaptain,
		NameManager,
		NameOperator,
		NameExpert,
		NameBackgroundSecurity,
		NameBackgroundPlaybooks,
	}
}

// NameForRole maps a role token to its prompt row name.
func NameForRole(role string) (string, bool) {
	name, ok := roleNames[role]
	return name, ok
}

// Store reads and writes prompt rows, falling back to the compiled-in
// defaults when a row is absent.
type Store struct {
	client *ent.Client
}

// NewStore creates a prompt store.
func NewStore(client *ent.Client) *Store {
	return &Store{client: client}
}

// Get returns the content for name: the stored row when present and
// non-empty, the compiled-in default otherwise.
func (s *Store) Get(ctx context.Context, name string) (string, error) {
	fallback, known := defaults[name]
	row, err := s.client.Prompt.Query().Where(prompt.NameEQ(name)).Only(ctx)
	switch {
	case err == nil && row.Content != "":
		return row.Content, nil
	case err != nil && !ent.IsNotFound(err):
		return "", fmt.Errorf("loading prompt %q: %w", name, err)
	}
	if !known {
		return "", fmt.Errorf("%w: %q", ErrUnknownPrompt, name)
	}
	return fallback, nil
}

// Set stores content under name, creating the row if needed. Unknown
// names are rejected so typos cannot shadow nothing.
func (s *Store) Set(ctx context.Context, name, content string) error {
	if _, known := defaults[name]; !known {
		return fmt.Errorf("%w: %q", ErrUnknownPrompt, name)
	}
	row, err := s.client.Prompt.Query().Where(prompt.NameEQ(name)).Only(ctx)
	if ent.IsNotFound(err) {
		_, err = s.client.Prompt.Create().SetName(name).SetContent(content).Save(ctx)
		if err != nil {
			return fmt.Errorf("creating prompt %q: %w", name, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading prompt %q: %w", name, err)
	}
	if _, err := row.Update().SetContent(content).Save(ctx); err != nil {
		return fmt.Errorf("updating prompt %q: %w", name, err)
	}
	return nil
}

// SystemPrompt assembles the full system prompt for a role: the role
// template with its background placeholders expanded.
func (s *Store) SystemPrompt(ctx context.Context, role string) (string, error) {
	name, ok := NameForRole(role)
	if !ok {
		return "", fmt.Errorf("no system prompt for role %q", role)
	}
	tpl, err := s.Get(ctx, name)
	if err != nil {
		return "", err
	}

	if strings.Contains(tpl, placeholderBackground) {
		background, err := s.Get(ctx, NameBackgroundSecurity)
		if err != nil {
			return "", err
		}
		tpl = strings.ReplaceAll(tpl, placeholderBackground, background)
	}
	if strings.Contains(tpl, placeholderPlaybooks) {
		playbooks, err := s.Get(ctx, NameBackgroundPlaybooks)
		if err != nil {
			return "", err
		}
		tpl = strings.ReplaceAll(tpl, placeholderPlaybooks, playbooks)
	}
	return tpl, nil
}

// Seed writes any missing prompt rows from the compiled-in defaults.
// Existing rows are left alone so operator edits survive restarts.
func (s *Store) Seed(ctx context.Context) (int, error) {
	seeded := 0
	for _, name := range Names() {
		exists, err := s.client.Prompt.Query().Where(prompt.NameEQ(name)).Exist(ctx)
		if err != nil {
			return seeded, fmt.Errorf("checking prompt %q: %w", name, err)
		}
		if exists {
			continue
		}
		if _, err := s.client.Prompt.Create().SetName(name).SetContent(defaults[name]).Save(ctx); err != nil {
			return seeded, fmt.Errorf("seeding prompt %q: %w", name, err)
		}
		seeded++
	}
	return seeded, nil
}
