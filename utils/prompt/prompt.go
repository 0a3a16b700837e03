package promptutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

var ErrInterrupted = errors.New("operation interrupted")

type Prompter interface {
	PromptRequired(label string) (string, error)
	PromptWithDefault(label, defaultValue string) (string, error)
	PromptOptional(label string) (string, error)
	PromptYesNo(label string, defaultValue bool) (bool, error)
}

type RealPrompter struct{}

func NewPrompt() Prompter {
	return &RealPrompter{}
}

func (p *RealPrompter) handlePromptError(err error) error {
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) {
			fmt.Println("\nReceived termination signal. Exiting.")
			return ErrInterrupted
		}
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

func (p *RealPrompter) PromptRequired(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("value is required")
			}
			return nil
		},
	}
	result, err := prompt.Run()
	if err := p.handlePromptError(err); err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}

func (p *RealPrompter) PromptWithDefault(label, defaultValue string) (string, error) {
	prompt := promptui.Prompt{
		Label:   label,
		Default: defaultValue,
	}
	result, err := prompt.Run()
	if err := p.handlePromptError(err); err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}

func (p *RealPrompter) PromptOptional(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
	}
	result, err := prompt.Run()
	if err := p.handlePromptError(err); err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}

func (p *RealPrompter) PromptYesNo(label string, defaultValue bool) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	result, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) {
			fmt.Println("\nReceived termination signal. Exiting.")
			return false, ErrInterrupted
		}
		// promptui reports "abort" for a plain "n"; treat it as a no.
		return false, nil
	}
	return strings.HasPrefix(strings.ToLower(result), "y") || result == "", nil
}
