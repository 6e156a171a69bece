package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/manifoldco/promptui"
)

// Owner is the portfolio owner information collected by the wizard. It seeds
// the starter data documents.
type Owner struct {
	Name  string
	Title string
	Email string
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config and owner details. It also saves the config to path.
func RunWizard(path string) (*Config, *Owner, error) {
	fmt.Println("Welcome to folio! Let's set up your portfolio.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Owner.
	name, err := (&promptui.Prompt{Label: "Your name", Validate: notEmpty}).Run()
	if err != nil {
		return nil, nil, fmt.Errorf("name: %w", err)
	}
	title, err := (&promptui.Prompt{Label: "Headline (e.g. Backend Engineer)", Default: "Software Engineer"}).Run()
	if err != nil {
		return nil, nil, fmt.Errorf("headline: %w", err)
	}
	email, err := (&promptui.Prompt{Label: "Contact email"}).Run()
	if err != nil {
		return nil, nil, fmt.Errorf("email: %w", err)
	}

	// 2. Content source.
	sourcePrompt := promptui.Select{
		Label: "Where are the data/*.json documents served from?",
		Items: []string{
			"dir  - local directory next to .folio.yml",
			"http - a remote base URL",
		},
	}
	idx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("source selection: %w", err)
	}
	if idx == 1 {
		cfg.Content.Source = SourceHTTP
		baseURL, err := (&promptui.Prompt{Label: "Base URL", Validate: absoluteURL}).Run()
		if err != nil {
			return nil, nil, fmt.Errorf("base url: %w", err)
		}
		cfg.Content.BaseURL = baseURL
	}

	// 3. Output directory.
	outputDir, err := (&promptui.Prompt{Label: "Output directory for the built site", Default: cfg.Site.OutputDir}).Run()
	if err != nil {
		return nil, nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.Site.OutputDir = outputDir

	// 4. Extra watch patterns for serve mode.
	watchStr, err := (&promptui.Prompt{Label: "Extra watch patterns for serve (comma-separated, blank for defaults)"}).Run()
	if err != nil {
		return nil, nil, fmt.Errorf("watch patterns: %w", err)
	}
	if extra := splitAndTrim(watchStr); len(extra) > 0 {
		cfg.Serve.WatchPatterns = append(append([]string{}, DefaultWatchPatterns...), extra...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	if _, err := os.Stat(path); err == nil {
		confirm := promptui.Prompt{Label: fmt.Sprintf("%s exists, overwrite", path), IsConfirm: true}
		if _, err := confirm.Run(); err != nil {
			return nil, nil, fmt.Errorf("keeping existing %s", path)
		}
	}
	if err := cfg.Save(path); err != nil {
		return nil, nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, &Owner{Name: name, Title: title, Email: email}, nil
}

func notEmpty(s string) error {
	if trimSpace(s) == "" {
		return fmt.Errorf("value is required")
	}
	return nil
}

func absoluteURL(s string) error {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("enter an absolute URL such as https://example.com")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			token := trimSpace(s[start:i])
			if token != "" {
				result = append(result, token)
			}
			start = i + 1
		}
	}
	return result
}

func trimSpace(s string) string {
	i, j := 0, len(s)
	for i < j && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	for j > i && (s[j-1] == ' ' || s[j-1] == '\t') {
		j--
	}
	return s[i:j]
}
