package site

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"portfolio/configs"
)

// Page is a hand-listed static page.
type Page struct {
	Name   string       `yaml:"name"`
	File   string       `yaml:"file"` // relative to src/app
	URL    string       `yaml:"url"`
	Title  string       `yaml:"title,omitempty"`
	Papers *PaperSource `yaml:"papers,omitempty"`
}

// PaperSource names the array of paper records a page is built from.
type PaperSource struct {
	File  string `yaml:"file"` // relative to the site root
	Array string `yaml:"array"`
}

type pageList struct {
	Pages []Page `yaml:"pages"`
}

// LoadPages parses a page list document.
func LoadPages(data []byte) ([]Page, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var list pageList
	if err := dec.Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to parse page list: %w", err)
	}

	for i, p := range list.Pages {
		if p.Name == "" || p.File == "" || p.URL == "" {
			return nil, fmt.Errorf("page %d: name, file and url are required", i)
		}
		if p.Papers != nil && (p.Papers.File == "" || p.Papers.Array == "") {
			return nil, fmt.Errorf("page %s: papers needs file and array", p.Name)
		}
	}
	return list.Pages, nil
}

// DefaultPages returns the page list compiled into the binary.
func DefaultPages() ([]Page, error) {
	return LoadPages(configs.PagesYAML)
}
