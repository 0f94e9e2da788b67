package main

import (
	"fmt"
	"io"

	"maisonweb/models"

	"gopkg.in/yaml.v3"
)

// content is the seed file layout. Image fields reuse the models' yaml tags.
type content struct {
	Services []serviceEntry `yaml:"services"`
	Projects []projectEntry `yaml:"projects"`
	Brands   []brandEntry   `yaml:"brands"`
}

type serviceEntry struct {
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Images      []models.Image `yaml:"images"`
}

type projectEntry struct {
	Title          string         `yaml:"title"`
	Type           string         `yaml:"type"`
	Description    string         `yaml:"description"`
	Images         []models.Image `yaml:"images"`
	CompletionYear string         `yaml:"dateOfCompletion"`
	Duration       string         `yaml:"duration"`
	Technologies   []string       `yaml:"technologies"`
	Link           string         `yaml:"link"`
	DisplayOnHome  bool           `yaml:"displayOnHome"`
}

type brandEntry struct {
	Name  string       `yaml:"name"`
	Image models.Image `yaml:"image"`
}

func parseContent(r io.Reader) (*content, error) {
	var c content
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}

	for i, p := range c.Projects {
		if !models.ValidCompletionYear(p.CompletionYear) {
			return nil, fmt.Errorf("project %d (%q): dateOfCompletion must be a four digit year, got %q", i, p.Title, p.CompletionYear)
		}
	}
	return &c, nil
}

func (c *content) services() []models.Service {
	out := make([]models.Service, len(c.Services))
	for i, s := range c.Services {
		out[i] = models.Service{Title: s.Title, Description: s.Description, Images: s.Images}
	}
	return out
}

func (c *content) projects() []models.Project {
	out := make([]models.Project, len(c.Projects))
	for i, p := range c.Projects {
		out[i] = models.Project{
			Title:          p.Title,
			Type:           p.Type,
			Description:    p.Description,
			Images:         p.Images,
			CompletionYear: p.CompletionYear,
			Duration:       p.Duration,
			Technologies:   p.Technologies,
			Link:           p.Link,
			DisplayOnHome:  p.DisplayOnHome,
		}
	}
	return out
}

func (c *content) brands() []models.Brand {
	out := make([]models.Brand, len(c.Brands))
	for i, b := range c.Brands {
		out[i] = models.Brand{Name: b.Name, Image: b.Image}
	}
	return out
}
