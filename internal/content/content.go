// Package content holds the portfolio copy: profile, skills, experience,
// projects, education and contact details, loaded from YAML.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var defaultYAML []byte

// PlaceholderImage is used for projects without a screenshot.
const PlaceholderImage = "/api/placeholder/400/300"

type NavLink struct {
	Name    string `yaml:"name"`
	Section string `yaml:"section"`
}

type Social struct {
	Kind string `yaml:"kind"` // github, linkedin, code
	URL  string `yaml:"url"`
}

type Hero struct {
	Badge     string `yaml:"badge"`
	Greeting  string `yaml:"greeting"`
	Name      string `yaml:"name"`
	Headline  string `yaml:"headline"`
	Intro     string `yaml:"intro"`
	Initials  string `yaml:"initials"`
	PageTitle string `yaml:"page_title"`
}

type About struct {
	Photo        string   `yaml:"photo"`
	PhotoAlt     string   `yaml:"photo_alt"`
	Body         string   `yaml:"body"` // markdown
	Achievements []string `yaml:"achievements"`
	ResumeURL    string   `yaml:"resume_url"`
}

type SkillCategory struct {
	Category string   `yaml:"category"`
	Icon     string   `yaml:"icon"`
	Items    []string `yaml:"items"`
}

type Experience struct {
	Role             string   `yaml:"role"`
	Company          string   `yaml:"company"`
	Period           string   `yaml:"period"`
	Responsibilities []string `yaml:"responsibilities"`
}

type Project struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Stack        []string `yaml:"stack"`
	Image        string   `yaml:"image"`
	Repo         string   `yaml:"repo"`
	Demo         string   `yaml:"demo"`
	DownloadLink string   `yaml:"download_link"`
}

// ImageURL falls back to the placeholder when no image is set.
func (p Project) ImageURL() string {
	if p.Image == "" {
		return PlaceholderImage
	}
	return p.Image
}

type Education struct {
	Degree      string   `yaml:"degree"`
	Institution string   `yaml:"institution"`
	Duration    string   `yaml:"duration"`
	CGPA        string   `yaml:"cgpa"`
	Percentage  string   `yaml:"percentage"`
	Coursework  []string `yaml:"coursework"`
	Icon        string   `yaml:"icon"`
}

type Contact struct {
	Email        string   `yaml:"email"`
	Phone        string   `yaml:"phone"`
	PhoneDisplay string   `yaml:"phone_display"`
	Availability string   `yaml:"availability"`
	Socials      []Social `yaml:"socials"`
}

// Portfolio is everything rendered on the page.
type Portfolio struct {
	Sections   []string        `yaml:"sections"`
	Nav        []NavLink       `yaml:"nav"`
	Hero       Hero            `yaml:"hero"`
	About      About           `yaml:"about"`
	Socials    []Social        `yaml:"socials"`
	Skills     []SkillCategory `yaml:"skills"`
	Experience []Experience    `yaml:"experience"`
	Projects   []Project       `yaml:"projects"`
	Education  []Education     `yaml:"education"`
	Contact    Contact         `yaml:"contact"`
}

// Default returns the embedded portfolio.
func Default() (*Portfolio, error) {
	return Parse(defaultYAML)
}

// Load reads a portfolio from path, or the embedded one when path is empty.
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading content file %s", path)
	}
	return Parse(data)
}

// Parse decodes YAML content. Unknown keys are rejected so typos in the
// content file show up at start instead of as missing copy.
func Parse(data []byte) (*Portfolio, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Portfolio
	if err := dec.Decode(&p); err != nil {
		return nil, errors.Wrap(err, "decoding portfolio content")
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Portfolio) validate() error {
	if len(p.Sections) == 0 {
		return errors.New("content: no sections defined")
	}
	seen := make(map[string]bool, len(p.Sections))
	for _, s := range p.Sections {
		if s == "" {
			return errors.New("content: empty section id")
		}
		if seen[s] {
			return fmt.Errorf("content: duplicate section id %q", s)
		}
		seen[s] = true
	}
	return nil
}
