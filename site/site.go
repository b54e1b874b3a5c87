// Package site holds the static portfolio data: testimonials, projects,
// FAQs, navigation and page copy. The data is embedded in the binary and
// never changes while the process runs.
package site

import (
	"bytes"
	_ "embed"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed data.yaml
var raw []byte

var validate = validator.New()

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func init() {
	_ = validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
}

// Data is the complete static content of the site.
type Data struct {
	Owner        Owner         `yaml:"owner"`
	Hero         Hero          `yaml:"hero"`
	Intro        string        `yaml:"intro" validate:"required"`
	Nav          []Link        `yaml:"nav" validate:"dive"`
	Languages    []Language    `yaml:"languages" validate:"required,min=1,dive"`
	Testimonials []Testimonial `yaml:"testimonials" validate:"required,min=1,dive"`
	Projects     []Project     `yaml:"projects" validate:"required,min=1,unique=Slug,dive"`
	FAQs         []FAQ         `yaml:"faqs" validate:"dive"`
	Footer       Footer        `yaml:"footer"`
	About        About         `yaml:"about"`
}

type Owner struct {
	Name     string `yaml:"name" validate:"required"`
	Email    string `yaml:"email" validate:"required,email"`
	GitHub   string `yaml:"github" validate:"omitempty,url"`
	LinkedIn string `yaml:"linkedin" validate:"omitempty,url"`
}

type Hero struct {
	Title        string `yaml:"title" validate:"required"`
	Image        string `yaml:"image" validate:"required"`
	PrimaryCTA   string `yaml:"primaryCTA"`
	SecondaryCTA string `yaml:"secondaryCTA"`
}

type Link struct {
	Label string `yaml:"label" validate:"required"`
	Href  string `yaml:"href" validate:"required"`
}

type Language struct {
	Code string `yaml:"code" validate:"required,bcp47_language_tag"`
	Name string `yaml:"name" validate:"required"`
	Flag string `yaml:"flag"`
}

// Testimonial is one client quote. ImagePositionY is the vertical focal
// point of the portrait, 0 at the top and 1 at the bottom.
type Testimonial struct {
	Name           string  `yaml:"name" validate:"required"`
	Company        string  `yaml:"company" validate:"required"`
	Role           string  `yaml:"role" validate:"required"`
	Quote          string  `yaml:"quote" validate:"required"`
	Image          string  `yaml:"image" validate:"required"`
	ImagePositionY float64 `yaml:"imagePositionY" validate:"gte=0,lte=1"`
}

type Project struct {
	ID           int      `yaml:"id" validate:"required"`
	Title        string   `yaml:"title" validate:"required"`
	Slug         string   `yaml:"slug" validate:"required,slug"`
	Description  string   `yaml:"description" validate:"required"`
	Category     string   `yaml:"category"`
	Image        string   `yaml:"image" validate:"required"`
	DetailImages []string `yaml:"detailImages"`
	Technologies []string `yaml:"technologies"`
	Client       string   `yaml:"client"`
	Year         string   `yaml:"year" validate:"omitempty,numeric,len=4"`
	Role         string   `yaml:"role"`
	LiveURL      string   `yaml:"liveURL" validate:"omitempty,url"`
}

type FAQ struct {
	Question string `yaml:"question" validate:"required"`
	Answer   string `yaml:"answer" validate:"required"`
}

type Footer struct {
	Status  string `yaml:"status"`
	Heading string `yaml:"heading"`
	Links   []Link `yaml:"links" validate:"dive"`
}

type About struct {
	Tagline  string   `yaml:"tagline"`
	Image    string   `yaml:"image"`
	Bio      []string `yaml:"bio"`
	Skills   []string `yaml:"skills"`
	Approach []string `yaml:"approach"`
}

// Load decodes and validates the embedded site data.
func Load() (*Data, error) {
	return Parse(raw)
}

// MustLoad is like Load but panics on error.
func MustLoad() *Data {
	d, err := Load()
	if err != nil {
		panic(err)
	}
	return d
}

// Parse decodes and validates site data from YAML.
func Parse(b []byte) (*Data, error) {
	var d Data
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("site: decode: %w", err)
	}
	if err := validate.Struct(&d); err != nil {
		return nil, fmt.Errorf("site: invalid data: %w", err)
	}
	return &d, nil
}

// Project returns the project with slug.
func (d *Data) Project(slug string) (Project, bool) {
	for _, p := range d.Projects {
		if p.Slug == slug {
			return p, true
		}
	}
	return Project{}, false
}

// RelatedProjects returns up to n projects other than slug, in list order.
func (d *Data) RelatedProjects(slug string, n int) []Project {
	var out []Project
	for _, p := range d.Projects {
		if len(out) >= n {
			break
		}
		if p.Slug != slug {
			out = append(out, p)
		}
	}
	return out
}

// Language returns the language entry for code, falling back to the first.
func (d *Data) Language(code string) Language {
	for _, l := range d.Languages {
		if l.Code == code {
			return l
		}
	}
	return d.Languages[0]
}
