package template

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
	"github.com/rsinnovationhub/hub/internal/model"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	lakh  = decimal.NewFromInt(100_000)
	crore = decimal.NewFromInt(10_000_000)
)

// formatINR renders an amount of rupees the way Indian prize pools are
// advertised: "₹5 Lakhs", "₹2 Crore", "₹50,000". Zero or negative is empty.
func formatINR(d decimal.Decimal) string {
	switch {
	case !d.IsPositive():
		return ""
	case d.GreaterThanOrEqual(crore):
		return "₹" + d.Div(crore).Round(2).String() + " Crore"
	case d.GreaterThanOrEqual(lakh):
		n := d.Div(lakh).Round(2)
		if n.Equal(decimal.NewFromInt(1)) {
			return "₹1 Lakh"
		}
		return "₹" + n.String() + " Lakhs"
	}
	return "₹" + groupIndian(d.Round(0).IntPart())
}

// groupIndian formats n with Indian digit grouping (12,34,567).
func groupIndian(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)
	return strings.Join(parts, ",") + "," + tail
}

// initials returns up to two uppercase initials for an avatar.
func initials(name string) string {
	words := strings.Fields(name)
	letters := lo.FilterMap(words, func(w string, _ int) (string, bool) {
		r := []rune(w)
		if !unicode.IsLetter(r[0]) {
			return "", false
		}
		return string(unicode.ToUpper(r[0])), true
	})
	return strings.Join(lo.Slice(letters, 0, 2), "")
}

// funcMap provides custom template functions.
var funcMap = template.FuncMap{
	"add": func(a, b int) int {
		return a + b
	},
	"formatINR": formatINR,
	"initials":  initials,
	"stars": func(rating int) []bool {
		rating = max(0, min(rating, 5))
		return lo.Times(5, func(i int) bool {
			return i < rating
		})
	},
	"categoryLabel": func(c model.ProgramCategory) string {
		s := string(c)
		if s == "" {
			return ""
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
	"optionLabel": func(field, value string) string {
		opt, ok := lo.Find(model.FieldOptions(field), func(o model.Option) bool {
			return o.Value == value
		})
		if !ok {
			return value
		}
		return opt.Label
	},
	"lower": strings.ToLower,
	"markdown": func(s string) template.HTML {
		extensions := blackfriday.CommonExtensions | blackfriday.AutoHeadingIDs | blackfriday.Autolink
		renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
			Flags: blackfriday.CommonHTMLFlags,
		})
		unsafe := blackfriday.Run([]byte(s), blackfriday.WithRenderer(renderer), blackfriday.WithExtensions(extensions))
		// Content files can be replaced at deploy time; sanitize before trusting.
		p := bluemonday.UGCPolicy()
		safe := p.SanitizeBytes(unsafe)
		return template.HTML(safe)
	},
}

// Templates holds parsed HTML templates.
type Templates struct {
	pages map[string]*template.Template
}

// New parses and returns all templates.
func New() (*Templates, error) {
	pages := make(map[string]*template.Template)

	base, err := template.New("base.html").Funcs(funcMap).ParseFS(templateFS, "templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("parsing base template: %w", err)
	}

	pageNames := []string{"home.html"}

	for _, name := range pageNames {
		pageTemplate, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning base for %s: %w", name, err)
		}

		_, err = pageTemplate.ParseFS(templateFS, "templates/"+name, "templates/dialog.html")
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}

		pages[name] = pageTemplate
	}

	return &Templates{pages: pages}, nil
}

// Render executes the named template with the given data.
func (t *Templates) Render(w io.Writer, name string, data any) error {
	tmpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}
	return tmpl.ExecuteTemplate(w, "base", data)
}
