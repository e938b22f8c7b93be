package web

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/rodnney/biotech-x/apis/health"
	"github.com/rodnney/biotech-x/pkg/status"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Static page copy.
const (
	Title          = "Biotech-X Platform"
	Description    = "Plataforma de análise de espectrometria de massa para caracterização de proteínas"
	FrontendOnline = "✅ Online"
	RepositoryURL  = "https://github.com/rodnney/biotech-x-challenge"
)

// PlannedFeatures is shown as-is; none of it is implemented.
var PlannedFeatures = []string{
	"Upload de arquivos de espectrometria de massa",
	"Processamento automatizado com AWS Batch",
	"Análise e classificação de proteínas",
	"Dashboard de resultados",
	"Gestão de usuários e amostras",
}

// Link is an entry of the useful links list.
type Link struct {
	Label string
	URL   string
}

// Page is everything the landing page template renders.
type Page struct {
	Title       string
	Description string

	// APIStatus is the status reporter display text
	APIStatus string
	APIState  status.State

	// FrontendStatus is always FrontendOnline: serving the page proves it
	FrontendStatus string
	Environment    string

	Features []string
	Links    []Link
}

// NewPage builds the page model for one status report.
func NewPage(report status.Report, environment, apiURL string) Page {
	if apiURL == "" {
		apiURL = status.DefaultAPIURL
	}

	return Page{
		Title:          Title,
		Description:    Description,
		APIStatus:      report.Text,
		APIState:       report.State,
		FrontendStatus: FrontendOnline,
		Environment:    environment,
		Features:       PlannedFeatures,
		Links: []Link{
			{Label: "Health Check API", URL: health.MirrorPath},
			{Label: "Documentação da API", URL: strings.TrimRight(apiURL, "/") + "/docs"},
			{Label: "Repositório GitHub", URL: RepositoryURL},
		},
	}
}

// Render writes page as HTML.
func Render(w io.Writer, page Page) error {
	return pageTemplate.Execute(w, page)
}
