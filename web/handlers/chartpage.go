package web

import (
	"html/template"
	"log"
	"net/http"
	"strings"
	"sync"

	ds "github.com/starfederation/datastar-go/datastar"

	"fuzzplot/models"
	"fuzzplot/render"
	"fuzzplot/watch"
	webtmpl "fuzzplot/web"
)

// ReloadFunc re-reads the chart's series from disk and rebuilds the chart.
type ReloadFunc func() (*models.Chart, error)

// ChartPage serves one rendered chart and re-renders it whenever the watcher
// reports that a result file changed.
type ChartPage struct {
	templates *template.Template
	watcher   *watch.Watcher
	reload    ReloadFunc
	title     string

	mu  sync.Mutex
	svg template.HTML
	err string
}

func NewChartPage(chart *models.Chart, reload ReloadFunc, watcher *watch.Watcher) (page *ChartPage, err error) {
	svg, err := render.SVG(chart)
	if err != nil {
		return nil, err
	}

	page = &ChartPage{
		watcher: watcher,
		reload:  reload,
		title:   chart.Title(),
		svg:     template.HTML(svg),
	}
	page.templates, err = template.ParseFS(webtmpl.Templates, "templates/*.gohtml")
	return page, err
}

func (p *ChartPage) Templates() *template.Template {
	return p.templates
}

func (p *ChartPage) Handlers() map[string]func(w http.ResponseWriter, r *http.Request) {
	if p.watcher == nil {
		return map[string]func(w http.ResponseWriter, r *http.Request){}
	}
	return map[string]func(w http.ResponseWriter, r *http.Request){
		"/watch": p.WatchHandler,
	}
}

func (p *ChartPage) Data() map[string]interface{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return map[string]interface{}{
		"Title": p.title,
		"SVG":   p.svg,
		"Err":   p.err,
	}
}

// WatchHandler streams chart updates to the page over SSE. Each file change
// re-renders the chart and morphs the fragment in place.
func (p *ChartPage) WatchHandler(w http.ResponseWriter, r *http.Request) {
	sse := ds.NewSSE(w, r)

	_, events, cancel := p.watcher.Subscribe()
	defer cancel()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			log.Printf("reloading chart, %s changed", event.Path)
			p.refresh()

			writer := strings.Builder{}
			if err := p.templates.ExecuteTemplate(&writer, "chart", p.Data()); err != nil {
				log.Printf("couldn't execute chart template: %s", err)
				continue
			}
			if err := sse.PatchElements(writer.String()); err != nil {
				return
			}
		}
	}
}

// refresh swaps in a freshly rendered chart. A reload or render failure keeps
// the last good chart on screen and shows the error next to it.
func (p *ChartPage) refresh() {
	chart, err := p.reload()
	if err != nil {
		p.setError(err)
		return
	}
	svg, err := render.SVG(chart)
	if err != nil {
		p.setError(err)
		return
	}

	p.mu.Lock()
	p.svg = template.HTML(svg)
	p.err = ""
	p.mu.Unlock()
}

func (p *ChartPage) setError(err error) {
	log.Printf("couldn't refresh chart: %s", err)
	p.mu.Lock()
	p.err = err.Error()
	p.mu.Unlock()
}
