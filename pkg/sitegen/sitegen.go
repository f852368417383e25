// Package sitegen turns a directory of Markdown files into a static
// HTML site with a client-side search index.
//
// A build discovers sources under the configured input dir, runs each
// through the arena parser and HTML renderer, wraps the fragment in a
// page shell, and writes outputs atomically so a served site is never
// half-updated. Alongside the pages it emits search-index.json, the
// serialized BM25 index over every page. Watch mode rebuilds on source
// changes.
package sitegen

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/inkwellmd/inkwell/internal/logging"
	"github.com/inkwellmd/inkwell/pkg/arena"
	"github.com/inkwellmd/inkwell/pkg/fsutil"
	"github.com/inkwellmd/inkwell/pkg/parser"
	"github.com/inkwellmd/inkwell/pkg/render/html"
	"github.com/inkwellmd/inkwell/pkg/search"
)

// IndexFileName is the search index emitted next to the pages.
const IndexFileName = "search-index.json"

// Result summarizes one build.
type Result struct {
	// Pages is the number of source files processed.
	Pages int
	// PagesWritten counts outputs that actually changed on disk.
	PagesWritten int
	// IndexDocs is the number of documents in the search index.
	IndexDocs int
	// Duration is the wall time of the build.
	Duration time.Duration
}

// Generator builds a site from one Config.
type Generator struct {
	cfg Config
}

// New creates a generator for cfg.
func New(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// Build generates the whole site once.
func (g *Generator) Build(ctx context.Context) (*Result, error) {
	logger := logging.FromContext(ctx)
	started := time.Now()

	files, err := fsutil.DiscoverMarkdown(g.cfg.InputDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("discovered sources",
		logging.FieldInput, g.cfg.InputDir,
		logging.FieldPages, len(files))

	pages, err := g.buildPages(ctx, files)
	if err != nil {
		return nil, err
	}

	nav := g.navigation(pages)

	result := &Result{Pages: len(pages)}
	for _, p := range pages {
		out, err := g.renderShell(p, nav)
		if err != nil {
			return nil, err
		}
		outPath := filepath.Join(g.cfg.OutputDir, p.outRel)
		if err := fsutil.EnsureDir(filepath.Dir(outPath)); err != nil {
			return nil, err
		}
		wrote, err := fsutil.WriteAtomicIfChanged(outPath, out, 0)
		if err != nil {
			return nil, fmt.Errorf("write %s: %w", outPath, err)
		}
		if wrote {
			result.PagesWritten++
		}
	}

	indexDocs, err := g.writeSearchIndex(pages)
	if err != nil {
		return nil, err
	}
	result.IndexDocs = indexDocs
	result.Duration = time.Since(started)

	logger.Info("site built",
		logging.FieldOutput, g.cfg.OutputDir,
		logging.FieldPages, result.Pages,
		logging.FieldPagesWritten, result.PagesWritten,
		logging.FieldIndexDocs, result.IndexDocs,
		logging.FieldDuration, result.Duration)
	return result, nil
}

// pageOutcome carries one worker result back to the collector.
type pageOutcome struct {
	idx  int
	page *page
	err  error
}

// buildPages parses and renders every source concurrently. Each worker
// owns one arena and resets it between pages; results are collected
// back into source order.
func (g *Generator) buildPages(ctx context.Context, files []string) ([]*page, error) {
	if len(files) == 0 {
		return nil, nil
	}

	jobs := g.cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan int)
	outCh := make(chan pageOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a := arena.New()
			for idx := range workCh {
				select {
				case <-ctx.Done():
					return
				default:
				}
				a.Reset()
				p, err := g.buildPage(a, files[idx])
				outCh <- pageOutcome{idx: idx, page: p, err: err}
			}
		}()
	}

	go func() {
		defer close(workCh)
		for idx := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- idx:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	pages := make([]*page, len(files))
	var firstErr error
	for outcome := range outCh {
		if outcome.err != nil {
			if firstErr == nil {
				firstErr = outcome.err
			}
			continue
		}
		pages[outcome.idx] = outcome.page
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("build cancelled: %w", err)
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return pages, nil
}

// page is one processed source file.
type page struct {
	// rel is the source path relative to the input dir.
	rel string
	// outRel is the output path relative to the output dir.
	outRel string
	// url is the page's served URL under the base URL.
	url string
	// title is the first level-one heading, falling back to the
	// file name.
	title    string
	fragment string
	doc      search.Document
}

func (g *Generator) buildPage(a *arena.Arena, rel string) (*page, error) {
	source, err := os.ReadFile(filepath.Join(g.cfg.InputDir, rel))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rel, err)
	}

	doc, err := parser.NewWithOptions(a, string(source), parser.GFMOptions()).Parse()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", rel, err)
	}

	opts := html.DefaultOptions()
	opts.DetectLanguage = g.cfg.DetectLanguage
	fragment := html.NewWithOptions(opts).Render(doc)

	extractor := search.NewExtractor()
	extractor.Extract(doc)

	outRel := strings.TrimSuffix(rel, filepath.Ext(rel)) + ".html"
	url := g.cfg.BaseURL + filepath.ToSlash(outRel)

	title := extractor.Title()
	if title == "" {
		base := filepath.Base(rel)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return &page{
		rel:      rel,
		outRel:   outRel,
		url:      url,
		title:    title,
		fragment: fragment,
		doc:      extractor.Document(filepath.ToSlash(rel), url),
	}, nil
}

// navigation resolves the configured nav against the built pages, or
// derives one entry per page when no nav is configured.
func (g *Generator) navigation(pages []*page) []NavItem {
	if len(g.cfg.Nav) > 0 {
		return g.cfg.Nav
	}
	nav := make([]NavItem, 0, len(pages))
	for _, p := range pages {
		nav = append(nav, NavItem{Title: p.title, Path: p.rel})
	}
	return nav
}

func (g *Generator) renderShell(p *page, nav []NavItem) ([]byte, error) {
	links := make([]navLink, 0, len(nav))
	for _, item := range nav {
		outRel := strings.TrimSuffix(item.Path, filepath.Ext(item.Path)) + ".html"
		links = append(links, navLink{
			Title:  item.Title,
			Href:   g.cfg.BaseURL + filepath.ToSlash(outRel),
			Active: filepath.ToSlash(item.Path) == filepath.ToSlash(p.rel),
		})
	}

	var sb strings.Builder
	err := pageShell.Execute(&sb, pageData{
		SiteTitle: g.cfg.Title,
		Title:     p.title,
		BaseURL:   g.cfg.BaseURL,
		Nav:       links,
		Content:   template.HTML(p.fragment),
	})
	if err != nil {
		return nil, fmt.Errorf("render page %s: %w", p.rel, err)
	}
	return []byte(sb.String()), nil
}

func (g *Generator) writeSearchIndex(pages []*page) (int, error) {
	builder := search.NewBuilder()
	for _, p := range pages {
		builder.Add(p.doc)
	}
	idx := builder.Build()

	data, err := idx.ToJSON()
	if err != nil {
		return 0, fmt.Errorf("serialize search index: %w", err)
	}

	if err := fsutil.EnsureDir(g.cfg.OutputDir); err != nil {
		return 0, err
	}
	path := filepath.Join(g.cfg.OutputDir, IndexFileName)
	if _, err := fsutil.WriteAtomicIfChanged(path, data, 0); err != nil {
		return 0, fmt.Errorf("write search index: %w", err)
	}
	return idx.Len(), nil
}
