package parser

// Options is the parser configuration. It is a plain value, not
// arena-allocated, and is immutable for the lifetime of a Parser.
type Options struct {
	// GFM is the master switch for GitHub Flavored Markdown extensions.
	GFM bool
	// Footnotes enables footnote definitions and references.
	Footnotes bool
	// TaskLists enables [ ]/[x] checkbox markers on list items.
	TaskLists bool
	// Tables enables pipe tables.
	Tables bool
	// Strikethrough enables ~~delete~~ spans.
	Strikethrough bool
	// Autolinks enables bare-URL autolinking.
	Autolinks bool
	// MaxNestingDepth caps block nesting. Zero means no limit.
	MaxNestingDepth int
}

// GFMOptions returns the GFM preset: every extension enabled and a
// nesting cap of 100.
func GFMOptions() Options {
	return Options{
		GFM:             true,
		Footnotes:       true,
		TaskLists:       true,
		Tables:          true,
		Strikethrough:   true,
		Autolinks:       true,
		MaxNestingDepth: 100,
	}
}

// tablesEnabled reports whether table parsing is on, either directly or
// through the GFM master switch.
func (o Options) tablesEnabled() bool {
	return o.Tables || o.GFM
}

// taskListsEnabled reports whether task-list parsing is on.
func (o Options) taskListsEnabled() bool {
	return o.TaskLists || o.GFM
}
