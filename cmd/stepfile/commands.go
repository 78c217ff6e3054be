package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/boynton/step"
	"github.com/boynton/step/export"
	"github.com/boynton/step/graphql"
	"github.com/boynton/step/internal/ctxlog"
	"github.com/boynton/step/parse"
	"github.com/boynton/step/source"
	"github.com/boynton/step/util"
)

// annotatedError carries the rendered source excerpt of a located error.
type annotatedError struct {
	text string
	err  error
}

func (e *annotatedError) Error() string { return e.text }
func (e *annotatedError) Unwrap() error { return e.err }

// load reads and parses location. The second result lists the keywords that
// were skipped.
func (e *env) load(location string) (*step.File, []string, error) {
	in, err := source.Open(e.ctx, location)
	if err != nil {
		return nil, nil, err
	}
	defer in.Close()
	raw, err := io.ReadAll(in)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", location, err)
	}
	reader := &step.Reader{Registry: step.DefaultRegistry, Logger: ctxlog.FromContext(e.ctx)}
	file, err := reader.Read(bytes.NewReader(raw))
	if err != nil {
		return nil, nil, &annotatedError{text: parse.Annotate(location, string(raw), err, parse.RED, 2), err: err}
	}
	return file, reader.Unsupported(), nil
}

func (e *env) check(locations []string) error {
	failed := 0
	for _, location := range locations {
		file, unsupported, err := e.load(location)
		if err != nil {
			fmt.Fprintln(e.stderr, err)
			failed++
			continue
		}
		fmt.Fprintf(e.stdout, "%s: %d items, %d top-level\n", location, len(file.Items), len(file.TopLevelItems()))
		if len(unsupported) > 0 {
			fmt.Fprintf(e.stdout, "  skipped: %s\n", strings.Join(unsupported, ", "))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(locations))
	}
	return nil
}

func (e *env) format(location, output string, inline bool) error {
	file, _, err := e.load(location)
	if err != nil {
		return err
	}
	e.config.ApplyHeaderDefaults(file)
	if file.Name == "" && location != source.Stdio {
		file.Name = util.BaseFileName(location)
	}
	out, err := source.Create(e.ctx, output)
	if err != nil {
		return err
	}
	if err := file.Save(out, inline || e.config.Inline); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func (e *env) top(location string) error {
	file, _, err := e.load(location)
	if err != nil {
		return err
	}
	ids := make(map[step.Item]int)
	for i, item := range file.OrderedItems() {
		ids[item] = i + 1
	}
	for _, item := range file.TopLevelItems() {
		fmt.Fprintf(e.stdout, "#%d\t%s\t%s\n", ids[item], item.Keyword(), step.QuoteString(item.Name()))
	}
	return nil
}

func (e *env) dump(location, format string) error {
	file, _, err := e.load(location)
	if err != nil {
		return err
	}
	doc := export.Graph(file)
	var raw []byte
	switch format {
	case "json":
		raw, err = export.JSON(doc)
		raw = append(raw, '\n')
	case "yaml":
		raw, err = export.YAML(doc)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return err
	}
	_, err = e.stdout.Write(raw)
	return err
}

func (e *env) query(location, query string) error {
	file, _, err := e.load(location)
	if err != nil {
		return err
	}
	data, err := graphql.Query(e.ctx, file, query, nil)
	if err != nil {
		return err
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, string(raw))
	return nil
}
