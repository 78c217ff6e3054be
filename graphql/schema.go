// Package graphql exposes a loaded file through a GraphQL query schema.
package graphql

import (
	"context"
	"errors"

	gql "github.com/graphql-go/graphql"

	"github.com/boynton/step"
	"github.com/boynton/step/internal/ctxlog"
)

// index numbers items the way the by-reference writer does.
type index struct {
	file    *step.File
	ordered []step.Item
	ids     map[step.Item]int
	top     map[step.Item]bool
}

func newIndex(f *step.File) *index {
	ix := &index{
		file:    f,
		ordered: f.OrderedItems(),
		ids:     make(map[step.Item]int),
		top:     make(map[step.Item]bool),
	}
	for i, item := range ix.ordered {
		ix.ids[item] = i + 1
	}
	for _, item := range f.TopLevelItems() {
		ix.top[item] = true
	}
	return ix
}

func (ix *index) header() map[string]interface{} {
	f := ix.file
	return map[string]interface{}{
		"description":         f.Description,
		"implementationLevel": f.ImplementationLevel,
		"name":                f.Name,
		"timestamp":           step.FormatTimestamp(f.Timestamp),
		"author":              f.Author,
		"organization":        f.Organization,
		"preprocessorVersion": f.PreprocessorVersion,
		"originatingSystem":   f.OriginatingSystem,
		"authorization":       f.Authorization,
	}
}

func (ix *index) items(args map[string]interface{}) []step.Item {
	keyword, filterKeyword := args["keyword"].(string)
	topLevel, filterTop := args["topLevel"].(bool)
	result := []step.Item{}
	for _, item := range ix.ordered {
		if filterKeyword && item.Keyword() != keyword {
			continue
		}
		if filterTop && ix.top[item] != topLevel {
			continue
		}
		result = append(result, item)
	}
	return result
}

func (ix *index) item(id int) step.Item {
	if id < 1 || id > len(ix.ordered) {
		return nil
	}
	return ix.ordered[id-1]
}

func itemField(resolve func(step.Item) interface{}) gql.FieldResolveFn {
	return func(p gql.ResolveParams) (interface{}, error) {
		item, ok := p.Source.(step.Item)
		if !ok {
			return nil, nil
		}
		return resolve(item), nil
	}
}

var headerFields = []string{
	"description", "implementationLevel", "name", "timestamp", "author",
	"organization", "preprocessorVersion", "originatingSystem", "authorization",
}

// NewSchema builds the query schema for f. The file must not be modified while
// the schema is in use.
func NewSchema(f *step.File) (gql.Schema, error) {
	ix := newIndex(f)

	headerConfig := gql.Fields{}
	for _, name := range headerFields {
		headerConfig[name] = &gql.Field{Type: gql.String}
	}
	headerType := gql.NewObject(gql.ObjectConfig{Name: "Header", Fields: headerConfig})

	itemType := gql.NewObject(gql.ObjectConfig{
		Name: "Item",
		Fields: gql.Fields{
			"id": &gql.Field{
				Type:    gql.NewNonNull(gql.Int),
				Resolve: itemField(func(item step.Item) interface{} { return ix.ids[item] }),
			},
			"keyword": &gql.Field{
				Type:    gql.NewNonNull(gql.String),
				Resolve: itemField(func(item step.Item) interface{} { return item.Keyword() }),
			},
			"name": &gql.Field{
				Type:    gql.String,
				Resolve: itemField(func(item step.Item) interface{} { return item.Name() }),
			},
			"topLevel": &gql.Field{
				Type:    gql.NewNonNull(gql.Boolean),
				Resolve: itemField(func(item step.Item) interface{} { return ix.top[item] }),
			},
		},
	})
	itemType.AddFieldConfig("references", &gql.Field{
		Type:    gql.NewList(itemType),
		Resolve: itemField(func(item step.Item) interface{} { return item.ReferencedItems() }),
	})

	queryType := gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"header": &gql.Field{
				Type: headerType,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return ix.header(), nil
				},
			},
			"schemas": &gql.Field{
				Type: gql.NewList(gql.String),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return append(f.Schemas.Names(), f.UnsupportedSchemas...), nil
				},
			},
			"items": &gql.Field{
				Type: gql.NewList(itemType),
				Args: gql.FieldConfigArgument{
					"keyword":  &gql.ArgumentConfig{Type: gql.String},
					"topLevel": &gql.ArgumentConfig{Type: gql.Boolean},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return ix.items(p.Args), nil
				},
			},
			"item": &gql.Field{
				Type: itemType,
				Args: gql.FieldConfigArgument{
					"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Int)},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(int)
					if item := ix.item(id); item != nil {
						return item, nil
					}
					return nil, nil
				},
			},
		},
	})
	return gql.NewSchema(gql.SchemaConfig{Query: queryType})
}

// Query runs a query against f and returns the result data. Query errors are
// joined into the returned error.
func Query(ctx context.Context, f *step.File, query string, vars map[string]interface{}) (interface{}, error) {
	schema, err := NewSchema(f)
	if err != nil {
		return nil, err
	}
	return execute(ctx, schema, query, vars)
}

func execute(ctx context.Context, schema gql.Schema, query string, vars map[string]interface{}) (interface{}, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("executing query", "length", len(query))
	result := gql.Do(gql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: vars,
		Context:        ctx,
	})
	if len(result.Errors) > 0 {
		errs := make([]error, 0, len(result.Errors))
		for _, e := range result.Errors {
			errs = append(errs, errors.New(e.Message))
		}
		logger.Debug("query failed", "errors", len(errs))
		return result.Data, errors.Join(errs...)
	}
	return result.Data, nil
}
