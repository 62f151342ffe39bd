package filter

import (
	"context"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/hupe1980/resnav/internal/catalog"
)

// exprEnv is the evaluation environment exposed to advanced filter
// expressions, one resource at a time.
type exprEnv struct {
	ID          string   `expr:"id"`
	Title       string   `expr:"title"`
	URL         string   `expr:"url"`
	Description string   `expr:"description"`
	Theme       string   `expr:"theme"`
	Barriers    []string `expr:"barriers"`
	Personas    []string `expr:"personas"`
}

// ExprFilter keeps resources for which a compiled boolean expression
// evaluates to true. It backs the query command's --expr flag for ad-hoc
// predicates beyond the built-in selection dimensions, e.g.:
//
//	len(barriers) > 1 && "Project" in personas
//	title startsWith "Data"
type ExprFilter struct {
	source  string
	program *vm.Program
}

// NewExprFilter compiles a boolean filter expression. Compilation errors
// are reported here, so Apply only fails on runtime evaluation errors.
func NewExprFilter(expression string) (*ExprFilter, error) {
	program, err := expr.Compile(expression, expr.Env(exprEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling filter expression: %w", err)
	}

	return &ExprFilter{source: expression, program: program}, nil
}

// Apply evaluates the expression against each resource.
func (f *ExprFilter) Apply(_ context.Context, resources []catalog.Resource) (*Result, error) {
	r := NewResult()

	for _, res := range resources {
		env := exprEnv{
			ID:          res.ID,
			Title:       res.Title,
			URL:         res.URL,
			Description: res.Description,
			Theme:       res.ThemeID,
			Barriers:    res.BarrierIDs,
			Personas:    res.Personas,
		}

		out, err := expr.Run(f.program, env)
		if err != nil {
			return nil, fmt.Errorf("evaluating filter expression against resource %q: %w", res.ID, err)
		}

		if pass, ok := out.(bool); ok && pass {
			r.Included = append(r.Included, res)
		} else {
			r.Excluded = append(r.Excluded, ExcludedResource{
				Resource: res,
				Reason:   fmt.Sprintf("expression %q is false", f.source),
			})
		}
	}

	return r, nil
}
