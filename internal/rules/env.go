package rules

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/moshehbenavraham/luminaris-quest-sub000/internal/engine"
)

// DefaultVulnerableWhen is the CEL form of engine.DefaultThresholds.
const DefaultVulnerableWhen = "lp < 3 || health * 100 < max_health * 30"

// Registry manages the CEL environment encounter rules are compiled in.
type Registry struct {
	env *cel.Env
}

// NewRegistry initializes the CEL environment with the encounter variables
// and helper functions.
func NewRegistry() (*Registry, error) {
	opts := make([]cel.EnvOption, 0, len(intVariables)+1)
	for _, name := range intVariables {
		opts = append(opts, cel.Variable(name, cel.IntType))
	}
	opts = append(opts,
		cel.Variable("skip_next_turn", cel.BoolType),
		cel.Variable("enemy_id", cel.StringType),
		cel.Variable("enemy_category", cel.StringType),
		cel.Function("percent",
			cel.Overload("percent_int_int",
				[]*cel.Type{cel.IntType, cel.IntType},
				cel.IntType,
				cel.BinaryBinding(func(part, whole ref.Val) ref.Val {
					w := whole.Value().(int64)
					if w <= 0 {
						return types.Int(0)
					}
					return types.Int(part.Value().(int64) * 100 / w)
				}),
			),
		),
	)
	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, err
	}
	return &Registry{env: env}, nil
}

// Predicate is a compiled boolean rule over an encounter session.
type Predicate struct {
	expr string
	prog cel.Program
}

// Compile checks that expression is a valid boolean rule.
func (r *Registry) Compile(expression string) (*Predicate, error) {
	ast, iss := r.env.Compile(expression)
	if iss.Err() != nil {
		return nil, fmt.Errorf("compile %q: %w", expression, iss.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("compile %q: rule must evaluate to bool, got %s", expression, ast.OutputType())
	}
	prog, err := r.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", expression, err)
	}
	return &Predicate{expr: expression, prog: prog}, nil
}

// Eval executes a CEL expression against the provided context.
func (r *Registry) Eval(expression string, context map[string]any) (any, error) {
	ast, iss := r.env.Compile(expression)
	if iss.Err() != nil {
		return nil, iss.Err()
	}
	prog, err := r.env.Program(ast)
	if err != nil {
		return nil, err
	}
	out, _, err := prog.Eval(context)
	if err != nil {
		return nil, err
	}
	return out.Value(), nil
}

// String returns the source expression.
func (p *Predicate) String() string {
	return p.expr
}

// Eval evaluates the rule against s.
func (p *Predicate) Eval(s engine.Session) (bool, error) {
	out, _, err := p.prog.Eval(ContextFromSession(s))
	if err != nil {
		return false, fmt.Errorf("eval %q: %w", p.expr, err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("eval %q: result %v is not a bool", p.expr, out.Value())
	}
	return b, nil
}

// VulnerabilityFunc adapts the predicate for the decision engine. Evaluation
// errors fall back to the default thresholds and are reported to onError when
// it is set.
func (p *Predicate) VulnerabilityFunc(onError func(error)) engine.VulnerabilityFunc {
	fallback := engine.DefaultThresholds()
	return func(s engine.Session) bool {
		v, err := p.Eval(s)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return fallback.Vulnerable(s)
		}
		return v
	}
}
