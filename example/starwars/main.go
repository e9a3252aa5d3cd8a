// Command starwars exercises the full compile pipeline end to end
// against a small hand-built schema, the way the teacher's own
// example/main.go exercises schemabuilder against a chat schema: this
// one has no server loop, since execution is out of scope for this
// module (spec.md §1) — it compiles one operation, prints its rendered
// plan and any warnings, and runs the plan's effects through
// effect.ErrgroupHandler.
package main

import (
	"context"
	"fmt"

	"github.com/lattice-gql/qcore/effect"
	"github.com/lattice-gql/qcore/elaborate"
	"github.com/lattice-gql/qcore/internal/log"
	"github.com/lattice-gql/qcore/plan"
	"github.com/lattice-gql/qcore/predicate"
	"github.com/lattice-gql/qcore/result"
	"github.com/lattice-gql/qcore/schema"
	"github.com/lattice-gql/qcore/sqlmapping"
	"github.com/lattice-gql/qcore/value"

	qcore "github.com/lattice-gql/qcore"
)

func buildSchema() *schema.Schema {
	s := schema.NewSchema()

	idType := schema.NewTypeRef("ID")
	stringType := schema.NewTypeRef("String")
	episodeType := schema.NewTypeRef("Episode")
	humanType := schema.NewTypeRef("Human")
	droidType := schema.NewTypeRef("Droid")
	queryType := schema.NewTypeRef("Query")

	s.AddType(&schema.TypeDef{Name: "ID", Kind: schema.Scalar})
	s.AddType(&schema.TypeDef{Name: "String", Kind: schema.Scalar})
	s.AddType(&schema.TypeDef{Name: "Int", Kind: schema.Scalar})
	s.AddType(&schema.TypeDef{
		Name:   "Episode",
		Kind:   schema.Enum,
		Values: []string{"NEWHOPE", "EMPIRE", "JEDI"},
	})

	s.AddType(&schema.TypeDef{
		Name: "Human",
		Kind: schema.Object,
		Fields: map[string]*schema.FieldDef{
			"id":         {Name: "id", Type: idType},
			"name":       {Name: "name", Type: stringType},
			"homePlanet": {Name: "homePlanet", Type: stringType},
			"friends":    {Name: "friends", Type: humanType},
			"appearsIn":  {Name: "appearsIn", Type: episodeType},
		},
	})

	s.AddType(&schema.TypeDef{
		Name: "Droid",
		Kind: schema.Object,
		Fields: map[string]*schema.FieldDef{
			"id":              {Name: "id", Type: idType},
			"name":            {Name: "name", Type: stringType},
			"primaryFunction": {Name: "primaryFunction", Type: stringType},
		},
	})

	s.AddType(&schema.TypeDef{
		Name: "Query",
		Kind: schema.Object,
		Fields: map[string]*schema.FieldDef{
			"human": {
				Name: "human",
				Type: humanType,
				Args: []schema.InputValue{schema.Arg("id", idType)},
			},
			"droid": {
				Name: "droid",
				Type: droidType,
				Args: []schema.InputValue{schema.Arg("id", idType)},
			},
			"humans": {Name: "humans", Type: humanType},
		},
	})

	s.SetRoot(schema.Query, queryType.Name())
	return s
}

// selectHumanByID is registered against the Human type and fires for
// every Select resolving to Human; it only has work to do at the "human"
// root field, where the worked example from spec.md's design note
// applies: a single-row lookup by id becomes Unique(Filter(Eql(...))).
func selectHumanByID(sel plan.Select, tpe schema.TypeRef) *result.Result[plan.Query] {
	if sel.FieldName != "human" {
		return result.Success[plan.Query](sel)
	}
	idArg, ok := sel.Args.Lookup("id")
	if !ok {
		return result.Success[plan.Query](sel)
	}

	idField := predicate.Field([]string{"id"}, func(v value.Value) (value.Value, error) { return v, nil })
	idConst := predicate.Const(idArg, func(v value.Value) string { return v.Render() })
	pred := predicate.Eql(idField, idConst)

	inner := sel
	inner.Args = nil
	return result.Success[plan.Query](plan.Unique{Child: plan.Filter{Pred: pred, Child: inner}})
}

func buildComponents() *elaborate.ComponentElaborator {
	droids := sqlmapping.NewRoot().Add(sqlmapping.ObjectMapping{
		Type:  "Droid",
		Table: "droids",
		Columns: map[string]sqlmapping.FieldMapping{
			"id":              {Column: "id"},
			"name":            {Column: "name"},
			"primaryFunction": {Column: "primary_function"},
		},
	})
	mapping, _ := droids.SqlObject("Droid")

	return elaborate.NewComponentElaborator().Delegate(
		schema.NewTypeRef("Query"), "droid", mapping, nil,
	)
}

func buildConfig(s *schema.Schema) elaborate.Config {
	selects := elaborate.NewSelectElaborator().On(schema.NewTypeRef("Human"), selectHumanByID)
	return elaborate.Config{
		Schema:     s,
		Selects:    selects,
		Components: buildComponents(),
		Logger:     log.New(),
	}.WithDefaults()
}

func main() {
	s := buildSchema()
	cfg := buildConfig(s)

	query := `query HeroQuery($id: ID!) {
		human(id: $id) {
			name
			homePlanet
		}
		droid(id: "2001") {
			name
			primaryFunction
		}
	}`

	vars := map[string]value.Value{"id": value.ID{Raw: "1000"}}
	res := qcore.Compile(query, "HeroQuery", vars, cfg)

	op, ok := res.Value()
	if !ok {
		for _, p := range res.Problems() {
			fmt.Println(p.Error())
		}
		return
	}

	fmt.Println(plan.Render(op.Query))
	for _, p := range res.Problems() {
		fmt.Println("warning:", p.Error())
	}

	handler := &effect.ErrgroupHandler{
		Concurrency: 4,
		Run: func(ctx context.Context, req effect.EffectRequest) (effect.EffectResponse, error) {
			return effect.EffectResponse{Query: req.Query, Cursor: req.Cursor}, nil
		},
	}
	requests := []effect.EffectRequest{{Query: op.Query}}
	responses, err := handler.RunEffects(context.Background(), requests)
	if err != nil {
		fmt.Println("effect error:", err)
		return
	}
	fmt.Printf("ran %d effect request(s) via %s\n", len(responses.ValueOrZero()), handler.Name())
}
