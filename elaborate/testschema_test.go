package elaborate_test

import (
	"github.com/lattice-gql/qcore/schema"
	"github.com/lattice-gql/qcore/value"
)

// buildTestSchema mirrors example/starwars's hand-built schema, kept
// minimal for the phase-by-phase tests in this package.
func buildTestSchema() *schema.Schema {
	s := schema.NewSchema()

	idType := schema.NewTypeRef("ID")
	stringType := schema.NewTypeRef("String")
	intType := schema.NewTypeRef("Int")
	boolType := schema.NewTypeRef("Boolean")
	episodeType := schema.NewTypeRef("Episode")
	humanType := schema.NewTypeRef("Human")
	droidType := schema.NewTypeRef("Droid")
	queryType := schema.NewTypeRef("Query")

	s.AddType(&schema.TypeDef{Name: "ID", Kind: schema.Scalar})
	s.AddType(&schema.TypeDef{Name: "String", Kind: schema.Scalar})
	s.AddType(&schema.TypeDef{Name: "Int", Kind: schema.Scalar})
	s.AddType(&schema.TypeDef{Name: "Boolean", Kind: schema.Scalar})
	s.AddType(&schema.TypeDef{Name: "Episode", Kind: schema.Enum, Values: []string{"NEWHOPE", "EMPIRE", "JEDI"}})

	s.AddType(&schema.TypeDef{
		Name: "Human",
		Kind: schema.Object,
		Fields: map[string]*schema.FieldDef{
			"id":         {Name: "id", Type: idType},
			"name":       {Name: "name", Type: stringType},
			"homePlanet": {Name: "homePlanet", Type: stringType},
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
				Args: []schema.InputValue{
					schema.Arg("id", idType),
					schema.ArgWithDefault("verbose", boolType, value.Boolean(false)),
				},
			},
			"droid": {Name: "droid", Type: droidType, Args: []schema.InputValue{schema.Arg("id", idType)}},
			"count": {Name: "count", Type: intType},
		},
	})

	s.SetRoot(schema.Query, queryType.Name())
	return s
}
