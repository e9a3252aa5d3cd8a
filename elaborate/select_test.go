package elaborate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-gql/qcore/plan"
	"github.com/lattice-gql/qcore/result"
	"github.com/lattice-gql/qcore/schema"
	"github.com/lattice-gql/qcore/value"
)

func testSchema() *schema.Schema {
	s := schema.NewSchema()
	idType := schema.NewTypeRef("ID")
	stringType := schema.NewTypeRef("String")

	s.AddType(&schema.TypeDef{Name: "ID", Kind: schema.Scalar})
	s.AddType(&schema.TypeDef{Name: "String", Kind: schema.Scalar})
	s.AddType(&schema.TypeDef{
		Name: "Human",
		Kind: schema.Object,
		Fields: map[string]*schema.FieldDef{
			"id":   {Name: "id", Type: idType},
			"name": {Name: "name", Type: stringType},
		},
	})
	s.AddType(&schema.TypeDef{
		Name: "Query",
		Kind: schema.Object,
		Fields: map[string]*schema.FieldDef{
			"human": {Name: "human", Type: schema.NewTypeRef("Human"), Args: []schema.InputValue{schema.Arg("id", idType)}},
		},
	})
	s.SetRoot(schema.Query, "Query")
	return s
}

func TestElaborateOneSelectUnknownField(t *testing.T) {
	cfg := Config{Schema: testSchema()}.WithDefaults()
	n := plan.Select{FieldName: "bogus", Child: plan.Empty}
	out := elaborateOneSelect(n, schema.NewTypeRef("Query"), cfg)
	assert.True(t, out.IsFailure())
	assert.Equal(t, "UnknownField", out.Problems()[0].Kind.String())
}

func TestElaborateOneSelectUnknownArgument(t *testing.T) {
	cfg := Config{Schema: testSchema()}.WithDefaults()
	n := plan.Select{FieldName: "human", Args: value.Bindings{{Name: "bogus", Value: value.Int(1)}}, Child: plan.Select{FieldName: "name", Child: plan.Empty}}
	out := elaborateOneSelect(n, schema.NewTypeRef("Query"), cfg)
	require.False(t, out.IsFailure())
	assert.Equal(t, "UnknownArgument", out.Problems()[0].Kind.String())
}

func TestElaborateOneSelectLeafSubselection(t *testing.T) {
	cfg := Config{Schema: testSchema()}.WithDefaults()
	n := plan.Select{FieldName: "name", Child: plan.Select{FieldName: "bogus", Child: plan.Empty}}
	out := elaborateOneSelect(n, schema.NewTypeRef("Human"), cfg)
	require.False(t, out.IsFailure())
	assert.Equal(t, "LeafSubselection", out.Problems()[0].Kind.String())
}

func TestElaborateOneSelectNonLeafSubselection(t *testing.T) {
	cfg := Config{Schema: testSchema()}.WithDefaults()
	n := plan.Select{FieldName: "human", Child: plan.Empty}
	out := elaborateOneSelect(n, schema.NewTypeRef("Query"), cfg)
	require.False(t, out.IsFailure())
	assert.Equal(t, "NonLeafSubselection", out.Problems()[0].Kind.String())
}

func TestElaborateOneSelectSkipsIntrospectionMetaFields(t *testing.T) {
	cfg := Config{Schema: testSchema()}.WithDefaults()
	n := plan.Select{FieldName: "__typename", Child: plan.Empty}
	out := elaborateOneSelect(n, schema.NewTypeRef("Human"), cfg)
	require.False(t, out.IsFailure())
	assert.Empty(t, out.Problems())
}

func TestElaborateOneSelectAppliesRegisteredRewrite(t *testing.T) {
	cfg := Config{
		Schema: testSchema(),
		Selects: NewSelectElaborator().On(schema.NewTypeRef("Human"), func(sel plan.Select, tpe schema.TypeRef) *result.Result[plan.Query] {
			sel.FieldName = "rewritten"
			return result.Success[plan.Query](sel)
		}),
	}.WithDefaults()

	n := plan.Select{FieldName: "human", Child: plan.Select{FieldName: "name", Child: plan.Empty}}
	out := elaborateOneSelect(n, schema.NewTypeRef("Query"), cfg)
	require.False(t, out.IsFailure())
	got := out.ValueOrZero().(plan.Select)
	assert.Equal(t, "rewritten", got.FieldName)
}
