package graph

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
	"github.com/graphql-go/graphql/language/source"
)

// checkVariables rejects variable values whose JSON type does not match the
// declared scalar type. The built-in scalars coerce anything to a string, so
// {"q": 5} would otherwise reach a String! argument as "5".
//
// Documents that fail to parse, or where the operation cannot be picked, are
// left for graphql.Do to report.
func checkVariables(req Request) *graphql.Result {
	if len(req.Variables) == 0 {
		return nil
	}

	doc, err := parser.Parse(parser.ParseParams{
		Source: source.NewSource(&source.Source{Body: []byte(req.Query), Name: "GraphQL request"}),
	})
	if err != nil {
		return nil
	}

	op := selectOperation(doc, req.OperationName)
	if op == nil {
		return nil
	}

	var errs []gqlerrors.FormattedError
	for _, def := range op.VariableDefinitions {
		if def == nil || def.Variable == nil || def.Variable.Name == nil {
			continue
		}
		name := def.Variable.Name.Value
		value, ok := req.Variables[name]
		if !ok || value == nil {
			continue
		}
		if scalar, bad := mismatch(def.Type, value); bad != nil {
			errs = append(errs, gqlerrors.NewFormattedError(fmt.Sprintf(
				"Variable \"$%s\" got invalid value %s; %s cannot represent a non %s value: %s",
				name, render(value), scalar, scalarNoun(scalar), render(bad))))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return &graphql.Result{Errors: errs}
}

func selectOperation(doc *ast.Document, name string) *ast.OperationDefinition {
	var found *ast.OperationDefinition
	count := 0
	for _, node := range doc.Definitions {
		op, ok := node.(*ast.OperationDefinition)
		if !ok {
			continue
		}
		count++
		if name != "" && op.Name != nil && op.Name.Value == name {
			return op
		}
		found = op
	}
	if name == "" && count == 1 {
		return found
	}
	return nil
}

// mismatch walks t alongside value and returns the scalar name and the
// offending value at the first mismatch, or a nil value when everything fits.
func mismatch(t ast.Type, value interface{}) (string, interface{}) {
	if value == nil {
		return "", nil
	}

	switch typ := t.(type) {
	case *ast.NonNull:
		return mismatch(typ.Type, value)
	case *ast.List:
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			// A single value is accepted where a list is expected.
			return mismatch(typ.Type, value)
		}
		for i := 0; i < rv.Len(); i++ {
			if scalar, bad := mismatch(typ.Type, rv.Index(i).Interface()); bad != nil {
				return scalar, bad
			}
		}
		return "", nil
	case *ast.Named:
		if typ.Name == nil {
			return "", nil
		}
		if !scalarAccepts(typ.Name.Value, value) {
			return typ.Name.Value, value
		}
	}
	return "", nil
}

func scalarAccepts(scalar string, value interface{}) bool {
	switch scalar {
	case "String":
		_, ok := value.(string)
		return ok
	case "ID":
		if _, ok := value.(string); ok {
			return true
		}
		return isIntegral(value)
	case "Boolean":
		_, ok := value.(bool)
		return ok
	case "Int":
		return isIntegral(value)
	case "Float":
		return isNumber(value)
	}
	// Enums and input objects are checked by graphql.Do.
	return true
}

func isNumber(value interface{}) bool {
	switch reflect.ValueOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	_, ok := value.(json.Number)
	return ok
}

func isIntegral(value interface{}) bool {
	switch v := value.(type) {
	case float64:
		return v == math.Trunc(v) && !math.IsInf(v, 0)
	case float32:
		f := float64(v)
		return f == math.Trunc(f) && !math.IsInf(f, 0)
	case json.Number:
		_, err := v.Int64()
		return err == nil
	}
	return isNumber(value)
}

func scalarNoun(scalar string) string {
	switch scalar {
	case "String":
		return "string"
	case "ID":
		return "string or integer"
	case "Boolean":
		return "boolean"
	case "Int":
		return "integer"
	case "Float":
		return "numeric"
	}
	return scalar
}

func render(value interface{}) string {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(raw)
}
