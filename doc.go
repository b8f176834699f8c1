// Package oas2ir converts OpenAPI 2.0 (Swagger) documents into a
// language-neutral intermediate representation of a service.
//
// # Overview
//
// The IR describes interfaces (operations grouped by tag or leading path
// segment) with their methods, parameters, return types, security options
// and HTTP bindings, plus the object types and string enums the operations
// use. Every value read from the document is a literal that carries the
// encoded source range it came from, so downstream generators can point back
// at the document when reporting problems.
//
// The module is split into small packages:
//
//   - ast: a source-located JSON/YAML tree with line, column and offset ranges
//   - oas2: typed, classifying accessors over the tree for OpenAPI 2.0 nodes
//   - ir: the IR entities and their JSON encoding
//   - parser: the converter (type inference, validation rules, security,
//     interface assembly) and its options
//   - oaserrors: typed fatal errors with sentinel values for errors.Is
//
// # Quick Start
//
//	import "github.com/erraggy/oas2ir/parser"
//
//	result, err := parser.New().Parse("petstore.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, v := range result.Violations {
//		fmt.Println(v)
//	}
//	data, _ := json.MarshalIndent(result.Service, "", "  ")
//
// Options give finer control:
//
//	result, err := parser.ParseWithOptions(
//		parser.WithReader(os.Stdin),
//		parser.WithSourcePath("api/petstore.json"),
//		parser.WithLogger(parser.NewSlogAdapter(slog.Default())),
//		parser.WithCollisionDiagnostics(false),
//	)
//
// # Errors and Violations
//
// Problems that prevent a faithful conversion (unreadable input, missing
// info, unresolvable or circular references, nodes of the wrong shape) are
// returned as errors from the oaserrors package. Problems that only affect
// metadata are collected as violations on the result:
//
//   - swagger-2/codegen-enum-description
//   - swagger-2/codegen-enum-value-descriptions
//   - swagger-2/type-name-collision
//
// # Command Line and MCP
//
// The oas2ir command converts a file or stdin and can serve the converter
// as a Model Context Protocol tool over stdio:
//
//	oas2ir parse petstore.json -o petstore.ir.json
//	oas2ir mcp
package oas2ir
