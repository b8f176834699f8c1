// Package parser converts OpenAPI 2.0 (Swagger) documents into the
// intermediate representation defined by package ir.
//
// # Quick Start
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("petstore.json"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, v := range result.Violations {
//		fmt.Println(v)
//	}
//	fmt.Println(result.Service.Title.Value)
//
// Or use a reusable Parser instance:
//
//	p := parser.New()
//	p.Logger = parser.NewSlogAdapter(slog.Default())
//	result, err := p.Parse("petstore.yaml")
//
// # Conversion
//
// Every operation under paths becomes an ir.Method. Methods are grouped into
// an ir.Interface named after the operation's first tag, or the first path
// segment when it has none, singularized. Each interface also carries the HTTP
// binding of its methods: path template, verb, parameter locations, array
// encodings and an inferred success status code.
//
// Object schemas under definitions become named ir.Type values. Inline object
// schemas become anonymous types named from their position, for example the
// inline response of operation listPets becomes listPetsResponse. Inline
// string enums become ir.Enum values named the same way.
//
// Schema constraints are reported as validation rules. Constraints on the
// items of an array are reported on the array itself.
//
// # Errors
//
// A document that cannot be converted yields no result and one of the typed
// errors in package oaserrors: a ParseError for unreadable input or a missing
// info section, a ReferenceError for a $ref that does not resolve, and a
// ShapeError for a node whose shape does not fit its position.
//
// Problems that do not prevent conversion are returned as
// Result.Violations: malformed x-codegen-enum-description and
// x-codegen-enum-value-descriptions extensions, and synthesized type names
// shared by structurally different schemas.
//
// # Concurrency
//
// A Parser holds configuration only. All state of a conversion lives in a
// per-call context, so one Parser may be used from many goroutines.
package parser
