package parser

import (
	"github.com/Masterminds/semver/v3"

	"github.com/erraggy/oas2ir/internal/naming"
	"github.com/erraggy/oas2ir/ir"
	"github.com/erraggy/oas2ir/oaserrors"
)

// service converts the whole document. Interfaces are assembled before the
// definitions, and anonymous types follow the definitions.
func (c *runContext) service() (*ir.Service, error) {
	if !c.root.IsObject() {
		return nil, &oaserrors.ParseError{Path: c.sourcePath, Message: "document root is not an object"}
	}
	if swagger := c.doc.Swagger(); swagger == nil || swagger.Value != "2.0" {
		c.log.Warn("document does not declare swagger 2.0; converting anyway")
	}

	info := c.doc.Info()
	if info == nil {
		return nil, &oaserrors.ParseError{Path: c.sourcePath, Message: "missing info object"}
	}
	title := info.Title()
	if title == nil {
		return nil, c.fieldError(info.Range().Start.Line, info.Range().Start.Column, "missing info.title", nil)
	}
	version := info.Version()
	if version == nil {
		return nil, c.fieldError(info.Range().Start.Line, info.Range().Start.Column, "missing info.version", nil)
	}
	v, err := semver.NewVersion(version.Value)
	if err != nil {
		start := version.Range().Start
		return nil, c.fieldError(start.Line, start.Column, "info.version is not a semantic version", err)
	}

	interfaces, err := c.interfaces()
	if err != nil {
		return nil, err
	}
	if interfaces == nil {
		interfaces = make([]*ir.Interface, 0)
	}
	definitions, err := c.definitions()
	if err != nil {
		return nil, err
	}

	return &ir.Service{
		Basketry:     ir.Version,
		SourcePath:   c.sourcePath,
		Title:        ir.Lit(naming.ToPascalCase(title.Value), title.Range()),
		MajorVersion: ir.Lit(int(v.Major()), version.Range()),
		Interfaces:   interfaces,
		Types:        c.uniqueTypes(append(definitions, c.types...)),
		Enums:        c.uniqueEnums(c.enums),
		Unions:       make([]*ir.Union, 0),
		Loc:          c.root.Range.Encode(),
		Meta:         meta(c.doc),
	}, nil
}

func (c *runContext) fieldError(line, column int, msg string, cause error) error {
	return &oaserrors.ParseError{Path: c.sourcePath, Line: line, Column: column, Message: msg, Cause: cause}
}
