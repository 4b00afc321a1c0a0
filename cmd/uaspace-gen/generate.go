// Copyright 2021 Converter Systems LLC. All rights reserved.

package main

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"text/template"
	"time"

	"github.com/awcullen/uaspace/nodeset"
	"github.com/awcullen/uaspace/ua"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/tools/imports"
)

var tmplDescription = template.Must(template.New("").Funcs(template.FuncMap{
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
	"join":  strings.Join,
}).Parse(`// Code generated by uaspace-gen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import (
	"time"

	"github.com/awcullen/uaspace/nodeset"
	"github.com/awcullen/uaspace/ua"
	"github.com/google/uuid"
)

// Description returns the nodes of {{.Source}}.
func Description() *nodeset.Description {
	return &nodeset.Description{
		NamespaceURIs: []string{ {{- range .NamespaceURIs}}{{quote .}}, {{end -}} },
		Nodes: []*nodeset.Node{
{{- range .Nodes}}
			{
				NodeClass:  {{.Class}},
				NodeID:     {{.NodeID}},
				BrowseName: {{.BrowseName}},
{{- if .DisplayNames}}
				DisplayNames: []ua.LocalizedText{ {{- join .DisplayNames ", " -}} },
{{- end}}
{{- if .Descriptions}}
				Descriptions: []ua.LocalizedText{ {{- join .Descriptions ", " -}} },
{{- end}}
{{- if .References}}
				References: []nodeset.Reference{
{{- range .References}}
					{{.}},
{{- end}}
				},
{{- end}}
{{- if .Value}}
				Value: {{.Value}},
{{- end}}
{{- if .DataType}}
				DataType: {{.DataType}},
{{- end}}
{{- if .ValueRank}}
				ValueRank: {{.ValueRank}},
{{- end}}
{{- if .AccessLevel}}
				AccessLevel: {{.AccessLevel}},
{{- end}}
{{- if .IsAbstract}}
				IsAbstract: true,
{{- end}}
{{- if .Symmetric}}
				Symmetric: true,
{{- end}}
{{- if .InverseName}}
				InverseName: {{.InverseName}},
{{- end}}
{{- if .EventNotifier}}
				EventNotifier: {{.EventNotifier}},
{{- end}}
{{- if .Executable}}
				Executable: true,
{{- end}}
{{- if .ContainsNoLoops}}
				ContainsNoLoops: true,
{{- end}}
{{- if .ParentNodeID}}
				ParentNodeID: {{.ParentNodeID}},
{{- end}}
			},
{{- end}}
		},
	}
}
`))

type goFile struct {
	Package       string
	Source        string
	NamespaceURIs []string
	Nodes         []goNode
}

// goNode holds the Go expressions of the fields of a nodeset.Node. Empty fields are omitted.
type goNode struct {
	Class           string
	NodeID          string
	BrowseName      string
	DisplayNames    []string
	Descriptions    []string
	References      []string
	Value           string
	DataType        string
	ValueRank       int32
	AccessLevel     byte
	IsAbstract      bool
	Symmetric       bool
	InverseName     string
	EventNotifier   byte
	Executable      bool
	ContainsNoLoops bool
	ParentNodeID    string
}

// generateGo returns Go source of a function returning the description.
func generateGo(d *nodeset.Description, pkg, source string) (string, error) {
	data := goFile{
		Package:       pkg,
		Source:        filepath.Base(source),
		NamespaceURIs: d.NamespaceURIs,
		Nodes:         make([]goNode, 0, len(d.Nodes)),
	}
	for _, n := range d.Nodes {
		g := goNode{
			Class:           "ua.NodeClass" + n.NodeClass.String(),
			NodeID:          nodeIDExpr(n.NodeID),
			BrowseName:      fmt.Sprintf("ua.NewQualifiedName(%d, %q)", n.BrowseName.NamespaceIndex, n.BrowseName.Name),
			DisplayNames:    localizedTextExprs(n.DisplayNames),
			Descriptions:    localizedTextExprs(n.Descriptions),
			ValueRank:       n.ValueRank,
			AccessLevel:     n.AccessLevel,
			IsAbstract:      n.IsAbstract,
			Symmetric:       n.Symmetric,
			EventNotifier:   n.EventNotifier,
			Executable:      n.Executable,
			ContainsNoLoops: n.ContainsNoLoops,
		}
		for _, r := range n.References {
			g.References = append(g.References, fmt.Sprintf("{ReferenceTypeID: %s, IsInverse: %t, TargetID: ua.ParseExpandedNodeID(%q)}",
				nodeIDExpr(r.ReferenceTypeID), r.IsInverse, r.TargetID.String()))
		}
		if !n.Value.IsNil() {
			v, err := variantExpr(n.Value)
			if err != nil {
				return "", errors.Wrapf(err, "node %s", n.NodeID)
			}
			g.Value = v
		}
		if !n.DataType.IsNil() {
			g.DataType = nodeIDExpr(n.DataType)
		}
		if n.InverseName != (ua.LocalizedText{}) {
			g.InverseName = localizedTextExpr(n.InverseName)
		}
		if !n.ParentNodeID.IsNil() {
			g.ParentNodeID = nodeIDExpr(n.ParentNodeID)
		}
		data.Nodes = append(data.Nodes, g)
	}

	var b bytes.Buffer
	if err := tmplDescription.Execute(&b, data); err != nil {
		return "", errors.Wrap(err, "error executing template")
	}
	return b.String(), nil
}

func nodeIDExpr(id ua.NodeID) string {
	return fmt.Sprintf("ua.ParseNodeID(%q)", id.String())
}

func localizedTextExpr(lt ua.LocalizedText) string {
	return fmt.Sprintf("ua.NewLocalizedText(%q, %q)", lt.Text, lt.Locale)
}

func localizedTextExprs(a []ua.LocalizedText) []string {
	if len(a) == 0 {
		return nil
	}
	exprs := make([]string, len(a))
	for i, lt := range a {
		exprs[i] = localizedTextExpr(lt)
	}
	return exprs
}

// variantExpr returns an expression building the variant with ua.MustVariant, which infers
// the built-in type from the Go type of the literal.
func variantExpr(v ua.Variant) (string, error) {
	if v.ArrayType() == ua.ArrayTypeSingleValue {
		e, err := scalarExpr(v.Value())
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("ua.MustVariant(%s)", e), nil
	}
	if v.ArrayType() != ua.ArrayTypeArray {
		return "", errors.Errorf("unsupported %s value", v.ArrayType())
	}
	rv := reflect.ValueOf(v.Value())
	exprs := make([]string, rv.Len())
	for i := range exprs {
		e, err := scalarExpr(rv.Index(i).Interface())
		if err != nil {
			return "", err
		}
		exprs[i] = e
	}
	return fmt.Sprintf("ua.MustVariant(%T{%s})", v.Value(), strings.Join(exprs, ", ")), nil
}

func scalarExpr(value interface{}) (string, error) {
	switch val := value.(type) {
	case bool:
		return fmt.Sprintf("%t", val), nil
	case int8, uint8, int16, uint16, int32, uint32, int64, uint64:
		return fmt.Sprintf("%T(%d)", val, val), nil
	case float32:
		return floatExpr("float32", float64(val), ua.FormatScalar(val)), nil
	case float64:
		return floatExpr("float64", val, ua.FormatScalar(val)), nil
	case string:
		return fmt.Sprintf("%q", val), nil
	case time.Time:
		return fmt.Sprintf("time.Unix(0, %d).UTC()", val.UnixNano()), nil
	case uuid.UUID:
		return fmt.Sprintf("uuid.MustParse(%q)", val.String()), nil
	case ua.ByteString:
		return fmt.Sprintf("ua.ByteString(%q)", string(val)), nil
	case ua.XMLElement:
		return fmt.Sprintf("ua.XMLElement(%q)", string(val)), nil
	case ua.NodeID:
		return nodeIDExpr(val), nil
	case ua.ExpandedNodeID:
		return fmt.Sprintf("ua.ParseExpandedNodeID(%q)", val.String()), nil
	case ua.StatusCode:
		return fmt.Sprintf("ua.StatusCode(0x%08X)", uint32(val)), nil
	case ua.QualifiedName:
		return fmt.Sprintf("ua.NewQualifiedName(%d, %q)", val.NamespaceIndex, val.Name), nil
	case ua.LocalizedText:
		return localizedTextExpr(val), nil
	}
	return "", errors.Errorf("unsupported value of type %T", value)
}

func floatExpr(typ string, f float64, text string) string {
	switch {
	case math.IsNaN(f):
		return typ + "(math.NaN())"
	case math.IsInf(f, 1):
		return typ + "(math.Inf(1))"
	case math.IsInf(f, -1):
		return typ + "(math.Inf(-1))"
	}
	return typ + "(" + text + ")"
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return errors.Wrapf(err, "goimports %s", filepath.Base(path))
	}
	return errors.Wrap(os.WriteFile(path, formatted, 0o644), "error writing go source")
}
