package main

import (
	"fmt"
	"go/format"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

const generatedHeader = "// Code generated by blazon gen. DO NOT EDIT."

var changeDetectionValues = map[string]string{
	"default":     "blazon.ChangeDetectionDefault",
	"checkOnce":   "blazon.ChangeDetectionCheckOnce",
	"checked":     "blazon.ChangeDetectionChecked",
	"checkAlways": "blazon.ChangeDetectionCheckAlways",
	"detached":    "blazon.ChangeDetectionDetached",
	"onPush":      "blazon.ChangeDetectionOnPush",
}

var encapsulationValues = map[string]string{
	"emulated": "blazon.ViewEncapsulationEmulated",
	"native":   "blazon.ViewEncapsulationNative",
	"none":     "blazon.ViewEncapsulationNone",
}

// generate renders the registration file of one package: an init function
// with a declaration chain per annotated class, in source order.
func generate(logger *zerolog.Logger, pkgName string, defs []*ClassDef) ([]byte, error) {
	var b strings.Builder
	b.WriteString(generatedHeader + "\n\n")
	b.WriteString("package " + pkgName + "\n\n")
	b.WriteString("import (\n\t\"github.com/blazon-ui/blazon\"\n)\n\n")
	b.WriteString("func init() {\n")

	for i, def := range defs {
		if i > 0 {
			b.WriteString("\n")
		}
		if err := generateClass(logger, &b, def); err != nil {
			return nil, err
		}
	}

	b.WriteString("}\n")

	formatted, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("generated code for package %s does not format:\n\t%w", pkgName, err)
	}
	return formatted, nil
}

func generateClass(logger *zerolog.Logger, b *strings.Builder, def *ClassDef) error {
	fmt.Fprintf(b, "\tblazon.For[%s]()", def.TypeName)

	for _, ann := range def.Annotations {
		chain, err := classCall(logger, ann)
		if err != nil {
			return fmt.Errorf("%s (%s): %w", def.TypeName, def.Pos, err)
		}
		b.WriteString(".\n\t\t" + chain)
	}
	for _, member := range def.Members {
		for _, ann := range member.Annotations {
			expr, err := metadataExpr(ann)
			if err != nil {
				return fmt.Errorf("%s.%s (%s): %w", def.TypeName, member.Name, def.Pos, err)
			}
			fmt.Fprintf(b, ".\n\t\tMember(%q, %s)", member.Name, expr)
		}
	}
	for _, param := range def.Params {
		for _, ann := range param.Annotations {
			expr, err := metadataExpr(ann)
			if err != nil {
				return fmt.Errorf("%s parameter %d (%s): %w", def.TypeName, param.Index, def.Pos, err)
			}
			fmt.Fprintf(b, ".\n\t\tParam(%d, %s)", param.Index, expr)
		}
	}

	b.WriteString(".\n\t\tMustRegister()\n")
	return nil
}

func classCall(logger *zerolog.Logger, ann Annotation) (string, error) {
	switch ann.Tag {
	case "component", "directive":
		return directiveCall(logger, ann)
	case "view":
		return viewCall(ann)
	case "pipe":
		return pipeCall(logger, ann)
	default:
		return "", fmt.Errorf("annotation @%s is not a class annotation", ann.Tag)
	}
}

func directiveCall(logger *zerolog.Logger, ann Annotation) (string, error) {
	selector, found := ann.property("selector")
	if !found {
		return "", fmt.Errorf("annotation @%s requires a selector property", ann.Tag)
	}

	var fields []string
	fields = append(fields, fmt.Sprintf("Selector: %q", selector))
	if props := ann.list("properties"); props != nil {
		fields = append(fields, "Properties: "+stringSliceLiteral(props))
	}
	if events := ann.list("events"); events != nil {
		fields = append(fields, "Events: "+stringSliceLiteral(events))
	}
	if exportAs, ok := ann.property("exportAs"); ok {
		fields = append(fields, fmt.Sprintf("ExportAs: %q", exportAs))
	}
	if moduleID, ok := ann.property("moduleId"); ok {
		fields = append(fields, fmt.Sprintf("ModuleID: %q", moduleID))
	}
	if compileChildren, ok := ann.boolProperty(logger, "compileChildren"); ok {
		fields = append(fields, fmt.Sprintf("CompileChildren: blazon.Bool(%t)", compileChildren))
	}

	if ann.Tag == "directive" {
		return fmt.Sprintf("Directive(blazon.DirectiveConfig{%s})", strings.Join(fields, ", ")), nil
	}

	if strategy, ok := ann.property("changeDetection"); ok {
		value, known := changeDetectionValues[strategy]
		if !known {
			return "", fmt.Errorf("unknown changeDetection strategy %q", strategy)
		}
		fields = append(fields, "ChangeDetection: "+value)
	}
	if dynamicLoadable, ok := ann.boolProperty(logger, "dynamicLoadable"); ok && dynamicLoadable {
		fields = append(fields, "DynamicLoadable: true")
	}
	return fmt.Sprintf("Component(blazon.ComponentConfig{%s})", strings.Join(fields, ", ")), nil
}

func viewCall(ann Annotation) (string, error) {
	var fields []string
	if template, ok := ann.property("template"); ok {
		fields = append(fields, fmt.Sprintf("Template: %q", template))
	}
	if templateURL, ok := ann.property("templateUrl"); ok {
		fields = append(fields, fmt.Sprintf("TemplateURL: %q", templateURL))
	}
	if styles := ann.list("styles"); styles != nil {
		fields = append(fields, "Styles: "+stringSliceLiteral(styles))
	}
	if styleURLs := ann.list("styleUrls"); styleURLs != nil {
		fields = append(fields, "StyleURLs: "+stringSliceLiteral(styleURLs))
	}
	if encapsulation, ok := ann.property("encapsulation"); ok {
		value, known := encapsulationValues[encapsulation]
		if !known {
			return "", fmt.Errorf("unknown encapsulation %q", encapsulation)
		}
		fields = append(fields, "Encapsulation: "+value)
	}
	if renderPluginID, ok := ann.property("renderPluginId"); ok {
		fields = append(fields, fmt.Sprintf("RenderPluginID: %q", renderPluginID))
	}
	return fmt.Sprintf("View(blazon.ViewConfig{%s})", strings.Join(fields, ", ")), nil
}

func pipeCall(logger *zerolog.Logger, ann Annotation) (string, error) {
	name, found := ann.property("name")
	if !found {
		return "", fmt.Errorf("annotation @pipe requires a name property")
	}
	fields := []string{fmt.Sprintf("Name: %q", name)}
	if pure, ok := ann.boolProperty(logger, "pure"); ok {
		fields = append(fields, fmt.Sprintf("Pure: blazon.Bool(%t)", pure))
	}
	return fmt.Sprintf("Pipe(blazon.PipeConfig{%s})", strings.Join(fields, ", ")), nil
}

// metadataExpr renders the constructor expression of a member or parameter
// annotation.
func metadataExpr(ann Annotation) (string, error) {
	switch ann.Tag {
	case "property":
		named, _ := ann.property("named")
		return fmt.Sprintf("blazon.NewProperty(%q)", named), nil
	case "event":
		named, _ := ann.property("named")
		return fmt.Sprintf("blazon.NewEvent(%q)", named), nil
	case "hostBinding":
		named, _ := ann.property("named")
		return fmt.Sprintf("blazon.NewHostBinding(%q)", named), nil
	case "hostListener":
		event, found := ann.property("event")
		if !found {
			return "", fmt.Errorf("annotation @hostListener requires an event property")
		}
		args := make([]string, 0)
		for _, arg := range ann.list("args") {
			args = append(args, strconv.Quote(arg))
		}
		call := fmt.Sprintf("blazon.MustHostListener(%q", event)
		if len(args) > 0 {
			call += ", " + strings.Join(args, ", ")
		}
		return call + ")", nil
	case "query", "viewQuery":
		return queryExpr(ann)
	case "attribute":
		name, found := ann.property("name")
		if !found {
			return "", fmt.Errorf("annotation @attribute requires a name property")
		}
		return fmt.Sprintf("blazon.MustAttribute(%q)", name), nil
	case "inject":
		typeName, found := ann.property("type")
		if !found {
			return "", fmt.Errorf("annotation @inject requires a type property")
		}
		return fmt.Sprintf("blazon.NewInject(blazon.ClassOf[%s]())", typeName), nil
	case "optional":
		return "blazon.NewOptional()", nil
	case "self":
		return "blazon.NewSelf()", nil
	case "skipSelf":
		return "blazon.NewSkipSelf()", nil
	case "host":
		return "blazon.NewHost()", nil
	default:
		return "", fmt.Errorf("annotation @%s is not a member or parameter annotation", ann.Tag)
	}
}

func queryExpr(ann Annotation) (string, error) {
	fn := "blazon.MustQuery"
	if ann.Tag == "viewQuery" {
		fn = "blazon.MustViewQuery"
	}

	var selector string
	typeName, hasType := ann.property("type")
	varBindings, hasVars := ann.property("selector")
	switch {
	case hasType && hasVars:
		return "", fmt.Errorf("annotation @%s takes either a type or a selector property, not both", ann.Tag)
	case hasType:
		// forward reference: the queried type may be declared later in the
		// same package than the generated init
		selector = fmt.Sprintf("blazon.Ref(func() any { return blazon.ClassOf[%s]() })", typeName)
	case hasVars:
		selector = strconv.Quote(varBindings)
	default:
		return "", fmt.Errorf("annotation @%s requires a type or a selector property", ann.Tag)
	}

	fields := []string{"Selector: " + selector}
	if descendants, ok := ann.Properties["descendants"]; ok && descendants == "true" {
		fields = append(fields, "Descendants: true")
	}
	return fmt.Sprintf("%s(blazon.QueryConfig{%s})", fn, strings.Join(fields, ", ")), nil
}

func stringSliceLiteral(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}
