package main

import (
	"regexp"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// Annotation is one parsed "@tag key=value ..." line from a doc comment.
type Annotation struct {
	Tag        string
	Properties map[string]string
	Raw        string
}

// knownProperties lists the recognized properties per tag. Anything else is
// warned about and ignored so newer annotations keep working with older
// tools.
var knownProperties = map[string][]string{
	"component":    {"selector", "exportAs", "moduleId", "compileChildren", "changeDetection", "dynamicLoadable", "properties", "events"},
	"directive":    {"selector", "exportAs", "moduleId", "compileChildren", "properties", "events"},
	"view":         {"template", "templateUrl", "styles", "styleUrls", "encapsulation", "renderPluginId"},
	"pipe":         {"name", "pure"},
	"property":     {"named"},
	"event":        {"named"},
	"hostBinding":  {"named"},
	"hostListener": {"event", "args"},
	"query":        {"selector", "type", "descendants"},
	"viewQuery":    {"selector", "type", "descendants"},
	"attribute":    {"name"},
	"inject":       {"type"},
	"optional":     nil,
	"self":         nil,
	"skipSelf":     nil,
	"host":         nil,
}

var (
	annotationLineRe = regexp.MustCompile(`^@([a-zA-Z]+)(\s|$)`)
	// key=value or key="value"
	propertyRe = regexp.MustCompile(`(\w+)=(?:"([^"]*)"|([^\s"]+))`)
)

// parseAnnotations extracts the annotation lines of a doc comment, in source
// order. Non-annotation lines are plain documentation and skipped.
func parseAnnotations(logger *zerolog.Logger, docText string) []Annotation {
	var annotations []Annotation
	for _, line := range strings.Split(docText, "\n") {
		line = strings.TrimSpace(line)
		m := annotationLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		tag := m[1]
		known, recognized := knownProperties[tag]
		if !recognized {
			logger.Warn().Str("tag", tag).Msg("Unknown annotation tag, skipping it")
			continue
		}

		ann := Annotation{
			Tag:        tag,
			Properties: parseProperties(line, "@"+tag),
			Raw:        line,
		}
		for key := range ann.Properties {
			if !slices.Contains(known, key) {
				logger.Warn().
					Str("tag", tag).
					Str("property", key).
					Msg("Unknown annotation property, ignoring it")
				delete(ann.Properties, key)
			}
		}
		annotations = append(annotations, ann)
	}
	return annotations
}

func parseProperties(line string, tag string) map[string]string {
	properties := make(map[string]string)

	content := strings.TrimSpace(strings.TrimPrefix(line, tag))
	if content == "" {
		return properties
	}

	for _, match := range propertyRe.FindAllStringSubmatch(content, -1) {
		key := match[1]
		// match[2] is the quoted value, match[3] the unquoted one
		value := match[2]
		if value == "" {
			value = match[3]
		}
		properties[key] = value
	}

	return properties
}

func (a Annotation) property(key string) (string, bool) {
	value, found := a.Properties[key]
	return value, found
}

// list splits a comma-separated property into trimmed entries.
func (a Annotation) list(key string) []string {
	raw, found := a.Properties[key]
	if !found || raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		out = append(out, strings.TrimSpace(part))
	}
	return out
}

func (a Annotation) boolProperty(logger *zerolog.Logger, key string) (value bool, found bool) {
	raw, found := a.Properties[key]
	if !found {
		return false, false
	}
	switch raw {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		logger.Warn().Str("tag", a.Tag).Str("property", key).Msgf("Error parsing boolean property: %s, skipping it", raw)
		return false, false
	}
}
