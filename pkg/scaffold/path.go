package scaffold

import "strings"

// TemplateSuffix marks template units in the template tree.
const TemplateSuffix = ".ts"

// ResolvePath returns the output path for t: CustomPath when set, otherwise
// the path derived from the template name.
func ResolvePath(t Template) string {
	if t.CustomPath != "" {
		return t.CustomPath
	}
	return DerivePath(t.Name)
}

// DerivePath maps a template name to its output path. The template suffix is
// stripped and a leading underscore in any segment becomes a dot, so
// "_devcontainer/devcontainer.json.ts" yields ".devcontainer/devcontainer.json".
// Segments are otherwise kept as written; the path is not cleaned.
func DerivePath(name string) string {
	name = strings.TrimSuffix(toSlash(name), TemplateSuffix)
	segments := strings.Split(name, "/")
	for i, segment := range segments {
		if strings.HasPrefix(segment, "_") {
			segments[i] = "." + segment[1:]
		}
	}
	return strings.Join(segments, "/")
}

// TemplateName reverses DerivePath: every segment starting with a dot gets an
// underscore instead. DerivePath(TemplateName(p)) == p for any path; the
// other direction holds for names with no segment starting with a dot.
func TemplateName(outputPath string) string {
	segments := strings.Split(toSlash(outputPath), "/")
	for i, segment := range segments {
		if strings.HasPrefix(segment, ".") {
			segments[i] = "_" + segment[1:]
		}
	}
	return strings.Join(segments, "/") + TemplateSuffix
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
