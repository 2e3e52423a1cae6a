package drawablegen

import "strings"

// DrawableFilename derives the resource file name for an icon:
// ic_<snake_case_name>.xml, with any enum qualifier stripped first.
func DrawableFilename(name string) string {
	return "ic_" + ToSnakeCase(strings.TrimPrefix(name, iconPrefix)) + ".xml"
}

// BuildDrawable renders a 24x24 vector drawable document with one path
// element per path datum. The styling is fixed: white 2-unit stroke,
// round caps and joins, no fill, tinted by the control-normal theme
// attribute. The same path list always yields the same bytes.
func BuildDrawable(paths []string) string {
	var b strings.Builder
	b.WriteString("<vector xmlns:android=\"http://schemas.android.com/apk/res/android\"\n")
	b.WriteString("    android:width=\"24dp\"\n")
	b.WriteString("    android:height=\"24dp\"\n")
	b.WriteString("    android:viewportWidth=\"24.0\"\n")
	b.WriteString("    android:viewportHeight=\"24.0\"\n")
	b.WriteString("    android:tint=\"?attr/colorControlNormal\">\n")
	for _, d := range paths {
		b.WriteString("    <path\n")
		b.WriteString("        android:pathData=\"" + d + "\"\n")
		b.WriteString("        android:strokeColor=\"#FFFFFF\"\n")
		b.WriteString("        android:strokeWidth=\"2\"\n")
		b.WriteString("        android:strokeLineCap=\"round\"\n")
		b.WriteString("        android:strokeLineJoin=\"round\" />\n")
	}
	b.WriteString("</vector>\n")
	return b.String()
}
