package utils

import (
	"log"
	"os"
	"path/filepath"
	"strings"
)

var cReservedNames = []string{
	"auto", "break", "case", "char", "const", "continue", "default",
	"do", "double", "else", "enum", "extern", "float", "for", "goto",
	"if", "int", "long", "register", "return", "short", "signed",
	"sizeof", "static", "struct", "switch", "typedef", "union",
	"unsigned", "void", "volatile", "while",
}

// SafeName escapes C reserved words so they stay usable as parameter
// names in emitted headers.
func SafeName(name string) string {
	for _, it := range cReservedNames {
		if name == it {
			return name + "_"
		}
	}
	return name
}

// CIdent reduces a name to a valid C identifier fragment: letters,
// digits and underscores, never starting with a digit, never empty.
func CIdent(name string) string {
	var b strings.Builder
	for _, c := range name {
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
			c >= '0' && c <= '9' || c == '_' {
			b.WriteRune(c)
		} else {
			b.WriteByte('_')
		}
	}
	s := b.String()
	if s == "" {
		return "arg"
	}
	if s[0] >= '0' && s[0] <= '9' {
		s = "_" + s
	}
	return SafeName(s)
}

// SnakeCase converts CamelCase and mixedCase names to snake_case.
// Acronym runs stay together: "HTTPServer" becomes "http_server".
func SnakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for n, c := range runes {
		if c >= 'A' && c <= 'Z' {
			if n > 0 {
				prev := runes[n-1]
				nextLower := n+1 < len(runes) && runes[n+1] >= 'a' && runes[n+1] <= 'z'
				if prev >= 'a' && prev <= 'z' || prev >= '0' && prev <= '9' ||
					(prev >= 'A' && prev <= 'Z' && nextLower) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(c + 32)
		} else {
			b.WriteRune(c)
		}
	}
	return CIdent(b.String())
}

// CleanDir removes the generated files from an output directory, leaving
// subdirectories alone.
func CleanDir(dir string) {
	fis, err := os.ReadDir(dir)
	if err != nil {
		log.Panic(err)
	}
	for _, fi := range fis {
		if fi.IsDir() {
			continue
		}
		os.Remove(filepath.Join(dir, fi.Name()))
	}
}
