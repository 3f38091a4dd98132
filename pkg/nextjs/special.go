package nextjs

import (
	"path/filepath"
	"strings"
)

// recognizedExtensions are the four source extensions the analyzers
// consider.
var recognizedExtensions = map[string]bool{
	".js":  true,
	".jsx": true,
	".ts":  true,
	".tsx": true,
}

// specialFileTypes maps reserved filenames (minus extension) to their
// routing role.
var specialFileTypes = map[string]FileType{
	"page":       FileTypePage,
	"layout":     FileTypeLayout,
	"route":      FileTypeRoute,
	"loading":    FileTypeLoading,
	"not-found":  FileTypeNotFound,
	"error":      FileTypeError,
	"template":   FileTypeTemplate,
	"default":    FileTypeDefault,
	"middleware": FileTypeMiddleware,
}

// IsSpecialFile reports whether the file carries routing significance:
// a recognized extension and either a reserved filename or "index".
func IsSpecialFile(path string) bool {
	ext := filepath.Ext(path)
	if !recognizedExtensions[ext] {
		return false
	}
	name := strings.TrimSuffix(filepath.Base(path), ext)
	if _, ok := specialFileTypes[name]; ok {
		return true
	}
	return name == "index"
}

// Classify maps a file path to its SpecialFileInfo. It is pure and
// performs no I/O.
//
// "index" is mapped to the page type but IsSpecialFile stays false for
// it; callers depend on both sides of that asymmetry.
//
// Client/server nature is approximated from the extension alone:
// markup-bearing extensions (.jsx/.tsx) count as client components,
// plain script extensions as server components. Files outside the four
// recognized extensions are neither.
func Classify(path string) SpecialFileInfo {
	ext := filepath.Ext(path)
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, ext)
	recognized := recognizedExtensions[ext]

	info := SpecialFileInfo{
		FilePath:  path,
		FileName:  base,
		FileType:  FileTypeOther,
		Extension: ext,
	}

	if recognized {
		if fileType, ok := specialFileTypes[name]; ok {
			info.FileType = fileType
			info.IsSpecialFile = true
		} else if name == "index" {
			info.FileType = FileTypePage
		}

		if ext == ".jsx" || ext == ".tsx" {
			info.IsClientComponent = true
		} else {
			info.IsServerComponent = true
		}
	}

	return info
}

// FilterSpecial keeps only the paths IsSpecialFile accepts, preserving
// input order.
func FilterSpecial(paths []string) []string {
	var filtered []string
	for _, path := range paths {
		if IsSpecialFile(path) {
			filtered = append(filtered, path)
		}
	}
	return filtered
}

// Analyze filters a path list to special files and classifies each one,
// preserving input order.
func Analyze(paths []string) []SpecialFileInfo {
	filtered := FilterSpecial(paths)
	infos := make([]SpecialFileInfo, 0, len(filtered))
	for _, path := range filtered {
		infos = append(infos, Classify(path))
	}
	return infos
}
