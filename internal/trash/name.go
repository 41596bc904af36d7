package trash

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/babarot/rtrash/internal/utils/fs"
)

// UniqueName returns a name for base that is free in both filesDir and
// infoDir. Collisions get an increasing counter starting at 2 inserted
// before the extension: note.txt, note.2.txt, note.3.txt, ...
func UniqueName(filesDir, infoDir, base string) string {
	stem, ext := splitExt(base)
	name := base
	for n := 2; taken(filesDir, infoDir, name); n++ {
		name = stem + "." + strconv.Itoa(n) + ext
	}
	return name
}

func taken(filesDir, infoDir, name string) bool {
	return fs.Exists(filepath.Join(filesDir, name)) || fs.Exists(filepath.Join(infoDir, name+infoExt))
}

// splitExt splits "archive.tar.gz" into ("archive.tar", ".gz"). A leading
// dot does not start an extension, so ".bashrc" has none.
func splitExt(base string) (string, string) {
	i := strings.LastIndex(base, ".")
	if i <= 0 {
		return base, ""
	}
	return base[:i], base[i:]
}
