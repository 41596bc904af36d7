package trash

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"
)

const (
	infoHeader = "[Trash Info]"
	infoExt    = ".trashinfo"

	// DeletionDateFormat is ISO-8601 without fractional seconds or zone
	DeletionDateFormat = "2006-01-02T15:04:05"
)

// Info is the contents of a .trashinfo sidecar
type Info struct {
	// Path is the absolute path the file had before it was trashed
	Path string

	// DeletionDate is when the file was trashed, local time
	DeletionDate time.Time
}

// Marshal renders the sidecar. Path is written as-is.
func (i Info) Marshal() []byte {
	var b bytes.Buffer
	fmt.Fprintln(&b, infoHeader)
	fmt.Fprintf(&b, "Path=%s\n", i.Path)
	fmt.Fprintf(&b, "DeletionDate=%s\n", i.DeletionDate.Format(DeletionDateFormat))
	return b.Bytes()
}

// ParseInfo reads a .trashinfo sidecar. Percent-encoded paths, as written
// by other freedesktop trash implementations, are decoded.
func ParseInfo(r io.Reader) (Info, error) {
	var info Info
	var headerFound, pathFound bool

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			headerFound = line == infoHeader
			continue
		}
		if !headerFound {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		switch strings.TrimSpace(key) {
		case "Path":
			path, err := decodePath(strings.TrimSpace(value))
			if err != nil {
				return Info{}, fmt.Errorf("invalid Path encoding: %w", err)
			}
			info.Path = path
			pathFound = true
		case "DeletionDate":
			date, err := time.ParseInLocation(DeletionDateFormat, strings.TrimSpace(value), time.Local)
			if err != nil {
				return Info{}, fmt.Errorf("invalid DeletionDate format: %w", err)
			}
			info.DeletionDate = date
		}
	}

	if err := scanner.Err(); err != nil {
		return Info{}, fmt.Errorf("error reading info file: %w", err)
	}

	switch {
	case !pathFound && info.DeletionDate.IsZero():
		return Info{}, fmt.Errorf("missing %s section", infoHeader)
	case !pathFound:
		return Info{}, fmt.Errorf("missing Path field")
	case info.DeletionDate.IsZero():
		return Info{}, fmt.Errorf("missing DeletionDate field")
	}

	return info, nil
}

func decodePath(value string) (string, error) {
	if !strings.Contains(value, "%") {
		return value, nil
	}
	return url.PathUnescape(value)
}
