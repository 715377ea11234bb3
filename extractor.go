package donate

// Extractor turns one kind of record found in an export archive into a table.
//
// Extract always returns a non-nil table carrying the declared columns, even
// when it also returns an error. The error is a diagnostic for operators:
// ENOTFOUND means the archive holds no data of this kind, EINVALID means a
// target file or some of its records could not be decoded. Rows decoded
// before a failure are kept.
type Extractor interface {
	// Name returns a stable identifier such as "instagram.followers".
	Name() string

	// Columns returns the declared column schema. The first column is "type".
	Columns() []string

	// Extract reads the archive and returns the extracted table.
	Extract(a Archive) (*Table, error)
}

// Format identifies the layout of an export archive.
type Format string

// Format constants for known export layouts.
const (
	FormatUnknown       Format = ""
	FormatTikTok        Format = "tiktok"
	FormatInstagramJSON Format = "instagram-json"
	FormatInstagramHTML Format = "instagram-html"
)

// Formats returns every known format in a stable order.
func Formats() []Format {
	return []Format{FormatTikTok, FormatInstagramJSON, FormatInstagramHTML}
}

// ParseFormat returns the format named s.
// Returns EINVALID for unknown names.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	return FormatUnknown, Errorf(EINVALID, "unknown export format %q", s)
}

// Platform returns the platform name used in donation keys.
func (f Format) Platform() string {
	switch f {
	case FormatTikTok:
		return "tiktok"
	case FormatInstagramJSON, FormatInstagramHTML:
		return "instagram"
	}
	return "unknown"
}

// FormatDetector identifies the export layout of an archive.
type FormatDetector interface {
	// Detect returns the format of the archive, or FormatUnknown.
	Detect(a Archive) Format
}
