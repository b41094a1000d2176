// internal/format/mime.go
package format

// MIME types reported by the signature sniffer
const (
	MIMESevenZip   = "application/x-7z-compressed"
	MIMEZip        = "application/zip"
	MIMETar        = "application/x-tar"
	MIMEGzip       = "application/gzip"
	MIMERar        = "application/vnd.rar"
	MIMERarLegacy  = "application/x-rar"
	MIMERarSniffed = "application/x-rar-compressed"
	MIMEXz         = "application/x-xz"
	MIMEZstd       = "application/zstd"
	MIMEMSI        = "application/x-msi"
)

// MIMEEntry binds a MIME string to a type
type MIMEEntry struct {
	MIME string
	Type Type
}

// MIMETable is the exact-match table consulted before any structural check.
// Order matters only for readability; entries never overlap.
var MIMETable = []MIMEEntry{
	{MIMESevenZip, TypeSevenZip},
	{MIMEZip, TypeZip},
	{MIMETar, TypeTar},
	{MIMEGzip, TypeGzip},
	{MIMERar, TypeRar},
	{MIMERarLegacy, TypeRar},
	{MIMERarSniffed, TypeRar},
	{MIMEXz, TypeXz},
	{MIMEZstd, TypeZstd},
}

// FromMIME maps a MIME string to a type using exact matching.
// Returns TypeUnknown when the MIME type is not in the table.
func FromMIME(mime string) Type {
	for _, e := range MIMETable {
		if e.MIME == mime {
			return e.Type
		}
	}
	return TypeUnknown
}
