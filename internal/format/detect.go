// internal/format/detect.go
package format

// Type is the canonical classification of an input file
type Type int

const (
	TypeUnknown Type = iota
	TypeSevenZip
	TypeZip
	TypeTar
	TypeGzip
	TypeRar
	TypeMSI
	TypeUPX
	TypeXz
	TypeZstd
)

// String returns the string representation of the type
func (t Type) String() string {
	switch t {
	case TypeSevenZip:
		return "7Z"
	case TypeZip:
		return "ZIP"
	case TypeTar:
		return "TAR"
	case TypeGzip:
		return "GZIP"
	case TypeRar:
		return "RAR"
	case TypeMSI:
		return "MSI"
	case TypeUPX:
		return "UPX"
	case TypeXz:
		return "XZ"
	case TypeZstd:
		return "ZSTD"
	default:
		return "UNKNOWN"
	}
}

// IsContainer reports whether the type holds a tree of entries
func (t Type) IsContainer() bool {
	switch t {
	case TypeSevenZip, TypeZip, TypeTar, TypeRar:
		return true
	}
	return false
}

// IsStream reports whether the type decompresses to exactly one file
func (t Type) IsStream() bool {
	switch t {
	case TypeGzip, TypeXz, TypeZstd:
		return true
	}
	return false
}
