package domain

const unknownDescription = "Unknown"

// StorageBackend selects where templates and charter records are kept.
type StorageBackend string

// Available storage backends.
const (
	// StorageFile keeps records in a JSON array file and reads an
	// optional YAML template catalog.
	StorageFile StorageBackend = "file"

	// StorageSQLite keeps templates and records in a SQLite database.
	StorageSQLite StorageBackend = "sqlite"

	// StorageMemory keeps everything in process memory.
	StorageMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageFile, StorageSQLite, StorageMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageFile:
		return "File (JSON record log)"
	case StorageSQLite:
		return "SQLite database"
	case StorageMemory:
		return "In-memory (nothing persisted)"
	default:
		return unknownDescription
	}
}

// OutputFormat selects the serializer for a generated document.
type OutputFormat string

// Available output formats.
const (
	// FormatDocx is a Word document.
	FormatDocx OutputFormat = "docx"

	// FormatMarkdown is a Markdown text document.
	FormatMarkdown OutputFormat = "markdown"

	// FormatListing is a flat "Field: value" text listing.
	FormatListing OutputFormat = "listing"
)

// IsValid returns true if the format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatDocx, FormatMarkdown, FormatListing:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// Settings holds the typed application configuration.
type Settings struct {
	StorageBackend    StorageBackend
	DataDir           string
	CatalogFile       string
	DefaultFormat     OutputFormat
	StrictFreightRate bool
	RatePerMile       float64
	ServerAddr        string
	ServerRateLimit   float64
}

// DefaultSettings returns settings used when nothing is configured.
// DataDir is resolved by the storage layer when empty.
func DefaultSettings() Settings {
	return Settings{
		StorageBackend:  StorageFile,
		DefaultFormat:   FormatDocx,
		RatePerMile:     0.05,
		ServerAddr:      ":8080",
		ServerRateLimit: 20,
	}
}

// RateQuery is the input to a freight rate estimate.
type RateQuery struct {
	DistanceNM  float64     `json:"distance_nm"`
	VesselClass VesselClass `json:"vessel_class"`
}

// RateEstimate is a placeholder freight estimate. It is not a
// published Worldscale tariff.
type RateEstimate struct {
	VesselClass VesselClass `json:"vessel_class"`
	DistanceNM  float64     `json:"distance_nm"`
	PerTonUSD   float64     `json:"per_ton_usd"`
	Method      string      `json:"method"`
}
