package endpoints

// Name identifies one of the fixed backend operations.
type Name string

const (
	Query  Name = "QUERY"
	Upload Name = "UPLOAD"
	Health Name = "HEALTH"
)

const (
	queryPath  = "/query"
	uploadPath = "/upload"
	healthPath = "/health"
)

// Endpoints holds a resolved base URL and the URLs derived from it.
// It has no setters, so a single value can be shared between goroutines.
type Endpoints struct {
	baseURL string
	query   string
	upload  string
	health  string
}

// ResolveBaseURL returns override when it is non-empty, otherwise fallback.
// The override is used verbatim.
func ResolveBaseURL(override, fallback string) string {
	if override != "" {
		return override
	}
	return fallback
}

// New builds the endpoint set for baseURL by appending each fixed path.
func New(baseURL string) *Endpoints {
	return &Endpoints{
		baseURL: baseURL,
		query:   baseURL + queryPath,
		upload:  baseURL + uploadPath,
		health:  baseURL + healthPath,
	}
}

// Resolve picks the base URL and builds the endpoint set from it.
func Resolve(override, fallback string) *Endpoints {
	return New(ResolveBaseURL(override, fallback))
}

// Names returns the endpoint names in a stable order.
func Names() []Name {
	return []Name{Query, Upload, Health}
}

// BaseURL returns the raw base URL.
func (e *Endpoints) BaseURL() string {
	return e.baseURL
}

func (e *Endpoints) Query() string {
	return e.query
}

func (e *Endpoints) Upload() string {
	return e.upload
}

func (e *Endpoints) Health() string {
	return e.health
}

// URL returns the endpoint registered under name.
func (e *Endpoints) URL(name Name) (string, bool) {
	switch name {
	case Query:
		return e.query, true
	case Upload:
		return e.upload, true
	case Health:
		return e.health, true
	default:
		return "", false
	}
}

// Map returns a new map with every endpoint. Callers may modify it freely.
func (e *Endpoints) Map() map[Name]string {
	return map[Name]string{
		Query:  e.query,
		Upload: e.upload,
		Health: e.health,
	}
}
