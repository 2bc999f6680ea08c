package bundle

import (
	"slices"
	"strings"

	"github.com/matzehuels/bundlecheck/pkg/stats"
)

// Config holds the naming conventions the check relies on.
// Use [DefaultConfig] for webpack with npm-style dependency storage.
type Config struct {
	Delimiter    string   // Loader-chain separator ("!")
	Prefix       string   // Dependency storage prefix ("./node_modules/")
	Extensions   []string // Source-code suffixes (".js", ...)
	ScriptMarker string   // Query marker of script-tag references ("type=script")
	ManifestFile string   // Package manifest file name ("package.json")
}

// DefaultConfig returns the webpack/npm conventions.
func DefaultConfig() Config {
	return Config{
		Delimiter:    "!",
		Prefix:       "./node_modules/",
		Extensions:   []string{".js", ".mjs", ".cjs", ".jsx", ".ts", ".tsx"},
		ScriptMarker: "type=script",
		ManifestFile: "package.json",
	}
}

// WithDefaults returns a copy of c with empty fields replaced by defaults.
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if c.Delimiter == "" {
		c.Delimiter = def.Delimiter
	}
	if c.Prefix == "" {
		c.Prefix = def.Prefix
	}
	if len(c.Extensions) == 0 {
		c.Extensions = def.Extensions
	}
	if c.ScriptMarker == "" {
		c.ScriptMarker = def.ScriptMarker
	}
	if c.ManifestFile == "" {
		c.ManifestFile = def.ManifestFile
	}
	return c
}

// Kind is the classification of an identifier.
type Kind int

const (
	Unknown Kind = iota
	Library
	Host
)

func (k Kind) String() string {
	switch k {
	case Library:
		return "library"
	case Host:
		return "host"
	default:
		return "unknown"
	}
}

// Classifier labels bundler identifiers. It is stateless and safe for
// concurrent use.
type Classifier struct {
	cfg Config
}

// NewClassifier creates a classifier for cfg (empty fields take defaults).
func NewClassifier(cfg Config) *Classifier {
	return &Classifier{cfg: cfg.WithDefaults()}
}

// Config returns the effective configuration.
func (c *Classifier) Config() Config { return c.cfg }

// ClassifyModule classifies the first loader-chain segment of id: Library
// when it starts with the dependency prefix and has a code suffix, Host when
// it does not contain the prefix and has a code suffix, Unknown otherwise.
func (c *Classifier) ClassifyModule(id stats.Identifier) Kind {
	if !id.Valid() {
		return Unknown
	}
	seg := c.First(id)
	switch {
	case !c.hasCodeSuffix(seg):
		return Unknown
	case strings.HasPrefix(seg, c.cfg.Prefix):
		return Library
	case !strings.Contains(seg, c.cfg.Prefix):
		return Host
	default:
		return Unknown
	}
}

// ClassifyReason classifies the last loader-chain segment of a reason's
// module name. Host additionally accepts non-code references carrying the
// script marker (e.g. "./src/App.vue?vue&type=script&lang=js").
func (c *Classifier) ClassifyReason(id stats.Identifier) Kind {
	if !id.Valid() {
		return Unknown
	}
	seg := c.Last(id)
	code := c.hasCodeSuffix(seg)
	switch {
	case strings.HasPrefix(seg, c.cfg.Prefix) && code:
		return Library
	case strings.Contains(seg, c.cfg.Prefix):
		return Unknown
	case code || strings.Contains(seg, c.cfg.ScriptMarker):
		return Host
	default:
		return Unknown
	}
}

// ReasonText returns the last loader-chain segment of id cut before its
// query string. A segment that starts with "?" is returned whole.
func (c *Classifier) ReasonText(id stats.Identifier) string {
	seg := c.Last(id)
	if i := strings.IndexByte(seg, '?'); i > 0 {
		return seg[:i]
	}
	return seg
}

// First returns the first loader-chain segment of id.
func (c *Classifier) First(id stats.Identifier) string {
	s := id.String()
	if i := strings.Index(s, c.cfg.Delimiter); i >= 0 {
		return s[:i]
	}
	return s
}

// Last returns the last loader-chain segment of id.
func (c *Classifier) Last(id stats.Identifier) string {
	s := id.String()
	if i := strings.LastIndex(s, c.cfg.Delimiter); i >= 0 {
		return s[i+len(c.cfg.Delimiter):]
	}
	return s
}

func (c *Classifier) hasCodeSuffix(s string) bool {
	return slices.ContainsFunc(c.cfg.Extensions, func(ext string) bool {
		return strings.HasSuffix(s, ext)
	})
}
