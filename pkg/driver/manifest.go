package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is the project manifest looked up by the CLI.
const ManifestFileName = "cx.yml"

const defaultOutputDir = "build"

// Manifest represents the parsed contents of cx.yml.
type Manifest struct {
	// Path is the absolute path of the manifest file.
	Path    string
	Name    string
	Version string
	// Sources are syntax tree dump paths or glob patterns relative to the
	// manifest directory, in manifest order.
	Sources []string
	Options Options
	// Output is the absolute directory AST files are written to.
	Output string
}

// Options tune how every unit in the manifest is transformed.
type Options struct {
	// Locations tags nodes with the unit's path relative to the manifest.
	Locations        bool
	StrictAssignment bool
	// Workers bounds concurrent transformations; zero means GOMAXPROCS.
	Workers int
}

// Dir returns the directory holding the manifest.
func (m *Manifest) Dir() string {
	return filepath.Dir(m.Path)
}

// ValidationError aggregates manifest validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "manifest: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("manifest validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadManifest parses cx.yml from disk, returning a validated manifest.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw manifestFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("manifest: %s is empty", absPath)
		}
		return nil, fmt.Errorf("manifest: parse %s: %w", absPath, err)
	}

	manifest := raw.toManifest(absPath)
	if err := manifest.validate(); err != nil {
		return nil, err
	}
	return manifest, nil
}

var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var versionPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+){0,2}([0-9A-Za-z\-\+\.]*)?$`)

func (m *Manifest) validate() error {
	var errs ValidationError
	if m.Name == "" {
		errs.Issues = append(errs.Issues, "name must be provided")
	} else if !namePattern.MatchString(m.Name) {
		errs.Issues = append(errs.Issues, fmt.Sprintf("name %q must be an identifier", m.Name))
	}
	if m.Version != "" && !versionPattern.MatchString(m.Version) {
		errs.Issues = append(errs.Issues, fmt.Sprintf("invalid version %q", m.Version))
	}
	if len(m.Sources) == 0 {
		errs.Issues = append(errs.Issues, "sources must list at least one syntax dump")
	}
	seen := make(map[string]struct{}, len(m.Sources))
	for i, source := range m.Sources {
		if filepath.IsAbs(source) {
			errs.Issues = append(errs.Issues, fmt.Sprintf("sources[%d] must be relative to the manifest", i))
		} else if escapesRoot(source) {
			errs.Issues = append(errs.Issues, fmt.Sprintf("sources[%d] must stay inside the manifest directory", i))
		}
		if _, err := filepath.Match(source, ""); err != nil {
			errs.Issues = append(errs.Issues, fmt.Sprintf("sources[%d] is not a valid pattern: %v", i, err))
		}
		if _, dup := seen[source]; dup {
			errs.Issues = append(errs.Issues, fmt.Sprintf("sources[%d] duplicates %q", i, source))
		}
		seen[source] = struct{}{}
	}
	if m.Options.Workers < 0 {
		errs.Issues = append(errs.Issues, "options.workers must not be negative")
	}

	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

func escapesRoot(source string) bool {
	cleaned := path.Clean(filepath.ToSlash(source))
	return cleaned == ".." || strings.HasPrefix(cleaned, "../")
}

// ErrNoSources is returned when a source pattern matches no file.
var ErrNoSources = errors.New("manifest: source pattern matched no files")

// ResolveSources expands the source patterns into manifest-relative paths.
// Matches of one pattern are sorted; patterns keep manifest order and a path
// matched twice is listed once.
func (m *Manifest) ResolveSources() ([]string, error) {
	root := m.Dir()
	seen := make(map[string]struct{})
	out := make([]string, 0, len(m.Sources))
	for _, pattern := range m.Sources {
		matches, err := filepath.Glob(filepath.Join(root, pattern))
		if err != nil {
			return nil, fmt.Errorf("manifest: source %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoSources, pattern)
		}
		sort.Strings(matches)
		for _, match := range matches {
			rel, err := filepath.Rel(root, match)
			if err != nil {
				return nil, fmt.Errorf("manifest: source %q: %w", match, err)
			}
			rel = filepath.ToSlash(rel)
			if _, dup := seen[rel]; dup {
				continue
			}
			seen[rel] = struct{}{}
			out = append(out, rel)
		}
	}
	return out, nil
}

type manifestFile struct {
	Name    string      `yaml:"name"`
	Version string      `yaml:"version"`
	Sources stringList  `yaml:"sources"`
	Options optionsYAML `yaml:"options"`
	Output  string      `yaml:"output"`
}

type optionsYAML struct {
	Locations        bool `yaml:"locations"`
	StrictAssignment bool `yaml:"strict_assignment"`
	Workers          int  `yaml:"workers"`
}

type stringList []string

func (mf manifestFile) toManifest(path string) *Manifest {
	dir := filepath.Dir(path)
	output := strings.TrimSpace(mf.Output)
	if output == "" {
		output = defaultOutputDir
	}
	if !filepath.IsAbs(output) {
		output = filepath.Join(dir, output)
	}
	return &Manifest{
		Path:    path,
		Name:    strings.TrimSpace(mf.Name),
		Version: strings.TrimSpace(mf.Version),
		Sources: mf.Sources.Clone(),
		Options: Options{
			Locations:        mf.Options.Locations,
			StrictAssignment: mf.Options.StrictAssignment,
			Workers:          mf.Options.Workers,
		},
		Output: filepath.Clean(output),
	}
}

func (l stringList) Clone() []string {
	if len(l) == 0 {
		return nil
	}
	out := make([]string, 0, len(l))
	for _, item := range l {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (l *stringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" || strings.TrimSpace(value.Value) == "" {
			*l = nil
			return nil
		}
		*l = stringList{strings.TrimSpace(value.Value)}
		return nil
	case yaml.SequenceNode:
		items := make([]string, 0, len(value.Content))
		for _, node := range value.Content {
			var str string
			if err := node.Decode(&str); err != nil {
				return err
			}
			str = strings.TrimSpace(str)
			if str == "" {
				continue
			}
			items = append(items, str)
		}
		*l = stringList(items)
		return nil
	case yaml.AliasNode:
		return l.UnmarshalYAML(value.Alias)
	case 0:
		*l = nil
		return nil
	default:
		return fmt.Errorf("manifest: expected string or sequence for list but found %s", value.ShortTag())
	}
}

// FindManifest walks up from start to the nearest directory holding cx.yml.
func FindManifest(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory %q: %w", start, err)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	origin := dir
	for {
		candidate := filepath.Join(dir, ManifestFileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found from %s upwards: %w", ManifestFileName, origin, ErrManifestNotFound)
		}
		dir = parent
	}
}

// ErrManifestNotFound is wrapped by FindManifest when no manifest exists.
var ErrManifestNotFound = errors.New("manifest not found")
