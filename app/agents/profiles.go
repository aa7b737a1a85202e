package agents

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/lucasmn/newsdesk/app/gateway"
)

// Agent profile names. Each maps to an embedded YAML definition that an
// operator can override from the profiles directory.
const (
	ProfileTopicFinder      = "topic_finder"
	ProfileNewsSearcher     = "news_searcher"
	ProfileContentCollector = "content_collector"
	ProfileContentEditor    = "content_editor"
	ProfileContentReviewer  = "content_reviewer"
)

//go:embed profiles/*.yml
var defaultProfilesFS embed.FS

type profileFile struct {
	Name        string `yaml:"name"`
	Model       string `yaml:"model"`
	Search      bool   `yaml:"search"`
	Instruction string `yaml:"instruction"`
}

// Profiles caches agent definitions: embedded defaults first, then any
// overrides found in the configured directory.
type Profiles struct {
	defaultModel string
	cache        map[string]gateway.AgentSpec
	mu           sync.RWMutex
}

func NewProfiles(defaultModel string) *Profiles {
	return &Profiles{
		defaultModel: defaultModel,
		cache:        make(map[string]gateway.AgentSpec),
	}
}

// Run loads the embedded defaults and applies overrides from dir when it
// exists. An empty dir means defaults only.
func (p *Profiles) Run(dir string) error {
	if err := fs.WalkDir(defaultProfilesFS, "profiles", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := defaultProfilesFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read embedded profile %s: %w", path, err)
		}
		return p.load(data, path)
	}); err != nil {
		return err
	}

	if dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		slog.Warn("Profiles directory not found, using embedded defaults", "dir", dir)
		return nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.yml"))
	if err != nil {
		return fmt.Errorf("failed to find profile files: %w", err)
	}

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read profile %s: %w", file, err)
		}
		if err := p.load(data, file); err != nil {
			return err
		}
		slog.Debug("Profile override loaded", "file", file)
	}

	return nil
}

func (p *Profiles) load(data []byte, origin string) error {
	var pf profileFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return fmt.Errorf("failed to parse profile %s: %w", origin, err)
	}

	pf.Name = strings.TrimSpace(pf.Name)
	if pf.Name == "" {
		return fmt.Errorf("profile %s: name is required", origin)
	}
	if strings.TrimSpace(pf.Instruction) == "" {
		return fmt.Errorf("profile %s: instruction is required", origin)
	}
	if pf.Model == "" {
		pf.Model = p.defaultModel
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.cache[pf.Name] = gateway.AgentSpec{
		Name:        pf.Name,
		Model:       pf.Model,
		Instruction: pf.Instruction,
		UseSearch:   pf.Search,
	}

	return nil
}

func (p *Profiles) Get(name string) (gateway.AgentSpec, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	spec, ok := p.cache[name]
	if !ok {
		return gateway.AgentSpec{}, fmt.Errorf("agent profile %q not found", name)
	}
	return spec, nil
}

func (p *Profiles) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.cache)
}
