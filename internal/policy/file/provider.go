package file

import (
	"bufio"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/open-policy-agent/opa/v1/ast"

	"github.com/asimihsan/request_gateway/pkg/gate"
)

// Provider implements gate.PolicyProvider for rego rule files on disk
type Provider struct {
	RulesPath string
	// caches the loaded bundle to avoid rereading/recompiling every time
	cachedBundle gate.PolicyBundle
}

var _ gate.PolicyProvider = (*Provider)(nil)

// New creates a new file-based rule provider
func New(rulesPath string) *Provider {
	return &Provider{
		RulesPath: rulesPath,
	}
}

// bundle is the concrete gate.PolicyBundle for file-sourced rules.
type bundle struct {
	id   string
	data []byte
}

func (b *bundle) ID() string   { return b.id }
func (b *bundle) Data() []byte { return b.data }

// GetPolicyBundle implements gate.PolicyProvider. The source is compiled here
// so a broken rules file is rejected at load time rather than on the first
// evaluation.
func (p *Provider) GetPolicyBundle(ctx context.Context) (gate.PolicyBundle, error) {
	// Basic caching to avoid reloading if already loaded
	if p.cachedBundle != nil {
		return p.cachedBundle, nil
	}

	data, err := os.ReadFile(p.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading rules file %s: %v", gate.ErrPolicyLoad, p.RulesPath, err)
	}

	// Compile check only; the engine prepares its own query from Data()
	moduleName := filepath.Base(p.RulesPath)
	if _, err := ast.CompileModules(map[string]string{moduleName: string(data)}); err != nil {
		return nil, fmt.Errorf("%w: compiling rules module %s: %v", gate.ErrPolicyLoad, moduleName, err)
	}

	// Calculate SHA256 of the rules file for versioning
	hash := sha256.Sum256(data)
	p.cachedBundle = &bundle{
		id:   hex.EncodeToString(hash[:]),
		data: data,
	}

	return p.cachedBundle, nil
}

// LoadDenylist reads a plain-text denylist file: one identifier per line,
// blank lines and #-comments skipped. The returned identifiers are raw;
// PolicySet normalizes on insert.
func LoadDenylist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading denylist file %s: %v", gate.ErrPolicyLoad, path, err)
	}
	defer f.Close()

	var identifiers []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		identifiers = append(identifiers, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanning denylist file %s: %v", gate.ErrPolicyLoad, path, err)
	}

	return identifiers, nil
}
