package bundle

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// On-disk layout of a proxy bundle:
//
//	apiproxy/<name>.xml        bundle descriptor
//	apiproxy/proxies/*.xml     proxy endpoints
//	apiproxy/targets/*.xml     target endpoints
//	apiproxy/policies/*.xml    policies, root element name is the policy type
const bundleFolder = "apiproxy"

type proxyDescriptorXML struct {
	XMLName     xml.Name `xml:"APIProxy"`
	Name        string   `xml:"name,attr"`
	Description string   `xml:"Description"`
}

type endpointXML struct {
	Name    string   `xml:"name,attr"`
	PreFlow *flowXML `xml:"PreFlow"`
}

type flowXML struct {
	Name     string   `xml:"name,attr"`
	Request  stepsXML `xml:"Request"`
	Response stepsXML `xml:"Response"`
}

type stepsXML struct {
	Steps []stepXML `xml:"Step"`
}

type stepXML struct {
	Name      string `xml:"Name"`
	Condition string `xml:"Condition"`
}

type policyXML struct {
	XMLName xml.Name
	Name    string `xml:"name,attr"`
}

// Load constructs the entity graph from an on-disk bundle. sourceDir may be
// the bundle folder itself or any directory containing one. Collections are
// populated in sorted file order so repeated runs see the same graph.
func Load(logger hclog.Logger, sourceDir string) (*Bundle, error) {
	root, err := resolveBundleRoot(sourceDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("loading bundle", "root", root)

	b, err := loadDescriptor(root)
	if err != nil {
		return nil, err
	}

	if err := loadPolicies(b, root); err != nil {
		return nil, err
	}

	if err := loadEndpoints(b, root, "proxies", func(name string, preFlow *Flow) {
		ep := NewProxyEndpoint(name)
		ep.SetPreFlow(preFlow)
		b.AddProxyEndpoint(ep)
	}); err != nil {
		return nil, err
	}

	if err := loadEndpoints(b, root, "targets", func(name string, preFlow *Flow) {
		ep := NewTargetEndpoint(name)
		ep.SetPreFlow(preFlow)
		b.AddTargetEndpoint(ep)
	}); err != nil {
		return nil, err
	}

	logger.Debug("bundle loaded",
		"name", b.Name(),
		"proxy_endpoints", len(b.proxyEndpoints),
		"target_endpoints", len(b.targetEndpoints),
		"policies", len(b.policies))
	return b, nil
}

// resolveBundleRoot locates the apiproxy folder for the given source path.
func resolveBundleRoot(sourceDir string) (string, error) {
	if sourceDir == "" {
		return "", fmt.Errorf("source folder is not set")
	}

	abs, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", fmt.Errorf("resolve source folder %q: %w", sourceDir, err)
	}

	if filepath.Base(abs) == bundleFolder {
		if err := checkDir(abs); err != nil {
			return "", err
		}
		return abs, nil
	}

	nested := filepath.Join(abs, bundleFolder)
	if err := checkDir(nested); err != nil {
		return "", fmt.Errorf("no %s folder under %q: %w", bundleFolder, sourceDir, err)
	}
	return nested, nil
}

func checkDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", path)
	}
	return nil
}

// loadDescriptor reads the bundle descriptor from the first root-level XML
// file whose document element is APIProxy.
func loadDescriptor(root string) (*Bundle, error) {
	files, err := xmlFiles(root)
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read bundle descriptor %q: %w", file, err)
		}

		var descriptor proxyDescriptorXML
		if err := xml.Unmarshal(data, &descriptor); err != nil {
			continue // not the descriptor, e.g. a stray manifest
		}

		name := descriptor.Name
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		}
		b := NewBundle(name)
		b.SetDescription(strings.TrimSpace(descriptor.Description))
		return b, nil
	}

	return nil, fmt.Errorf("no APIProxy descriptor found in %q", root)
}

func loadPolicies(b *Bundle, root string) error {
	files, err := xmlFiles(filepath.Join(root, "policies"))
	if err != nil {
		return err
	}

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read policy %q: %w", file, err)
		}

		var policy policyXML
		if err := xml.Unmarshal(data, &policy); err != nil {
			return fmt.Errorf("parse policy %q: %w", file, err)
		}

		name := policy.Name
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		}
		relName := filepath.ToSlash(filepath.Join("policies", filepath.Base(file)))
		b.AddPolicy(NewPolicy(name, policy.XMLName.Local, relName))
	}
	return nil
}

func loadEndpoints(b *Bundle, root, subfolder string, add func(name string, preFlow *Flow)) error {
	files, err := xmlFiles(filepath.Join(root, subfolder))
	if err != nil {
		return err
	}

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read endpoint %q: %w", file, err)
		}

		var endpoint endpointXML
		if err := xml.Unmarshal(data, &endpoint); err != nil {
			return fmt.Errorf("parse endpoint %q: %w", file, err)
		}

		name := endpoint.Name
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		}
		add(name, convertFlow(endpoint.PreFlow))
	}
	return nil
}

func convertFlow(f *flowXML) *Flow {
	if f == nil {
		return nil
	}
	return NewFlow(f.Name, convertSteps(f.Request), convertSteps(f.Response))
}

func convertSteps(s stepsXML) []Step {
	steps := make([]Step, 0, len(s.Steps))
	for _, step := range s.Steps {
		steps = append(steps, Step{
			Name:      strings.TrimSpace(step.Name),
			Condition: strings.TrimSpace(step.Condition),
		})
	}
	return steps
}

// xmlFiles lists *.xml files directly under dir in sorted order. A missing
// directory is not an error: bundles commonly omit targets or policies.
func xmlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read folder %q: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".xml") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}
