// Package descriptor serializes a project template into the pipeline
// descriptor consumed by the DialogChain runtime.
//
// Overview:
//   - Responsibility: Render pipeline.yaml with top-level name, version,
//     description, triggers, processors, outputs, and settings keys
//   - Key Types: Serialize function over yaml.Node trees
//   - Concurrency Model: Stateless, safe for concurrent use
//   - Error Semantics: Unsupported parameter value types fail serialization
//   - Performance Notes: Single-pass node construction and encode
//
// The descriptor is built from yaml.Node mappings rather than Go maps so
// that key order follows the template definition exactly. Re-serializing
// the same template yields byte-identical output, keeping regenerated
// descriptors diffable.
package descriptor

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dialogchain/dialogchain/internal/registry"
)

// Version is the descriptor schema version written to every pipeline.yaml.
const Version = "1.0.0"

// Serialize renders the pipeline descriptor for a template.
//
// Parameters:
//   - tpl: Project template to serialize
//   - projectName: Name written to the descriptor's top-level name key
//
// Returns:
//   - []byte: Descriptor document bytes
//   - error: Serialization error if any
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - Single encode pass, output size proportional to template size
func Serialize(tpl *registry.ProjectTemplate, projectName string) ([]byte, error) {
	root := mapping()
	addKV(root, "name", strNode(projectName))
	addKV(root, "version", strNode(Version))
	addKV(root, "description", strNode(tpl.Description))

	triggers := sequence()
	for _, trigger := range tpl.Triggers {
		node, err := triggerNode(trigger)
		if err != nil {
			return nil, err
		}
		triggers.Content = append(triggers.Content, node)
	}
	addKV(root, "triggers", triggers)

	processors := sequence()
	for _, processor := range tpl.Processors {
		node, err := processorNode(processor)
		if err != nil {
			return nil, err
		}
		processors.Content = append(processors.Content, node)
	}
	addKV(root, "processors", processors)

	outputs := sequence()
	for _, output := range tpl.Outputs {
		node, err := outputNode(output)
		if err != nil {
			return nil, err
		}
		outputs.Content = append(outputs.Content, node)
	}
	addKV(root, "outputs", outputs)

	addKV(root, "settings", settingsNode())

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to encode descriptor: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize descriptor: %w", err)
	}

	return buf.Bytes(), nil
}

// triggerNode builds the mapping for one trigger record: id, type, the
// connection parameters in declared order, then enabled.
func triggerNode(trigger registry.Trigger) (*yaml.Node, error) {
	node := mapping()
	addKV(node, "id", strNode(trigger.ID))
	addKV(node, "type", strNode(trigger.Type))
	if err := addParams(node, trigger.Params); err != nil {
		return nil, fmt.Errorf("trigger %s: %w", trigger.ID, err)
	}
	addKV(node, "enabled", boolNode(trigger.Enabled))
	return node, nil
}

// processorNode builds the mapping for one processor record: id, type,
// source parameters, execution policy, dependencies, and any environment
// overrides.
func processorNode(processor registry.Processor) (*yaml.Node, error) {
	node := mapping()
	addKV(node, "id", strNode(processor.ID))
	addKV(node, "type", strNode(processor.Type))
	if err := addParams(node, processor.Params); err != nil {
		return nil, fmt.Errorf("processor %s: %w", processor.ID, err)
	}
	addKV(node, "parallel", boolNode(processor.Parallel))
	addKV(node, "timeout", intNode(int(processor.Timeout.Milliseconds())))
	addKV(node, "retry", intNode(processor.Retry))
	addKV(node, "dependencies", strSeqNode(processor.DependsOn))

	if len(processor.Environment) > 0 {
		env := mapping()
		if err := addParams(env, processor.Environment); err != nil {
			return nil, fmt.Errorf("processor %s environment: %w", processor.ID, err)
		}
		addKV(node, "environment", env)
	}

	return node, nil
}

// outputNode builds the mapping for one output record: id, type, then the
// destination parameters in declared order.
func outputNode(output registry.Output) (*yaml.Node, error) {
	node := mapping()
	addKV(node, "id", strNode(output.ID))
	addKV(node, "type", strNode(output.Type))
	if err := addParams(node, output.Params); err != nil {
		return nil, fmt.Errorf("output %s: %w", output.ID, err)
	}
	return node, nil
}

// settingsNode builds the fixed generator-supplied settings block. It is
// not derived from the template.
func settingsNode() *yaml.Node {
	performance := mapping()
	addKV(performance, "max_concurrent", intNode(10))
	addKV(performance, "buffer_size", intNode(1000))

	monitoring := mapping()
	addKV(monitoring, "enabled", boolNode(true))
	addKV(monitoring, "log_level", strNode("INFO"))

	security := mapping()
	addKV(security, "require_auth", boolNode(false))
	addKV(security, "rate_limit", intNode(1000))

	settings := mapping()
	addKV(settings, "performance", performance)
	addKV(settings, "monitoring", monitoring)
	addKV(settings, "security", security)
	return settings
}

// addParams appends ordered parameters to a mapping node.
func addParams(node *yaml.Node, params registry.Params) error {
	for _, param := range params {
		value, err := valueNode(param.Value)
		if err != nil {
			return fmt.Errorf("parameter %s: %w", param.Key, err)
		}
		addKV(node, param.Key, value)
	}
	return nil
}

// valueNode converts a parameter value into a yaml node.
func valueNode(value interface{}) (*yaml.Node, error) {
	switch v := value.(type) {
	case string:
		return strNode(v), nil
	case int:
		return intNode(v), nil
	case bool:
		return boolNode(v), nil
	case []string:
		return strSeqNode(v), nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", value)
	}
}

// Node constructors.

func mapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func sequence() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
}

func strNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func intNode(value int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(value)}
}

func boolNode(value bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(value)}
}

func strSeqNode(values []string) *yaml.Node {
	node := sequence()
	for _, value := range values {
		node.Content = append(node.Content, strNode(value))
	}
	return node
}

func addKV(node *yaml.Node, key string, value *yaml.Node) {
	node.Content = append(node.Content, strNode(key), value)
}
