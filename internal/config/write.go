package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const fileHeader = "crmdash configuration. Environment variables (CRMDASH_SECTION_KEY) override these values."

// Marshal renders cfg as YAML with durations written as Go duration strings
// ("200ms") rather than nanosecond integers.
func Marshal(cfg *Config) ([]byte, error) {
	var body yaml.Node
	if err := body.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	content := []*yaml.Node{&body}
	if body.Kind == yaml.DocumentNode {
		content = body.Content
	}
	doc := yaml.Node{
		Kind:        yaml.DocumentNode,
		HeadComment: fileHeader,
		Content:     content,
	}

	durations := map[string]time.Duration{
		"animation.refresh.duration": cfg.Animation.Refresh.Duration,
		"animation.refresh.stagger":  cfg.Animation.Refresh.Stagger,
		"animation.alert.step":       cfg.Animation.Alert.Step,
		"animation.alert.fade":       cfg.Animation.Alert.Fade,
	}
	for path, d := range durations {
		if node := findPath(&doc, strings.Split(path, ".")...); node != nil {
			node.Tag = "!!str"
			node.Value = d.String()
		}
	}

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	encoder.Close()

	return []byte(buf.String()), nil
}

// Write saves cfg to path, replacing any existing file.
func Write(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// findPath walks nested mappings by key.
func findPath(node *yaml.Node, keys ...string) *yaml.Node {
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil
		}
		node = node.Content[0]
	}
	for _, key := range keys {
		node = findMapValue(node, key)
		if node == nil {
			return nil
		}
	}
	return node
}

// findMapValue finds a value in a mapping node by key name.
func findMapValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		if keyNode.Kind == yaml.ScalarNode && keyNode.Value == key {
			return valueNode
		}
	}

	return nil
}
