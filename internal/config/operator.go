// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"math"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// OperatorConfig names an anonymization operator and its parameters
type OperatorConfig struct {
	Operator string         `yaml:"operator" json:"operator"`
	Params   map[string]any `yaml:"params,omitempty" json:"params,omitempty"`
}

// UnmarshalYAML accepts both the mapping form and a bare operator name
// such as `PERSON: redact`
func (o *OperatorConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		o.Operator = node.Value
		o.Params = nil
		return nil
	}

	type plain OperatorConfig
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	if p.Operator == "" {
		p.Operator = DefaultOperator
	}
	*o = OperatorConfig(p)
	return nil
}

// StringParam returns a string parameter, or def when absent
func (o OperatorConfig) StringParam(key, def string) (string, error) {
	v, ok := o.Params[key]
	if !ok || v == nil {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.Newf("parameter %s: expected string, got %T", key, v)
	}
	return s, nil
}

// IntParam returns an integer parameter, or def when absent.
// JSON numbers arrive as float64 and are accepted when integral.
func (o OperatorConfig) IntParam(key string, def int) (int, error) {
	v, ok := o.Params[key]
	if !ok || v == nil {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, errors.Newf("parameter %s: %v is not an integer", key, n)
		}
		return int(n), nil
	}
	return 0, errors.Newf("parameter %s: expected integer, got %T", key, v)
}

// BoolParam returns a boolean parameter, or def when absent
func (o OperatorConfig) BoolParam(key string, def bool) (bool, error) {
	v, ok := o.Params[key]
	if !ok || v == nil {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, errors.Newf("parameter %s: expected bool, got %T", key, v)
	}
	return b, nil
}
