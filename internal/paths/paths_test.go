// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetConfigDir_Override(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PII_MASK_CONFIG_DIR", dir)

	assert.Equal(t, dir, GetConfigDir())
	assert.Equal(t, filepath.Join(dir, "config.yaml"), GetConfigFile())
}

func TestGetConfigDir_Default(t *testing.T) {
	t.Setenv("PII_MASK_CONFIG_DIR", "")
	assert.Equal(t, AppName, filepath.Base(GetConfigDir()))
}
